// Package config provides configuration management for the storefront service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file loaded through godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, product source)
//   - Storage: S3/MinIO credentials, bucket and catalog prefix
//   - Database: MySQL or SQLite connection details
//   - Mongo: document store URI, database and collection
//   - Cache: product and view memoization lifetimes
//   - Log: Logging level and format
//
// Every field declares its default with a `default:"..."` tag. Environment keys
// are the upper-cased path joined by underscores, e.g. SERVER_SOURCE or MONGO_URI.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
