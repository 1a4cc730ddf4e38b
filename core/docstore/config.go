package docstore

// Config holds configuration for the MongoDB product store.
type Config struct {
	// URI is the MongoDB connection string.
	URI string `mapstructure:"uri" default:"mongodb://localhost:27017"`
	// Database is the database holding the catalog.
	Database string `mapstructure:"database" default:"storefront"`
	// Collection is the collection of product documents.
	Collection string `mapstructure:"collection" default:"products"`
	// TimeoutSeconds bounds the initial connect and ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
