package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Source selects where product documents are read from (storage, database, mongo).
	Source string `mapstructure:"source" default:"storage"`
	// Mirrors lists additional sources, comma separated, that are connected for reconciliation.
	Mirrors string `mapstructure:"mirrors" default:""`
}

const (
	SourceStorage  = "storage"
	SourceDatabase = "database"
	SourceMongo    = "mongo"
)

// MirrorSources returns the valid, de-duplicated mirror kinds other than Source.
func (c Config) MirrorSources() []string {
	out := []string{}
	seen := map[string]bool{c.Source: true}
	for _, kind := range strings.Split(c.Mirrors, ",") {
		kind = strings.TrimSpace(kind)
		if seen[kind] || !(Config{Source: kind}).IsValidSource() {
			continue
		}
		seen[kind] = true
		out = append(out, kind)
	}
	return out
}

// Uses reports whether kind is the configured source or one of its mirrors.
func (c Config) Uses(kind string) bool {
	if kind == c.Source {
		return true
	}
	for _, m := range c.MirrorSources() {
		if m == kind {
			return true
		}
	}
	return false
}

// IsValidSource checks if the configured product source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceStorage, SourceDatabase, SourceMongo:
		return true
	default:
		return false
	}
}
