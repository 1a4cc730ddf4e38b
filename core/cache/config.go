package cache

import "time"

// Config holds memoization lifetimes.
type Config struct {
	// ProductTTLSeconds bounds how long fetched product documents are reused.
	ProductTTLSeconds int `mapstructure:"product_ttl_seconds" default:"60"`
	// ViewTTLSeconds bounds how long resolved views are reused. Zero disables caching.
	ViewTTLSeconds int `mapstructure:"view_ttl_seconds" default:"300"`
}

// ProductTTL returns ProductTTLSeconds as a duration.
func (c Config) ProductTTL() time.Duration {
	return seconds(c.ProductTTLSeconds)
}

// ViewTTL returns ViewTTLSeconds as a duration.
func (c Config) ViewTTL() time.Duration {
	return seconds(c.ViewTTLSeconds)
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
