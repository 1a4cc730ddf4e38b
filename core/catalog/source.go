package catalog

import (
	"context"
	"errors"

	"storefront/core/variant"
)

// ErrProductNotFound is returned by a Source when no document exists for an id.
var ErrProductNotFound = errors.New("product not found")

// Source reads and writes raw product documents.
// Implementations return documents untouched; formatting happens in core/variant.
type Source interface {
	// Name identifies the source in logs and reports.
	Name() string
	// FetchProduct loads one document. Missing ids yield ErrProductNotFound.
	FetchProduct(ctx context.Context, id string) (variant.Document, error)
	// ListProductIDs returns every id in the source, sorted.
	ListProductIDs(ctx context.Context) ([]string, error)
	// SaveProduct creates or replaces the document stored under id.
	SaveProduct(ctx context.Context, id string, doc variant.Document) error
}

// Source kinds, matching the server.source setting.
const (
	KindStorage  = "storage"
	KindDatabase = "database"
	KindMongo    = "mongo"
)

// Deleter is implemented by sources that can remove documents.
// Deleting a missing id is not an error.
type Deleter interface {
	DeleteProduct(ctx context.Context, id string) error
}
