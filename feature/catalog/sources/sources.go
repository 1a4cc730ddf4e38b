package sources

import (
	"fmt"

	"storefront/core/catalog"
	"storefront/core/storage"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Deps holds the backends a source may be built from. Only the one matching the
// requested kind needs to be set.
type Deps struct {
	Storage storage.Client
	Bucket  string
	Prefix  string
	DB      *gorm.DB
	Mongo   *mongo.Collection
}

// New builds the source of the given kind.
func New(kind string, deps Deps) (catalog.Source, error) {
	switch kind {
	case catalog.KindStorage:
		if deps.Storage == nil {
			return nil, fmt.Errorf("source %s: storage client is nil", kind)
		}
		return NewStorageSource(deps.Storage, deps.Bucket, deps.Prefix), nil
	case catalog.KindDatabase:
		if deps.DB == nil {
			return nil, fmt.Errorf("source %s: database connection is nil", kind)
		}
		return NewDatabaseSource(deps.DB), nil
	case catalog.KindMongo:
		if deps.Mongo == nil {
			return nil, fmt.Errorf("source %s: mongo collection is nil", kind)
		}
		return NewMongoSource(deps.Mongo), nil
	default:
		return nil, fmt.Errorf("unknown product source %q", kind)
	}
}
