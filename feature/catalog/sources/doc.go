// Package sources implements catalog.Source for each supported backend.
//
//   - StorageSource: JSON objects at <prefix><id>.json in a MinIO/S3 bucket.
//   - DatabaseSource: the `products` table, one JSON document column per row.
//   - MongoSource: a MongoDB collection keyed by _id (ObjectID or string).
//
// All sources return raw documents. A missing id is reported as catalog.ErrProductNotFound.
package sources
