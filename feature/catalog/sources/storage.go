package sources

import (
	"context"
	"fmt"
	"sort"

	"storefront/core/catalog"
	"storefront/core/storage"
	"storefront/core/variant"

	"github.com/minio/minio-go/v7"
)

// StorageSource reads product documents stored as JSON objects under a bucket prefix.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates an object storage source.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

// Name implements catalog.Source.
func (s *StorageSource) Name() string {
	return catalog.KindStorage
}

// FetchProduct implements catalog.Source.
func (s *StorageSource) FetchProduct(ctx context.Context, id string) (variant.Document, error) {
	var doc variant.Document
	err := storage.ReadJSON(ctx, s.client, s.bucket, storage.ObjectKey(s.prefix, id), &doc)
	if storage.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product %s: %w", id, err)
	}
	if doc == nil {
		// A stored "null" carries no product.
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	return doc, nil
}

// ListProductIDs implements catalog.Source.
func (s *StorageSource) ListProductIDs(ctx context.Context) ([]string, error) {
	keys, err := storage.ListKeys(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		if id, ok := storage.IDFromKey(s.prefix, key); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// SaveProduct implements catalog.Source.
func (s *StorageSource) SaveProduct(ctx context.Context, id string, doc variant.Document) error {
	if err := storage.WriteJSON(ctx, s.client, s.bucket, storage.ObjectKey(s.prefix, id), doc); err != nil {
		return fmt.Errorf("failed to save product %s: %w", id, err)
	}
	return nil
}

// DeleteProduct implements catalog.Deleter.
func (s *StorageSource) DeleteProduct(ctx context.Context, id string) error {
	err := s.client.RemoveObject(ctx, s.bucket, storage.ObjectKey(s.prefix, id), minio.RemoveObjectOptions{})
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
