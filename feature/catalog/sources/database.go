package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/core/catalog"
	"storefront/core/variant"
	"storefront/feature/catalog/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseSource reads product documents from the `products` table.
type DatabaseSource struct {
	db *gorm.DB
}

// NewDatabaseSource creates a relational source.
func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

// Migrate creates or updates the products table.
func (s *DatabaseSource) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.ProductRecord{})
}

// Name implements catalog.Source.
func (s *DatabaseSource) Name() string {
	return catalog.KindDatabase
}

// FetchProduct implements catalog.Source.
func (s *DatabaseSource) FetchProduct(ctx context.Context, id string) (variant.Document, error) {
	var rec models.ProductRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product %s: %w", id, err)
	}

	var doc variant.Document
	if err := json.Unmarshal(rec.Document, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", id, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	return doc, nil
}

// ListProductIDs implements catalog.Source.
func (s *DatabaseSource) ListProductIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	err := s.db.WithContext(ctx).Model(&models.ProductRecord{}).Order("id").Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return ids, nil
}

// SaveProduct implements catalog.Source.
func (s *DatabaseSource) SaveProduct(ctx context.Context, id string, doc variant.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode product %s: %w", id, err)
	}
	rec := models.ProductRecord{
		ID:        id,
		Document:  datatypes.JSON(data),
		UpdatedAt: time.Now(),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", id, err)
	}
	return nil
}

// DeleteProduct implements catalog.Deleter.
func (s *DatabaseSource) DeleteProduct(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
