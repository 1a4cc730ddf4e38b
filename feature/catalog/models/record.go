package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProductRecord is a product document stored in the relational catalog.
// The whole raw document lives in one JSON column so both schema generations fit.
type ProductRecord struct {
	ID        string         `gorm:"column:id;type:varchar(64);primaryKey"`
	Document  datatypes.JSON `gorm:"column:document;type:json;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:datetime"`
}

// TableName overrides the table name used by ProductRecord to `products`.
func (ProductRecord) TableName() string {
	return "products"
}
