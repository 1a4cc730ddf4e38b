package variant

import (
	"github.com/shopspring/decimal"
)

// Document is a raw product record as decoded from JSON or BSON.
type Document = map[string]any

// Product is the canonical display model produced by FormatProduct.
// Structured and legacy fields are carried side by side; every slice and map is
// non-nil after formatting.
type Product struct {
	ID            Identifier          `json:"id"`
	Title         string              `json:"title"`
	BasePrice     decimal.Decimal     `json:"basePrice"`
	DiscountPrice decimal.NullDecimal `json:"discountPrice"`

	Options  []OptionDefinition `json:"options"`
	Variants []Variant          `json:"variants"`
	Media    []MediaAsset       `json:"media"`

	Colors        []string            `json:"colors"`
	Sizes         []string            `json:"sizes"`
	Images        []string            `json:"images"`
	Image         string              `json:"image,omitempty"`
	ImagesByColor map[string][]string `json:"imagesByColor"`

	// UsesNewVariantSystem is informational; resolution always tries the
	// structured fields first and the legacy fields second.
	UsesNewVariantSystem bool `json:"usesNewVariantSystem"`
}

// OptionDefinition is one selectable dimension, e.g. Color or Size.
type OptionDefinition struct {
	Name   string        `json:"name"`
	Values []OptionValue `json:"values"`
}

// OptionValue is one authored value of an option dimension.
type OptionValue struct {
	ID             Identifier `json:"id"`
	Value          string     `json:"value"`
	HexCode        string     `json:"hexCode,omitempty"`
	SwatchImageURL string     `json:"swatchImageUrl,omitempty"`
}

// Variant is a purchasable SKU. Structured variants reference option values
// through OptionValueIDs; legacy variants only carry Color and Size display strings.
type Variant struct {
	ID             Identifier          `json:"id"`
	OptionValueIDs []Identifier        `json:"optionValueIds,omitempty"`
	Color          string              `json:"color,omitempty"`
	Size           string              `json:"size,omitempty"`
	SKU            string              `json:"sku,omitempty"`
	Price          decimal.NullDecimal `json:"price"`
	Inventory      *int                `json:"inventory,omitempty"`
	Images         []string            `json:"images"`
}

// MediaAsset is a gallery image bound to a color option value.
type MediaAsset struct {
	URL                string     `json:"url"`
	ColorOptionValueID Identifier `json:"colorOptionValueId"`
	SortOrder          int        `json:"sortOrder"`
}

// Option is the uniform shape returned by ColorValues and SizeValues.
// ID is already in canonical form.
type Option struct {
	ID             string `json:"id"`
	Value          string `json:"value"`
	Label          string `json:"label"`
	HexCode        string `json:"hexCode,omitempty"`
	SwatchImageURL string `json:"swatchImageUrl,omitempty"`
}

// Schema describes which field families a product carries.
type Schema int

const (
	SchemaEmpty Schema = iota
	SchemaLegacy
	SchemaStructured
	SchemaMixed
)

func (s Schema) String() string {
	switch s {
	case SchemaLegacy:
		return "legacy"
	case SchemaStructured:
		return "structured"
	case SchemaMixed:
		return "mixed"
	default:
		return "empty"
	}
}

// Schema reports which representation families are populated.
func (p *Product) Schema() Schema {
	if p == nil {
		return SchemaEmpty
	}
	structured := len(p.Options) > 0 || len(p.Media) > 0
	for _, v := range p.Variants {
		if len(v.OptionValueIDs) > 0 {
			structured = true
			break
		}
	}

	legacy := len(p.Colors) > 0 || len(p.Sizes) > 0 || len(p.ImagesByColor) > 0
	for _, v := range p.Variants {
		if v.Color != "" || v.Size != "" {
			legacy = true
			break
		}
	}

	switch {
	case structured && legacy:
		return SchemaMixed
	case structured:
		return SchemaStructured
	case legacy:
		return SchemaLegacy
	default:
		return SchemaEmpty
	}
}

// IDString returns the canonical product id.
func (p *Product) IDString() string {
	if p == nil {
		return ""
	}
	return NormalizeString(p.ID)
}

// Selection is the caller-owned choice of color and size.
type Selection struct {
	ColorID Identifier `json:"colorId"`
	SizeID  Identifier `json:"sizeId"`
}
