package variant

import "github.com/shopspring/decimal"

// View is everything the rendering layer needs for one selection.
type View struct {
	ProductID                   string          `json:"productId"`
	Title                       string          `json:"title"`
	ColorOptions                []Option        `json:"colorOptions"`
	SizeOptionsForSelectedColor []Option        `json:"sizeOptionsForSelectedColor"`
	MediaForSelectedColor       []string        `json:"mediaForSelectedColor"`
	DefaultColorID              string          `json:"defaultColorId"`
	DefaultSizeID               string          `json:"defaultSizeId"`
	SelectedColorID             string          `json:"selectedColorId"`
	SelectedSizeID              string          `json:"selectedSizeId"`
	Variant                     *Variant        `json:"variant"`
	Price                       decimal.Decimal `json:"price"`
	UsesNewVariantSystem        bool            `json:"usesNewVariantSystem"`
}

// CartLine is the payload handed to the cart/checkout collaborator.
type CartLine struct {
	ProductID                 string          `json:"productId"`
	VariantID                 string          `json:"variantId"`
	SKU                       string          `json:"sku,omitempty"`
	ResolvedPrice             decimal.Decimal `json:"resolvedPrice"`
	ResolvedColorDisplayValue string          `json:"resolvedColorDisplayValue"`
	ResolvedSizeDisplayValue  string          `json:"resolvedSizeDisplayValue"`
	InStock                   bool            `json:"inStock"`
}

// BuildView resolves options, media, defaults and the matching variant for a
// selection. Absent selectors fall back to the defaults.
func BuildView(p *Product, sel Selection) View {
	colors := ColorValues(p)
	view := View{
		ProductID:                   p.IDString(),
		ColorOptions:                colors,
		SizeOptionsForSelectedColor: []Option{},
		MediaForSelectedColor:       []string{},
		Price:                       Price(p, nil),
	}
	if p == nil {
		return view
	}
	view.Title = p.Title
	view.UsesNewVariantSystem = p.UsesNewVariantSystem

	defColor := DefaultColor(p)
	if defColor != nil {
		view.DefaultColorID = defColor.ID
		if s := DefaultSizeForColor(p, defColor.ID); s != nil {
			view.DefaultSizeID = s.ID
		}
	}

	colorID := sel.ColorID
	if _, ok := Normalize(colorID); !ok && defColor != nil {
		colorID = defColor.ID
	}
	if id, ok := resolvedID(colors, colorID); ok {
		view.SelectedColorID = id
	}

	sizes := AvailableSizesForColor(p, colorID)
	view.SizeOptionsForSelectedColor = sizes
	view.MediaForSelectedColor = MediaForColor(p, colorID)

	sizeID := sel.SizeID
	if _, ok := Normalize(sizeID); !ok && len(sizes) > 0 {
		sizeID = sizes[0].ID
	}
	if id, ok := resolvedID(SizeValues(p), sizeID); ok {
		view.SelectedSizeID = id
	}

	view.Variant = ResolveVariant(p, colorID, sizeID)
	view.Price = Price(p, view.Variant)
	return view
}

// Commit validates a selection at add-to-cart time and builds the cart payload.
// Incomplete selections are reported as *SelectionError; a complete selection that
// matches no variant of a product with variants yields ErrVariantUnavailable.
func Commit(p *Product, sel Selection) (*CartLine, error) {
	if p == nil {
		return nil, ErrNilProduct
	}

	colors := ColorValues(p)
	sizes := SizeValues(p)
	if _, ok := Normalize(sel.ColorID); !ok && len(colors) > 0 {
		return nil, &SelectionError{Missing: MissingColor}
	}
	if _, ok := Normalize(sel.SizeID); !ok && len(sizes) > 0 {
		return nil, &SelectionError{Missing: MissingSize}
	}

	v := resolveForCommit(p, sel, colors, sizes)
	if v == nil && len(p.Variants) > 0 {
		return nil, ErrVariantUnavailable
	}

	line := &CartLine{
		ProductID:     p.IDString(),
		ResolvedPrice: Price(p, v),
		InStock:       InStock(v),
	}
	if len(colors) > 0 {
		line.ResolvedColorDisplayValue, _ = displayValue(colors, sel.ColorID)
	}
	if len(sizes) > 0 {
		line.ResolvedSizeDisplayValue, _ = displayValue(sizes, sel.SizeID)
	}
	if v != nil {
		line.VariantID = NormalizeString(v.ID)
		line.SKU = v.SKU
	}
	return line, nil
}

// resolveForCommit matches on the dimensions the product actually has, so
// single-dimension and single-SKU products can still be committed.
func resolveForCommit(p *Product, sel Selection, colors, sizes []Option) *Variant {
	switch {
	case len(colors) > 0 && len(sizes) > 0:
		return ResolveSelection(p, sel)
	case len(colors) > 0:
		return firstReferencing(p, newSelectorOrZero(colors, sel.ColorID), variantColor)
	case len(sizes) > 0:
		return firstReferencing(p, newSelectorOrZero(sizes, sel.SizeID), variantSize)
	case len(p.Variants) > 0:
		return &p.Variants[0]
	default:
		return nil
	}
}

func firstReferencing(p *Product, sel selector, legacy func(Variant) string) *Variant {
	for i := range p.Variants {
		if sel.matchesVariant(p.Variants[i], legacy) {
			return &p.Variants[i]
		}
	}
	return nil
}

func newSelectorOrZero(options []Option, id Identifier) selector {
	sel, _ := newSelector(options, id)
	return sel
}

// Price returns the price shown for a variant: its own price when set, else a
// positive discount price, else the base price.
func Price(p *Product, v *Variant) decimal.Decimal {
	if v != nil && v.Price.Valid {
		return v.Price.Decimal
	}
	if p == nil {
		return decimal.Zero
	}
	if p.DiscountPrice.Valid && p.DiscountPrice.Decimal.IsPositive() {
		return p.DiscountPrice.Decimal
	}
	return p.BasePrice
}

// InStock reports availability. Unknown inventory counts as available.
func InStock(v *Variant) bool {
	if v == nil || v.Inventory == nil {
		return true
	}
	return *v.Inventory > 0
}
