package variant

import (
	"storefront/core/utils"

	"github.com/shopspring/decimal"
)

// FormatProduct projects a raw product document, in legacy, structured or mixed form,
// onto the canonical Product. Missing lists become empty slices and missing maps
// become empty maps. The only error is a nil document.
func FormatProduct(raw Document) (*Product, error) {
	if raw == nil {
		return nil, ErrNilDocument
	}

	p := &Product{
		ID:            firstPresent(raw, "id", "_id"),
		Title:         firstString(raw, "title", "name"),
		BasePrice:     decimal.Zero,
		Options:       formatOptions(raw["options"]),
		Variants:      formatVariants(raw["variants"]),
		Media:         formatMedia(raw["media"]),
		Colors:        formatLabels(raw["colors"]),
		Sizes:         formatLabels(raw["sizes"]),
		Images:        imageList(raw["images"]),
		Image:         imageURL(raw["image"]),
		ImagesByColor: formatImagesByColor(raw["imagesByColor"]),
	}

	if d, ok := firstDecimal(raw, "price", "basePrice"); ok {
		p.BasePrice = d
	}
	if d, ok := firstDecimal(raw, "discountPrice", "discountedPrice"); ok {
		p.DiscountPrice = decimal.NewNullDecimal(d)
	}

	p.UsesNewVariantSystem = len(p.Options) > 0 || len(p.Media) > 0 || utils.ToBool(raw["usesNewVariantSystem"])

	return p, nil
}

func formatOptions(val any) []OptionDefinition {
	items := utils.ToSlice(val)
	out := make([]OptionDefinition, 0, len(items))
	for _, item := range items {
		m, ok := utils.ToMap(item)
		if !ok {
			continue
		}
		def := OptionDefinition{
			Name:   utils.ToString(m["name"]),
			Values: []OptionValue{},
		}
		for _, rawValue := range utils.ToSlice(m["values"]) {
			if v, ok := formatOptionValue(rawValue); ok {
				def.Values = append(def.Values, v)
			}
		}
		out = append(out, def)
	}
	return out
}

func formatOptionValue(val any) (OptionValue, bool) {
	if s, ok := val.(string); ok {
		if s == "" {
			return OptionValue{}, false
		}
		return OptionValue{ID: s, Value: s}, true
	}

	m, ok := utils.ToMap(val)
	if !ok {
		return OptionValue{}, false
	}
	return OptionValue{
		ID:             firstPresent(m, "id", "_id"),
		Value:          firstString(m, "value", "label", "name"),
		HexCode:        firstString(m, "hexCode", "hex"),
		SwatchImageURL: firstString(m, "swatchImageUrl", "swatchImageURL"),
	}, true
}

func formatVariants(val any) []Variant {
	items := utils.ToSlice(val)
	out := make([]Variant, 0, len(items))
	for _, item := range items {
		m, ok := utils.ToMap(item)
		if !ok {
			continue
		}

		v := Variant{
			ID:             firstPresent(m, "id", "_id"),
			OptionValueIDs: []Identifier{},
			Color:          labelOf(m["color"]),
			Size:           labelOf(m["size"]),
			SKU:            firstString(m, "sku", "SKU"),
			Images:         imageList(m["images"]),
		}
		for _, id := range utils.ToSlice(m["optionValueIds"]) {
			if id != nil {
				v.OptionValueIDs = append(v.OptionValueIDs, id)
			}
		}
		if d, ok := utils.ToDecimal(m["price"]); ok {
			v.Price = decimal.NewNullDecimal(d)
		}
		if stock := firstPresent(m, "inventory", "stock", "quantity"); stock != nil {
			n := utils.ToInt(stock)
			v.Inventory = &n
		}
		out = append(out, v)
	}
	return out
}

func formatMedia(val any) []MediaAsset {
	items := utils.ToSlice(val)
	out := make([]MediaAsset, 0, len(items))
	for _, item := range items {
		m, ok := utils.ToMap(item)
		if !ok {
			continue
		}
		out = append(out, MediaAsset{
			URL:                firstString(m, "url", "src"),
			ColorOptionValueID: m["colorOptionValueId"],
			SortOrder:          utils.ToInt(m["sortOrder"]),
		})
	}
	return out
}

func formatLabels(val any) []string {
	items := utils.ToSlice(val)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := labelOf(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func formatImagesByColor(val any) map[string][]string {
	out := make(map[string][]string)
	m, ok := utils.ToMap(val)
	if !ok {
		return out
	}
	for color, imgs := range m {
		out[color] = imageList(imgs)
	}
	return out
}

// labelOf reads a display string from a plain value or a {value|name|label} object.
func labelOf(val any) string {
	if m, ok := utils.ToMap(val); ok {
		return firstString(m, "value", "name", "label")
	}
	return utils.ToString(val)
}

// imageURL reads an image reference from a plain string or a {url|src} object.
// Anything else yields "".
func imageURL(val any) string {
	if s, ok := val.(string); ok {
		return s
	}
	if m, ok := utils.ToMap(val); ok {
		return firstString(m, "url", "src")
	}
	return ""
}

func imageList(val any) []string {
	items := utils.ToSlice(val)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if url := imageURL(item); url != "" {
			out = append(out, url)
		}
	}
	return out
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := utils.ToString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstDecimal(m map[string]any, keys ...string) (decimal.Decimal, bool) {
	for _, k := range keys {
		if d, ok := utils.ToDecimal(m[k]); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}
