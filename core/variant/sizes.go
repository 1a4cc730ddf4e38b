package variant

// AvailableSizesForColor returns the sizes that have a variant in the given color,
// in the product's size order.
//
// When the product has no variants, or no variant references the color, every size
// is returned: nothing can be excluded without a per-variant breakdown.
func AvailableSizesForColor(p *Product, colorID Identifier) []Option {
	sizes := SizeValues(p)
	if p == nil || len(p.Variants) == 0 {
		return sizes
	}

	sel, ok := newColorSelector(p, colorID)
	if !ok {
		return sizes
	}

	sizeIDs := make(map[string]struct{}, len(sizes))
	for _, s := range sizes {
		sizeIDs[s.ID] = struct{}{}
	}

	refIDs := make(map[string]struct{})
	refValues := make(map[string]struct{})
	matched := 0
	for _, v := range p.Variants {
		if !sel.matchesVariant(v, variantColor) {
			continue
		}
		matched++
		for _, raw := range v.OptionValueIDs {
			id, ok := Normalize(raw)
			if !ok {
				continue
			}
			if _, isSize := sizeIDs[id]; isSize {
				refIDs[id] = struct{}{}
			}
		}
		if v.Size != "" {
			refValues[v.Size] = struct{}{}
		}
	}

	if matched == 0 {
		return sizes
	}

	out := make([]Option, 0, len(sizes))
	for _, s := range sizes {
		_, byID := refIDs[s.ID]
		_, byValue := refValues[s.Value]
		if byID || byValue {
			out = append(out, s)
		}
	}
	return out
}
