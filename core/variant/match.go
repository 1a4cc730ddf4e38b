package variant

// ResolveVariant returns the first variant matching both selectors, or nil when the
// selection is incomplete or no variant carries that combination.
//
// Structured variants match when their OptionValueIDs contain both the color and the
// size id. Legacy variants match on the Color and Size display strings.
func ResolveVariant(p *Product, colorID, sizeID Identifier) *Variant {
	if p == nil || len(p.Variants) == 0 {
		return nil
	}

	color, ok := newColorSelector(p, colorID)
	if !ok {
		return nil
	}
	size, ok := newSizeSelector(p, sizeID)
	if !ok {
		return nil
	}

	for i := range p.Variants {
		v := &p.Variants[i]
		if structuredMatch(v, color, size) || legacyMatch(v, color, size) {
			return v
		}
	}
	return nil
}

// ResolveSelection is ResolveVariant taking a Selection.
func ResolveSelection(p *Product, sel Selection) *Variant {
	return ResolveVariant(p, sel.ColorID, sel.SizeID)
}

func structuredMatch(v *Variant, color, size selector) bool {
	if len(v.OptionValueIDs) == 0 {
		return false
	}
	return hasAnyID(v.OptionValueIDs, color.ids) && hasAnyID(v.OptionValueIDs, size.ids)
}

func legacyMatch(v *Variant, color, size selector) bool {
	return v.Color != "" && v.Size != "" && v.Color == color.display && v.Size == size.display
}

func hasAnyID(ids []Identifier, wants []string) bool {
	for _, want := range wants {
		if containsID(ids, want) {
			return true
		}
	}
	return false
}
