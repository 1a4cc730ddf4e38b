package variant

// selector carries every form a selection can be matched by: the caller's canonical
// id, the id of the option it resolves to, and that option's display value.
type selector struct {
	ids     []string
	display string
}

func newSelector(options []Option, id Identifier) (selector, bool) {
	raw, ok := Normalize(id)
	if !ok {
		return selector{}, false
	}

	sel := selector{ids: []string{raw}}
	sel.display, _ = displayValue(options, id)
	if resolved, ok := resolvedID(options, id); ok && resolved != raw {
		sel.ids = append(sel.ids, resolved)
	}
	return sel, true
}

func newColorSelector(p *Product, colorID Identifier) (selector, bool) {
	return newSelector(ColorValues(p), colorID)
}

func newSizeSelector(p *Product, sizeID Identifier) (selector, bool) {
	return newSelector(SizeValues(p), sizeID)
}

func (s selector) hasID(id string) bool {
	for _, want := range s.ids {
		if want == id {
			return true
		}
	}
	return false
}

// matchesVariant reports whether v references the selection, structurally or by
// legacy label. The legacy field compared is chosen by the caller.
func (s selector) matchesVariant(v Variant, legacy func(Variant) string) bool {
	for _, id := range s.ids {
		if containsID(v.OptionValueIDs, id) {
			return true
		}
	}
	label := legacy(v)
	return label != "" && label == s.display
}

func variantColor(v Variant) string { return v.Color }

func variantSize(v Variant) string { return v.Size }
