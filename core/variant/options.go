package variant

import "strconv"

var (
	colorOptionNames = [2]string{"Color", "color"}
	sizeOptionNames  = [2]string{"Size", "size"}
)

// ColorValues returns the product's selectable colors. An empty result means
// a single, colorless product.
func ColorValues(p *Product) []Option {
	if p == nil {
		return []Option{}
	}
	return extractOptions(p.Options, colorOptionNames, p.Colors, "color-")
}

// SizeValues returns the product's selectable sizes.
func SizeValues(p *Product) []Option {
	if p == nil {
		return []Option{}
	}
	return extractOptions(p.Options, sizeOptionNames, p.Sizes, "size-")
}

func extractOptions(defs []OptionDefinition, names [2]string, legacy []string, idPrefix string) []Option {
	if def := findDefinition(defs, names); def != nil {
		out := make([]Option, 0, len(def.Values))
		for _, v := range def.Values {
			out = append(out, Option{
				ID:             NormalizeString(v.ID),
				Value:          v.Value,
				Label:          v.Value,
				HexCode:        v.HexCode,
				SwatchImageURL: v.SwatchImageURL,
			})
		}
		return out
	}

	out := make([]Option, 0, len(legacy))
	for i, v := range legacy {
		out = append(out, Option{
			ID:    idPrefix + strconv.Itoa(i),
			Value: v,
			Label: v,
		})
	}
	return out
}

// findDefinition matches the capitalized or lower-case dimension name exactly.
func findDefinition(defs []OptionDefinition, names [2]string) *OptionDefinition {
	for i := range defs {
		if defs[i].Name == names[0] || defs[i].Name == names[1] {
			return &defs[i]
		}
	}
	return nil
}

// lookupOption finds the option referenced by id, first by canonical id and then
// by display value, so legacy callers may select by label.
func lookupOption(options []Option, id Identifier) (Option, bool) {
	s, ok := Normalize(id)
	if !ok {
		return Option{}, false
	}
	for _, o := range options {
		if o.ID == s {
			return o, true
		}
	}
	for _, o := range options {
		if o.Value == s {
			return o, true
		}
	}
	return Option{}, false
}

// displayValue resolves a selector to the display string legacy fields are keyed by.
// Unknown selectors resolve to their own canonical form.
func displayValue(options []Option, id Identifier) (string, bool) {
	if o, ok := lookupOption(options, id); ok {
		return o.Value, true
	}
	return Normalize(id)
}

// resolvedID returns the canonical id of the option a selector refers to, falling back
// to the selector itself.
func resolvedID(options []Option, id Identifier) (string, bool) {
	if o, ok := lookupOption(options, id); ok {
		return o.ID, true
	}
	return Normalize(id)
}
