package variant

// DefaultColor returns the first authored color, or nil for a colorless product.
func DefaultColor(p *Product) *Option {
	colors := ColorValues(p)
	if len(colors) == 0 {
		return nil
	}
	c := colors[0]
	return &c
}

// DefaultSizeForColor returns the first size available in the given color, or nil
// when the product has no sizes.
func DefaultSizeForColor(p *Product, colorID Identifier) *Option {
	sizes := AvailableSizesForColor(p, colorID)
	if len(sizes) == 0 {
		return nil
	}
	s := sizes[0]
	return &s
}
