package variant

import "sort"

// MediaForColor returns the ordered gallery for a color. Sources are tried in a
// fixed order and the first non-empty one wins:
//
//  1. ImagesByColor keyed by the color's display value
//  2. Media assets bound to the color, stable-sorted by SortOrder
//  3. Images of the first variant referencing the color
//  4. The product-level Images list
//  5. The single legacy Image
//
// A nil colorID skips straight to step 4.
func MediaForColor(p *Product, colorID Identifier) []string {
	if p == nil {
		return []string{}
	}

	if sel, ok := newColorSelector(p, colorID); ok {
		if imgs := p.ImagesByColor[sel.display]; len(imgs) > 0 {
			return cloneStrings(imgs)
		}
		if imgs := mediaForSelector(p.Media, sel); len(imgs) > 0 {
			return imgs
		}
		for _, v := range p.Variants {
			if sel.matchesVariant(v, variantColor) && len(v.Images) > 0 {
				return cloneStrings(v.Images)
			}
		}
	}

	if len(p.Images) > 0 {
		return cloneStrings(p.Images)
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return []string{}
}

func mediaForSelector(media []MediaAsset, sel selector) []string {
	matched := make([]MediaAsset, 0, len(media))
	for _, m := range media {
		if id, ok := Normalize(m.ColorOptionValueID); ok && sel.hasID(id) {
			matched = append(matched, m)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SortOrder < matched[j].SortOrder
	})

	urls := make([]string, 0, len(matched))
	for _, m := range matched {
		if m.URL != "" {
			urls = append(urls, m.URL)
		}
	}
	return urls
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
