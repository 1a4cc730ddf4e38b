// Package variant resolves product options, media, prices and variants for a
// storefront product page.
//
// Product records come from several authoring paths and carry two schemas at once:
//
//   - Legacy: flat colors[], sizes[], images[], imagesByColor{} and variants keyed by
//     color/size display strings.
//   - Structured: options[] with option values, variants[] referencing option value ids
//     through optionValueIds[], and media[] bound to a color option value.
//
// FormatProduct projects a raw Document onto one canonical Product carrying both
// families. Every other function works on that Product and always tries the structured
// fields first and the legacy fields second.
//
// # Identifiers
//
// Option value and variant ids may be strings, {id}/{value} objects or database object
// ids. Normalize turns each of them into one canonical string and is the only way ids
// are compared in this package.
//
// # Totality
//
// Resolution never fails on data-shape problems: absent lists resolve to empty slices,
// unmatched selections to nil. Only FormatProduct (nil document) and Commit (incomplete
// or unavailable selection) return errors.
//
// # Concurrency
//
// Every function is pure and never mutates its inputs, so a Product may be shared by
// any number of goroutines. Memoization belongs to callers; see core/cache.
//
// # Usage
//
//	p, err := variant.FormatProduct(doc)
//	if err != nil {
//	    return err
//	}
//	view := variant.BuildView(p, variant.Selection{ColorID: "c1"})
//	line, err := variant.Commit(p, variant.Selection{ColorID: "c1", SizeID: "s2"})
package variant
