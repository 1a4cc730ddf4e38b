package checks

import (
	"fmt"
	"sort"
	"strings"

	"storefront/core/variant"
)

// ProductReport is the audit result for one product.
type ProductReport struct {
	ID     string  `json:"id"`
	Schema string  `json:"schema"`
	Status string  `json:"status"` // "ok", "error"
	Issues []Issue `json:"issues"`
}

// CheckProduct audits a formatted product for data that resolves surprisingly or not at all.
func CheckProduct(p *variant.Product) ProductReport {
	report := ProductReport{
		ID:     p.IDString(),
		Status: "ok",
		Issues: []Issue{},
	}
	if p == nil {
		report.Schema = variant.SchemaEmpty.String()
		return report
	}
	report.Schema = p.Schema().String()

	colors := variant.ColorValues(p)
	sizes := variant.SizeValues(p)

	add := func(code IssueCode, ref, format string, args ...any) {
		report.Issues = append(report.Issues, Issue{Code: code, Ref: ref, Message: fmt.Sprintf(format, args...)})
	}

	definedIDs := make(map[string]int)
	for _, def := range p.Options {
		for _, val := range def.Values {
			if id, ok := variant.Normalize(val.ID); ok && id != "" {
				definedIDs[id]++
			}
		}
	}
	for _, id := range sortedKeys(definedIDs) {
		if definedIDs[id] > 1 {
			add(CodeDuplicateOptionValueID, id, "option value id %s is defined %d times", id, definedIDs[id])
		}
	}

	seenIDs := make(map[string]bool)
	seenCombos := make(map[string]string)
	for i, v := range p.Variants {
		ref := variant.NormalizeString(v.ID)
		if ref == "" {
			ref = fmt.Sprintf("#%d", i)
		}

		if id, ok := variant.Normalize(v.ID); ok && id != "" {
			if seenIDs[id] {
				add(CodeDuplicateVariant, ref, "variant id %s is used more than once", id)
			}
			seenIDs[id] = true
		}

		for _, raw := range v.OptionValueIDs {
			id, ok := variant.Normalize(raw)
			if ok && definedIDs[id] == 0 {
				add(CodeUnknownOptionValue, ref, "variant %s references undefined option value %s", ref, id)
			}
		}

		combo := comboKey(v)
		if combo == "" {
			if len(colors) > 0 || len(sizes) > 0 {
				add(CodeVariantWithoutSelectors, ref, "variant %s has neither option value ids nor color/size", ref)
			}
			continue
		}
		if first, dup := seenCombos[combo]; dup {
			add(CodeDuplicateVariant, ref, "variant %s repeats the selection of variant %s", ref, first)
		} else {
			seenCombos[combo] = ref
		}
	}

	if len(p.Variants) > 0 {
		for _, c := range colors {
			if !anyVariantReferences(p.Variants, c) {
				add(CodeColorWithoutVariants, c.ID, "color %s has no variants; every size is offered for it", c.Value)
			}
		}
	}

	for _, m := range p.Media {
		if !knownColor(colors, m.ColorOptionValueID) {
			add(CodeOrphanMedia, m.URL, "media %s is bound to unknown color %s", m.URL, variant.NormalizeString(m.ColorOptionValueID))
		}
	}
	for _, name := range sortedKeys(p.ImagesByColor) {
		if !knownColor(colors, name) {
			add(CodeOrphanMedia, name, "images are keyed by unknown color %s", name)
		}
	}

	priced := p.BasePrice.IsPositive() || (p.DiscountPrice.Valid && p.DiscountPrice.Decimal.IsPositive())
	if !priced && !everyVariantPriced(p.Variants) {
		add(CodeMissingPrice, report.ID, "product has no base price and some purchases resolve to zero")
	}

	if len(report.Issues) > 0 {
		report.Status = "error"
	}
	return report
}

// comboKey identifies the selection a variant answers to. Empty means none.
func comboKey(v variant.Variant) string {
	if len(v.OptionValueIDs) > 0 {
		ids := make([]string, 0, len(v.OptionValueIDs))
		for _, raw := range v.OptionValueIDs {
			if id, ok := variant.Normalize(raw); ok {
				ids = append(ids, id)
			}
		}
		sort.Strings(ids)
		return "ids:" + strings.Join(ids, ",")
	}
	if v.Color == "" && v.Size == "" {
		return ""
	}
	return "legacy:" + v.Color + "|" + v.Size
}

func anyVariantReferences(variants []variant.Variant, c variant.Option) bool {
	for _, v := range variants {
		if v.Color != "" && v.Color == c.Value {
			return true
		}
		for _, raw := range v.OptionValueIDs {
			if variant.SameID(raw, c.ID) {
				return true
			}
		}
	}
	return false
}

func knownColor(colors []variant.Option, ref variant.Identifier) bool {
	id, ok := variant.Normalize(ref)
	if !ok {
		return false
	}
	for _, c := range colors {
		if c.ID == id || c.Value == id {
			return true
		}
	}
	return false
}

func everyVariantPriced(variants []variant.Variant) bool {
	if len(variants) == 0 {
		return false
	}
	for _, v := range variants {
		if !v.Price.Valid || !v.Price.Decimal.IsPositive() {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
