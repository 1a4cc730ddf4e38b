package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"storefront/core/catalog"
	"storefront/core/reconcile"
	"storefront/core/variant"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds document fetches while comparing sources.
const maxConcurrentFetches = 8

// SourceResult is the presence of one product id across sources.
type SourceResult = reconcile.Result

// SourcesReport summarizes a reconciliation across sources.
type SourcesReport struct {
	Sources    []string       `json:"sources"`
	Total      int            `json:"total"`
	Incomplete int            `json:"incomplete"`
	Mismatched int            `json:"mismatched"`
	Results    []SourceResult `json:"results"`
}

// CheckSources lists every source, builds the union of ids and compares the
// formatted products wherever an id exists in more than one source.
func CheckSources(ctx context.Context, srcs []catalog.Source) (*SourcesReport, error) {
	report := &SourcesReport{Sources: []string{}, Results: []SourceResult{}}
	if len(srcs) == 0 {
		return report, nil
	}

	indices := make([]map[string]struct{}, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range srcs {
		report.Sources = append(report.Sources, src.Name())
		g.Go(func() error {
			ids, err := src.ListProductIDs(gctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			set := make(map[string]struct{}, len(ids))
			for _, id := range ids {
				set[id] = struct{}{}
			}
			indices[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	union := make(map[string]struct{})
	for _, set := range indices {
		for id := range set {
			union[id] = struct{}{}
		}
	}

	results := make([]SourceResult, 0, len(union))
	for id := range union {
		result := SourceResult{ID: id, Present: make(map[string]bool, len(srcs)), Mismatch: []string{}}
		for i, src := range srcs {
			_, ok := indices[i][id]
			result.Present[src.Name()] = ok
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	var mu sync.Mutex
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i := range results {
		present := presentSources(srcs, results[i].Present)
		if len(present) < 2 {
			continue
		}
		g.Go(func() error {
			mismatch, err := compareAcross(gctx, present, results[i].ID)
			if err != nil {
				return err
			}
			mu.Lock()
			results[i].Mismatch = mismatch
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if len(presentSources(srcs, r.Present)) < len(srcs) {
			report.Incomplete++
		}
		if len(r.Mismatch) > 0 {
			report.Mismatched++
		}
	}
	report.Total = len(results)
	report.Results = results
	return report, nil
}

func presentSources(srcs []catalog.Source, present map[string]bool) []catalog.Source {
	out := make([]catalog.Source, 0, len(srcs))
	for _, src := range srcs {
		if present[src.Name()] {
			out = append(out, src)
		}
	}
	return out
}

// compareAcross compares every source against the first one holding the id.
func compareAcross(ctx context.Context, srcs []catalog.Source, id string) ([]string, error) {
	fingerprints := make([]map[string]string, len(srcs))
	for i, src := range srcs {
		doc, err := src.FetchProduct(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name(), err)
		}
		p, err := variant.FormatProduct(doc)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name(), err)
		}
		fingerprints[i] = fingerprint(p)
	}

	mismatch := []string{}
	base := fingerprints[0]
	for _, field := range fingerprintFields {
		for i := 1; i < len(srcs); i++ {
			if fingerprints[i][field] != base[field] {
				mismatch = append(mismatch, fmt.Sprintf("%s: %s=%s %s=%s",
					field, srcs[0].Name(), base[field], srcs[i].Name(), fingerprints[i][field]))
			}
		}
	}
	return mismatch, nil
}

var fingerprintFields = []string{"title", "price", "colors", "sizes", "variants"}

// fingerprint reduces a product to the fields a shopper would notice differing.
func fingerprint(p *variant.Product) map[string]string {
	return map[string]string{
		"title":    p.Title,
		"price":    p.BasePrice.String(),
		"colors":   joinValues(variant.ColorValues(p)),
		"sizes":    joinValues(variant.SizeValues(p)),
		"variants": fmt.Sprintf("%d", len(p.Variants)),
	}
}

func joinValues(opts []variant.Option) string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return strings.Join(values, ",")
}
