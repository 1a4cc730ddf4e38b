package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"testing"

	"storefront/core/catalog"
	"storefront/core/variant"

	"github.com/stretchr/testify/require"
)

// memorySource is an in-memory catalog.Source counting fetches.
type memorySource struct {
	mu      sync.Mutex
	docs    map[string]variant.Document
	fetches int
	err     error
}

func newMemorySource(t *testing.T, docs ...string) *memorySource {
	t.Helper()
	src := &memorySource{docs: map[string]variant.Document{}}
	for _, raw := range docs {
		var doc variant.Document
		require.NoError(t, json.Unmarshal([]byte(raw), &doc))
		src.docs[doc["id"].(string)] = doc
	}
	return src
}

func (m *memorySource) Name() string { return "memory" }

func (m *memorySource) FetchProduct(ctx context.Context, id string) (variant.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches++
	if m.err != nil {
		return nil, m.err
	}
	doc, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	return doc, nil
}

func (m *memorySource) ListProductIDs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *memorySource) SaveProduct(ctx context.Context, id string, doc variant.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = doc
	return nil
}

func (m *memorySource) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches
}

const legacyTeeJSON = `{
	"id": "tee",
	"title": "Tee",
	"price": 25,
	"colors": ["White", "Black"],
	"sizes": ["S", "M"],
	"variants": [
		{"id": "v-white-s", "color": "White", "size": "S", "images": ["w1.jpg"]},
		{"id": "v-black-m", "color": "Black", "size": "M", "images": ["b1.jpg"], "inventory": 0}
	]
}`

const structuredShirtJSON = `{
	"id": "shirt",
	"title": "Shirt",
	"price": 80,
	"options": [
		{"name": "Color", "values": [{"id": "c1", "value": "Navy"}, {"id": "c2", "value": "Olive"}]},
		{"name": "Size", "values": [{"id": "s1", "value": "S"}, {"id": "s2", "value": "M"}]}
	],
	"variants": [
		{"id": "v1", "optionValueIds": ["c1", "s1"], "price": 75, "sku": "SH-NAVY-S"},
		{"id": "v2", "optionValueIds": ["c2", "s2"], "inventory": 3}
	],
	"media": [{"url": "navy.jpg", "colorOptionValueId": "c1"}]
}`
