package checks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"storefront/core/catalog"
	"storefront/core/variant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource struct {
	name    string
	docs    map[string]variant.Document
	listErr error
}

func (m *mapSource) Name() string { return m.name }

func (m *mapSource) FetchProduct(ctx context.Context, id string) (variant.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	return doc, nil
}

func (m *mapSource) ListProductIDs(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := []string{}
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mapSource) SaveProduct(ctx context.Context, id string, doc variant.Document) error {
	m.docs[id] = doc
	return nil
}

func TestCheckSources(t *testing.T) {
	storageSrc := &mapSource{name: "storage", docs: map[string]variant.Document{
		"tee": {"id": "tee", "title": "Tee", "price": 25.0, "colors": []any{"White"}},
		"bag": {"id": "bag", "title": "Bag", "price": 120.0},
	}}
	dbSrc := &mapSource{name: "database", docs: map[string]variant.Document{
		"tee": {"id": "tee", "title": "Tee", "price": "25.00", "colors": []any{"White", "Black"}},
		"mug": {"id": "mug", "title": "Mug"},
	}}

	report, err := CheckSources(context.Background(), []catalog.Source{storageSrc, dbSrc})
	require.NoError(t, err)

	assert.Equal(t, []string{"storage", "database"}, report.Sources)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Incomplete)
	assert.Equal(t, 1, report.Mismatched)

	require.Len(t, report.Results, 3)
	bag, mug, tee := report.Results[0], report.Results[1], report.Results[2]

	assert.Equal(t, map[string]bool{"storage": true, "database": false}, bag.Present)
	assert.Equal(t, map[string]bool{"storage": false, "database": true}, mug.Present)
	assert.Empty(t, bag.Mismatch)

	assert.Equal(t, "tee", tee.ID)
	assert.Equal(t, []string{"colors: storage=White database=White,Black"}, tee.Mismatch)
}

func TestCheckSources_ListFailure(t *testing.T) {
	broken := &mapSource{name: "mongo", listErr: errors.New("unreachable")}
	_, err := CheckSources(context.Background(), []catalog.Source{broken})
	assert.EqualError(t, err, "source mongo: unreachable")
}

func TestCheckSources_Empty(t *testing.T) {
	report, err := CheckSources(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.NotNil(t, report.Results)
}
