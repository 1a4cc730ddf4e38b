package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildView(t *testing.T) {
	t.Run("empty selection uses defaults", func(t *testing.T) {
		p := structuredShirt(t)
		view := BuildView(p, Selection{})

		assert.Equal(t, "shirt", view.ProductID)
		assert.Equal(t, "c1", view.DefaultColorID)
		assert.Equal(t, "s1", view.DefaultSizeID)
		assert.Equal(t, "c1", view.SelectedColorID)
		assert.Equal(t, "s1", view.SelectedSizeID)
		assert.Len(t, view.ColorOptions, 3)
		assert.Equal(t, []string{"S", "L"}, optionValues(view.SizeOptionsForSelectedColor))
		assert.Equal(t, "navy-0.jpg", view.MediaForSelectedColor[0])
		require.NotNil(t, view.Variant)
		assert.Equal(t, "v2", NormalizeString(view.Variant.ID))
		assert.Equal(t, "75", view.Price.String())
		assert.True(t, view.UsesNewVariantSystem)
	})

	t.Run("explicit selection by label", func(t *testing.T) {
		p := structuredShirt(t)
		view := BuildView(p, Selection{ColorID: "Olive", SizeID: "M"})

		assert.Equal(t, "c2", view.SelectedColorID)
		assert.Equal(t, "s2", view.SelectedSizeID)
		require.NotNil(t, view.Variant)
		assert.Equal(t, "v3", NormalizeString(view.Variant.ID))
		assert.Equal(t, "80", view.Price.String())
	})

	t.Run("colorless single sku", func(t *testing.T) {
		p := mustFormat(t, Document{"id": "bag", "price": 120, "images": []any{"bag.jpg"}})
		view := BuildView(p, Selection{})

		assert.Empty(t, view.ColorOptions)
		assert.Empty(t, view.SizeOptionsForSelectedColor)
		assert.Equal(t, []string{"bag.jpg"}, view.MediaForSelectedColor)
		assert.Empty(t, view.DefaultColorID)
		assert.Nil(t, view.Variant)
		assert.Equal(t, "120", view.Price.String())
	})

	t.Run("nil product", func(t *testing.T) {
		view := BuildView(nil, Selection{})
		assert.NotNil(t, view.ColorOptions)
		assert.NotNil(t, view.MediaForSelectedColor)
		assert.True(t, view.Price.IsZero())
	})
}

func TestCommit(t *testing.T) {
	t.Run("complete structured selection", func(t *testing.T) {
		p := structuredShirt(t)
		line, err := Commit(p, Selection{ColorID: "c2", SizeID: "s2"})
		require.NoError(t, err)

		assert.Equal(t, "shirt", line.ProductID)
		assert.Equal(t, "v3", line.VariantID)
		assert.Equal(t, "80", line.ResolvedPrice.String())
		assert.Equal(t, "Olive", line.ResolvedColorDisplayValue)
		assert.Equal(t, "M", line.ResolvedSizeDisplayValue)
		assert.True(t, line.InStock)
	})

	t.Run("zero inventory is out of stock", func(t *testing.T) {
		p := structuredShirt(t)
		line, err := Commit(p, Selection{ColorID: "c1", SizeID: "s3"})
		require.NoError(t, err)
		assert.Equal(t, "v1", line.VariantID)
		assert.False(t, line.InStock)
	})

	t.Run("missing size is reported", func(t *testing.T) {
		p := legacyTee(t)
		line, err := Commit(p, Selection{ColorID: "White"})
		assert.Nil(t, line)
		require.Error(t, err)
		assert.True(t, IsSelectionIncomplete(err))
		assert.Equal(t, "selection incomplete: pick a size", err.Error())

		var se *SelectionError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, MissingSize, se.Missing)
	})

	t.Run("missing color is reported first", func(t *testing.T) {
		p := legacyTee(t)
		_, err := Commit(p, Selection{})
		var se *SelectionError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, MissingColor, se.Missing)
	})

	t.Run("unavailable combination", func(t *testing.T) {
		p := legacyTee(t)
		_, err := Commit(p, Selection{ColorID: "White", SizeID: "M"})
		assert.ErrorIs(t, err, ErrVariantUnavailable)
	})

	t.Run("discount price applies without variant price", func(t *testing.T) {
		p := mustFormat(t, Document{
			"id": "tee", "price": 30, "discountPrice": 24,
			"colors": []any{"Red"}, "sizes": []any{"M"},
		})
		line, err := Commit(p, Selection{ColorID: "Red", SizeID: "M"})
		require.NoError(t, err)
		assert.Empty(t, line.VariantID)
		assert.Equal(t, "24", line.ResolvedPrice.String())
		assert.Equal(t, "Red", line.ResolvedColorDisplayValue)
		assert.True(t, line.InStock)
	})

	t.Run("single dimension product", func(t *testing.T) {
		p := mustFormatJSON(t, `{
			"id": "scarf", "price": 40,
			"colors": ["Red", "Grey"],
			"variants": [{"id": "scarf-red", "color": "Red"}, {"id": "scarf-grey", "color": "Grey", "inventory": 2}]
		}`)
		line, err := Commit(p, Selection{ColorID: "color-1"})
		require.NoError(t, err)
		assert.Equal(t, "scarf-grey", line.VariantID)
		assert.Equal(t, "Grey", line.ResolvedColorDisplayValue)
		assert.Empty(t, line.ResolvedSizeDisplayValue)
	})

	t.Run("single sku with one variant row", func(t *testing.T) {
		p := mustFormatJSON(t, `{"id": "mug", "price": 12, "variants": [{"id": "mug-1", "sku": "MUG"}]}`)
		line, err := Commit(p, Selection{})
		require.NoError(t, err)
		assert.Equal(t, "mug-1", line.VariantID)
		assert.Equal(t, "MUG", line.SKU)
	})

	t.Run("nil product", func(t *testing.T) {
		_, err := Commit(nil, Selection{})
		assert.ErrorIs(t, err, ErrNilProduct)
	})
}

func TestPrice(t *testing.T) {
	p := mustFormat(t, Document{"price": 50, "discountPrice": 0})
	assert.Equal(t, "50", Price(p, nil).String())
	assert.True(t, Price(nil, nil).IsZero())
}
