package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legacyTee is the two-color, two-size legacy product used across the resolver tests.
func legacyTee(t *testing.T) *Product {
	return mustFormatJSON(t, `{
		"id": "tee",
		"title": "Tee",
		"price": 25,
		"colors": ["White", "Black"],
		"sizes": ["S", "M"],
		"variants": [
			{"id": "v-white-s", "color": "White", "size": "S", "images": ["w1.jpg"]},
			{"id": "v-black-m", "color": "Black", "size": "M", "images": ["b1.jpg"]}
		]
	}`)
}

// structuredShirt uses options, optionValueIds and media with mixed identifier shapes.
func structuredShirt(t *testing.T) *Product {
	return mustFormatJSON(t, `{
		"id": "shirt",
		"title": "Shirt",
		"price": 80,
		"options": [
			{"name": "color", "values": [
				{"id": "c1", "value": "Navy", "hexCode": "#001f3f"},
				{"id": "c2", "value": "Olive"},
				{"id": "c3", "value": "Rust"}
			]},
			{"name": "Size", "values": [
				{"id": "s1", "value": "S"},
				{"id": "s2", "value": "M"},
				{"id": "s3", "value": "L"}
			]}
		],
		"variants": [
			{"id": "v1", "optionValueIds": [{"id": "c1"}, "s3"], "inventory": 0},
			{"id": "v2", "optionValueIds": ["c1", {"value": "s1"}], "price": 75, "images": ["navy-variant.jpg"]},
			{"id": "v3", "optionValueIds": ["c2", "s2"], "inventory": 4}
		],
		"media": [
			{"url": "navy-2.jpg", "colorOptionValueId": {"id": "c1"}, "sortOrder": 2},
			{"url": "olive-1.jpg", "colorOptionValueId": "c2", "sortOrder": 1},
			{"url": "navy-1.jpg", "colorOptionValueId": "c1", "sortOrder": 1},
			{"url": "navy-1b.jpg", "colorOptionValueId": "c1", "sortOrder": 1},
			{"url": "navy-0.jpg", "colorOptionValueId": "c1"}
		]
	}`)
}

func optionValues(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

func TestColorAndSizeValues(t *testing.T) {
	t.Run("structured", func(t *testing.T) {
		p := structuredShirt(t)
		colors := ColorValues(p)
		require.Len(t, colors, 3)
		assert.Equal(t, Option{ID: "c1", Value: "Navy", Label: "Navy", HexCode: "#001f3f"}, colors[0])
		assert.Equal(t, []string{"S", "M", "L"}, optionValues(SizeValues(p)))
	})

	t.Run("legacy synthesizes ids", func(t *testing.T) {
		p := legacyTee(t)
		colors := ColorValues(p)
		require.Len(t, colors, 2)
		assert.Equal(t, Option{ID: "color-1", Value: "Black", Label: "Black"}, colors[1])
		assert.Equal(t, "size-0", SizeValues(p)[0].ID)
	})

	t.Run("option name is matched on both casings only", func(t *testing.T) {
		p := mustFormat(t, Document{
			"options": []any{map[string]any{"name": "COLOR", "values": []any{"Red"}}},
			"colors":  []any{"Blue"},
		})
		assert.Equal(t, []string{"Blue"}, optionValues(ColorValues(p)))
	})

	t.Run("absent", func(t *testing.T) {
		p := mustFormat(t, Document{})
		assert.NotNil(t, ColorValues(p))
		assert.Empty(t, ColorValues(p))
		assert.Empty(t, SizeValues(nil))
	})
}

func TestLegacyScenario(t *testing.T) {
	p := legacyTee(t)

	assert.Equal(t, []string{"S"}, optionValues(AvailableSizesForColor(p, "White")))
	assert.Nil(t, ResolveVariant(p, "White", "M"))
	assert.Equal(t, []string{"b1.jpg"}, MediaForColor(p, "Black"))
}

func TestMediaForColor(t *testing.T) {
	t.Run("media sorted stably with heterogeneous ids", func(t *testing.T) {
		p := mustFormatJSON(t, `{
			"media": [
				{"url": "a.jpg", "colorOptionValueId": {"id": "c1"}, "sortOrder": 2},
				{"url": "b.jpg", "colorOptionValueId": "c1", "sortOrder": 1}
			]
		}`)
		assert.Equal(t, []string{"b.jpg", "a.jpg"}, MediaForColor(p, "c1"))
	})

	t.Run("missing sortOrder is zero and ties keep authoring order", func(t *testing.T) {
		p := structuredShirt(t)
		assert.Equal(t, []string{"navy-0.jpg", "navy-1.jpg", "navy-1b.jpg", "navy-2.jpg"}, MediaForColor(p, "c1"))
	})

	t.Run("imagesByColor wins over media", func(t *testing.T) {
		p := mustFormatJSON(t, `{
			"options": [{"name": "Color", "values": [{"id": "c1", "value": "Navy"}]}],
			"imagesByColor": {"Navy": ["by-color.jpg"]},
			"media": [{"url": "media.jpg", "colorOptionValueId": "c1"}]
		}`)
		assert.Equal(t, []string{"by-color.jpg"}, MediaForColor(p, "c1"))
		assert.Equal(t, []string{"by-color.jpg"}, MediaForColor(p, map[string]any{"value": "c1"}))
	})

	t.Run("variant images when media has nothing for the color", func(t *testing.T) {
		p := structuredShirt(t)
		p.Media = []MediaAsset{}
		assert.Equal(t, []string{"navy-variant.jpg"}, MediaForColor(p, "c1"))
	})

	t.Run("selection by label on a structured product", func(t *testing.T) {
		p := structuredShirt(t)
		assert.Equal(t, []string{"olive-1.jpg"}, MediaForColor(p, "Olive"))
	})

	t.Run("product images then single image", func(t *testing.T) {
		p := mustFormat(t, Document{"images": []any{"p1.jpg", "p2.jpg"}, "image": "single.jpg"})
		assert.Equal(t, []string{"p1.jpg", "p2.jpg"}, MediaForColor(p, "Unknown"))

		p = mustFormat(t, Document{"image": "single.jpg"})
		assert.Equal(t, []string{"single.jpg"}, MediaForColor(p, nil))

		p = mustFormat(t, Document{})
		assert.Equal(t, []string{}, MediaForColor(p, nil))
	})

	t.Run("nil color skips color sources", func(t *testing.T) {
		p := mustFormat(t, Document{
			"imagesByColor": map[string]any{"": []any{"blank.jpg"}},
			"images":        []any{"main.jpg"},
		})
		assert.Equal(t, []string{"main.jpg"}, MediaForColor(p, nil))
	})

	t.Run("result does not alias the product", func(t *testing.T) {
		p := mustFormat(t, Document{"images": []any{"main.jpg"}})
		got := MediaForColor(p, nil)
		got[0] = "changed.jpg"
		assert.Equal(t, []string{"main.jpg"}, p.Images)
	})
}

func TestAvailableSizesForColor(t *testing.T) {
	t.Run("structured keeps size list order", func(t *testing.T) {
		p := structuredShirt(t)
		assert.Equal(t, []string{"S", "L"}, optionValues(AvailableSizesForColor(p, "c1")))
		assert.Equal(t, []string{"M"}, optionValues(AvailableSizesForColor(p, map[string]any{"id": "c2"})))
	})

	t.Run("color without variants falls back to all sizes", func(t *testing.T) {
		p := structuredShirt(t)
		assert.Equal(t, []string{"S", "M", "L"}, optionValues(AvailableSizesForColor(p, "c3")))
	})

	t.Run("no variants returns every size for every color", func(t *testing.T) {
		p := mustFormat(t, Document{"colors": []any{"Red", "Blue"}, "sizes": []any{"S", "M", "L"}})
		for _, c := range ColorValues(p) {
			assert.Equal(t, []string{"S", "M", "L"}, optionValues(AvailableSizesForColor(p, c.ID)))
		}
	})

	t.Run("legacy by synthesized id", func(t *testing.T) {
		p := legacyTee(t)
		assert.Equal(t, []string{"M"}, optionValues(AvailableSizesForColor(p, "color-1")))
	})

	t.Run("nil color returns all sizes", func(t *testing.T) {
		p := legacyTee(t)
		assert.Len(t, AvailableSizesForColor(p, nil), 2)
	})
}

func TestResolveVariant(t *testing.T) {
	t.Run("structured needs both ids", func(t *testing.T) {
		p := structuredShirt(t)

		v := ResolveVariant(p, "c1", "s1")
		require.NotNil(t, v)
		assert.Equal(t, "v2", NormalizeString(v.ID))

		v = ResolveVariant(p, map[string]any{"id": "c1"}, map[string]any{"value": "s3"})
		require.NotNil(t, v)
		assert.Equal(t, "v1", NormalizeString(v.ID))

		assert.Nil(t, ResolveVariant(p, "c1", nil))
		assert.Nil(t, ResolveVariant(p, nil, "s1"))
		assert.Nil(t, ResolveVariant(p, "c2", "s1"))
	})

	t.Run("structured by labels", func(t *testing.T) {
		p := structuredShirt(t)
		v := ResolveSelection(p, Selection{ColorID: "Olive", SizeID: "M"})
		require.NotNil(t, v)
		assert.Equal(t, "v3", NormalizeString(v.ID))
	})

	t.Run("legacy exactness", func(t *testing.T) {
		p := mustFormatJSON(t, `{
			"colors": ["A"], "sizes": ["S1", "S2"],
			"variants": [{"id": "first", "color": "A", "size": "S1"}, {"id": "second", "color": "A", "size": "S2"}]
		}`)
		v := ResolveVariant(p, "A", "S1")
		require.NotNil(t, v)
		assert.Equal(t, "first", NormalizeString(v.ID))

		v = ResolveVariant(p, "color-0", "size-1")
		require.NotNil(t, v)
		assert.Equal(t, "second", NormalizeString(v.ID))
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		p := mustFormatJSON(t, `{
			"variants": [{"id": "a", "color": "Red", "size": "M"}, {"id": "b", "color": "Red", "size": "M"}]
		}`)
		v := ResolveVariant(p, "Red", "M")
		require.NotNil(t, v)
		assert.Equal(t, "a", NormalizeString(v.ID))
	})

	t.Run("no variants", func(t *testing.T) {
		assert.Nil(t, ResolveVariant(mustFormat(t, Document{}), "a", "b"))
		assert.Nil(t, ResolveVariant(nil, "a", "b"))
	})
}

func TestDefaults(t *testing.T) {
	t.Run("structured", func(t *testing.T) {
		p := structuredShirt(t)
		c := DefaultColor(p)
		require.NotNil(t, c)
		assert.Equal(t, "c1", c.ID)

		s := DefaultSizeForColor(p, c.ID)
		require.NotNil(t, s)
		assert.Equal(t, "s1", s.ID)

		s = DefaultSizeForColor(p, "c2")
		require.NotNil(t, s)
		assert.Equal(t, "s2", s.ID)
	})

	t.Run("deterministic", func(t *testing.T) {
		p := legacyTee(t)
		assert.Equal(t, DefaultColor(p), DefaultColor(p))
		assert.Equal(t, DefaultSizeForColor(p, "White"), DefaultSizeForColor(p, "White"))
	})

	t.Run("empty product", func(t *testing.T) {
		p := mustFormat(t, Document{})
		assert.Nil(t, DefaultColor(p))
		assert.Nil(t, DefaultSizeForColor(p, nil))
	})
}

func TestResolvers_DoNotMutateProduct(t *testing.T) {
	p := structuredShirt(t)
	before := *p
	beforeMedia := append([]MediaAsset(nil), p.Media...)

	_ = MediaForColor(p, "c1")
	_ = AvailableSizesForColor(p, "c1")
	_ = ResolveVariant(p, "c1", "s1")
	_ = BuildView(p, Selection{})

	assert.Equal(t, beforeMedia, p.Media)
	assert.Equal(t, before.Title, p.Title)
	assert.Len(t, p.Variants, len(before.Variants))
}
