package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalize(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("65a1b2c3d4e5f60718293a4b")
	assert.NoError(t, err)
	str := "ptr"

	tests := []struct {
		name   string
		in     Identifier
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"string", "abc", "abc", true},
		{"empty string", "", "", true},
		{"string pointer", &str, "ptr", true},
		{"id object", map[string]any{"id": "abc"}, "abc", true},
		{"value object", map[string]any{"value": "abc"}, "abc", true},
		{"value wins over id", map[string]any{"id": "x", "value": "abc"}, "abc", true},
		{"mongo _id", bson.M{"_id": "abc"}, "abc", true},
		{"extended json oid", map[string]any{"$oid": "65a1b2c3d4e5f60718293a4b"}, "65a1b2c3d4e5f60718293a4b", true},
		{"nested id", map[string]any{"id": map[string]any{"value": "abc"}}, "abc", true},
		{"ordered document", bson.D{{Key: "id", Value: "abc"}}, "abc", true},
		{"object id", oid, "65a1b2c3d4e5f60718293a4b", true},
		{"object id pointer", &oid, "65a1b2c3d4e5f60718293a4b", true},
		{"object id inside object", map[string]any{"id": oid}, "65a1b2c3d4e5f60718293a4b", true},
		{"integer", 42, "42", true},
		{"float", float64(7), "7", true},
		{"unrecognized object", map[string]any{"other": 1}, "map[other:1]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []Identifier{
		"abc",
		map[string]any{"id": "abc"},
		map[string]any{"value": 12},
		primitive.NewObjectID(),
		3.5,
		[]string{"odd"},
	}

	for _, in := range inputs {
		once, ok := Normalize(in)
		assert.True(t, ok)
		twice, ok := Normalize(once)
		assert.True(t, ok)
		assert.Equal(t, once, twice)
	}
}

func TestSameID(t *testing.T) {
	assert.True(t, SameID("abc", map[string]any{"id": "abc"}))
	assert.True(t, SameID(map[string]any{"value": "abc"}, map[string]any{"id": "abc"}))
	assert.False(t, SameID("abc", "abd"))
	assert.False(t, SameID(nil, nil))
	assert.False(t, SameID(nil, ""))
}
