package variant

import (
	"fmt"

	"storefront/core/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identifier references an option value or a variant. Product documents store it as
// a raw string, as an object exposing "id"/"value" (or an extended-JSON "$oid"), or as
// a database object id. Identifiers must only be compared through Normalize.
type Identifier = any

// idKeys lists the object keys inspected by Normalize, in precedence order.
var idKeys = []string{"value", "id", "_id", "$oid"}

// Normalize returns the canonical string form of an identifier.
// The boolean is false only when x is nil. Unrecognized shapes degrade to a
// best-effort string and never fail.
func Normalize(x Identifier) (string, bool) {
	switch v := x.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case primitive.ObjectID:
		return v.Hex(), true
	case *primitive.ObjectID:
		if v == nil {
			return "", false
		}
		return v.Hex(), true
	case fmt.Stringer:
		return v.String(), true
	}

	if m, ok := utils.ToMap(x); ok {
		for _, key := range idKeys {
			inner, present := m[key]
			if !present || inner == nil {
				continue
			}
			if s, ok := Normalize(inner); ok {
				return s, true
			}
		}
	}

	return utils.ToString(x), true
}

// NormalizeString is Normalize with the absent case collapsed to "".
func NormalizeString(x Identifier) string {
	s, _ := Normalize(x)
	return s
}

// SameID reports whether two identifiers share a canonical form.
// An absent identifier never equals anything, including another absent one.
func SameID(a, b Identifier) bool {
	as, aok := Normalize(a)
	bs, bok := Normalize(b)
	return aok && bok && as == bs
}

// containsID reports whether any entry of ids normalizes to want.
func containsID(ids []Identifier, want string) bool {
	for _, id := range ids {
		if s, ok := Normalize(id); ok && s == want {
			return true
		}
	}
	return false
}
