package dcql

// Value is a requested-claim primitive value: a string, a number
// (integer or float), a boolean, or nil. A Value is never a container
// (array or object) — callers that decode query JSON into `any` get
// this invariant checked by the schema layer, not by this type.
type Value = any

// equalValue implements the deep equality requested-value matching
// requires: same scalar kind and same value. Numeric
// values may arrive as different concrete Go types depending on their
// origin (encoding/json decodes query literals as float64; the CBOR
// decoder used for issuer-signed items may produce int64/uint64/float64
// depending on how the issuer encoded the number), so numeric comparison
// normalizes both sides to float64 before comparing.
func equalValue(a, b any) bool {
	af, aIsNum := asFloat(a)
	bf, bIsNum := asFloat(b)
	if aIsNum && bIsNum {
		return af == bf
	}
	if aIsNum != bIsNum {
		return false
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

// isBool reports whether v is a Go bool (not a numeric or string truthy
// value) — used by age-over selection, which requires the element
// value to be a literal boolean.
func isBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}
