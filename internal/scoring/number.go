package scoring

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// toNumber coerces a stored answer to a float the way a loosely typed client
// would: numeric strings parse, the empty string is 0, booleans are 0/1 and
// anything else is NaN.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}

// orZero maps NaN and zero to the fallback, mirroring `x || fallback`.
func orZero(x, fallback float64) float64 {
	if math.IsNaN(x) || x == 0 {
		return fallback
	}
	return x
}

// toKey renders a stored answer as a lookup key; unanswered is "".
func toKey(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	default:
		f := toNumber(n)
		if math.IsNaN(f) {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

// toFixed rounds x to the given number of decimals using the exact binary
// value of x, with ties going away from zero.
func toFixed(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	neg := x < 0
	if neg {
		x = -x
	}

	scale := math.Pow10(digits)
	v := new(big.Float).SetPrec(256).SetFloat64(x)
	v.Mul(v, new(big.Float).SetPrec(256).SetFloat64(scale))
	v.Add(v, new(big.Float).SetPrec(256).SetFloat64(0.5))

	n, _ := v.Int(nil)
	out := float64(n.Int64()) / scale
	if neg {
		out = -out
	}
	return out
}

// jsRound rounds half up, toward positive infinity.
func jsRound(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return max(lo, min(x, hi))
}
