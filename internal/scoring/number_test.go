package scoring

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFixed(t *testing.T) {
	tests := []struct {
		x      float64
		digits int
		want   float64
	}{
		{1.005, 2, 1.0}, // 1.00499999999999989...
		{1.45, 1, 1.4},  // 1.44999999999999995559...
		{0.125, 2, 0.13},
		{2.5, 0, 3},
		{2.05, 1, 2.0}, // 2.04999999999999982...
		{-1.25, 1, -1.3},
		{5.800733465346535, 1, 5.8},
		{0, 2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toFixed(tt.x, tt.digits), "toFixed(%v, %d)", tt.x, tt.digits)
	}
	assert.True(t, math.IsNaN(toFixed(math.NaN(), 1)))
}

func TestJSRound(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{2.5, 3},
		{2.4999, 2},
		{-2.5, -2},
		{-2.6, -3},
		{0.49999999999999994, 0},
		{85.83333333333333, 86},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jsRound(tt.x), "jsRound(%v)", tt.x)
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"int", 3, 3},
		{"float", 2.5, 2.5},
		{"json number", json.Number("7"), 7},
		{"numeric string", " 8 ", 8},
		{"empty string", "", 0},
		{"true", true, 1},
		{"false", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toNumber(tt.in))
		})
	}

	for _, in := range []any{nil, "abc", []int{1}, json.Number("x")} {
		assert.True(t, math.IsNaN(toNumber(in)), "toNumber(%#v)", in)
	}
}

func TestToKey(t *testing.T) {
	assert.Equal(t, "2", toKey(2))
	assert.Equal(t, "2", toKey(json.Number("2")))
	assert.Equal(t, "2", toKey(2.0))
	assert.Equal(t, "2", toKey("2"))
	assert.Equal(t, "", toKey(nil))
	assert.Equal(t, "", toKey([]string{"x"}))
}
