package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// Memoizer caches generated look-up tables by length.
type Memoizer map[int][]float64

// RandomiseSaturation returns a value in [min, max) drawn from r.
func RandomiseSaturation(r *rand.Rand, min float64, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// GenerateLut builds a symmetric pulse of the given length that eases from 0
// up to 1 and back down again.
func GenerateLut(length int) []float64 {
	if length <= 0 {
		return nil
	}

	increment := 1.0
	if length > 1 {
		increment = 1.0 / float64(length/2)
	}
	lut := make([]float64, length)
	for i, j := 0, length-1; i <= j; i, j = i+1, j-1 {
		value := float64(i) * increment
		if value > 1 {
			value = 1
		}
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}

// GenerateLutMemoized returns GenerateLut(length), reusing a table already in m.
func GenerateLutMemoized(length int, m Memoizer) []float64 {
	if lut, ok := m[length]; ok {
		return lut
	}
	lut := GenerateLut(length)
	m[length] = lut
	return lut
}

// Ease maps t in [0, 1] onto the in-out quadratic curve, clamping outside values.
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return ease.InOutQuad(t)
}
