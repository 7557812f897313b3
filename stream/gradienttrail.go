package stream

import (
	"math"
)

// A GradientTrail is a Painter that cycles a gradient along an led strip.
type GradientTrail struct {
	gradient    GradientTable
	trailLength int
	speed       float64
	saturation  float64
	luminance   float64
}

// NewGradientTrail creates an instance of a GradientTrail object. The trail
// moves speed pixels per step.
func NewGradientTrail(gradient GradientTable, trailLength int, speed float64) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength
	if g.trailLength <= 0 {
		g.trailLength = 1
	}
	g.speed = speed
	g.saturation = 1.0
	g.luminance = 0.05

	return g
}

// Paint renders the trail offset for the given step.
func (g *GradientTrail) Paint(f *Frame, step int) {
	trail := float64(g.trailLength)
	current := math.Mod(float64(step)*g.speed, trail)
	numPixels := f.Len()
	for i := 0; i < numPixels; i++ {
		t := math.Mod(float64(i+numPixels)-current, trail) / trail
		if t < 0 {
			t += 1
		}
		f.Set(i, g.gradient.GetColor(t, g.saturation, g.luminance))
	}
}
