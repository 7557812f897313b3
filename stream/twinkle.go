package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledreel/util"
)

type twinkleParticle struct {
	position float64
	phase    int
	lut      []float64
}

// A Twinkle is a Painter that pulses random particles between a back and
// fore colour.
type Twinkle struct {
	foreColour colorful.Color
	backColour colorful.Color
	particles  []twinkleParticle
}

// NewTwinkle creates an instance of a Twinkle object. Particle placement and
// pulse lengths are derived from seed.
func NewTwinkle(numParticles int, foreColour, backColour colorful.Color, seed int64) *Twinkle {
	t := new(Twinkle)
	t.foreColour = foreColour
	t.backColour = backColour

	r := rand.New(rand.NewSource(seed))
	memoizer := util.Memoizer{}
	t.particles = make([]twinkleParticle, numParticles)
	for i := range t.particles {
		lut := util.GenerateLutMemoized((r.Intn(18)+6)*2, memoizer)
		t.particles[i] = twinkleParticle{
			position: r.Float64(),
			phase:    r.Intn(len(lut)),
			lut:      lut,
		}
	}

	return t
}

// Paint renders the particles at the given step.
func (t *Twinkle) Paint(f *Frame, step int) {
	f.Fill(t.backColour)

	numPixels := f.Len()
	if numPixels == 0 {
		return
	}
	for _, p := range t.particles {
		i := int(p.position * float64(numPixels))
		gain := p.lut[(step+p.phase)%len(p.lut)]
		f.Set(i, t.backColour.BlendHcl(t.foreColour, gain))
	}
}
