package stripe

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Stripe is a run of pixels in a single colour.
type Stripe struct {
	Colour colorful.Color
	Length int32
}

// RandomStripeGenerator produces stripes of random length, choosing a colour
// from the palette (or a random hue) that differs from the previous one.
type RandomStripeGenerator struct {
	rand      *rand.Rand
	palette   []colorful.Color
	current   int
	stripeMin int32
	stripeMax int32
}

// NewRandomStripeGenerator creates a generator whose stripes are between
// stripeMin and stripeMax pixels long.
func NewRandomStripeGenerator(palette []colorful.Color, stripeMin, stripeMax int32, seed int64) *RandomStripeGenerator {
	g := new(RandomStripeGenerator)
	g.rand = rand.New(rand.NewSource(seed))
	g.palette = palette
	g.current = -1
	if stripeMin < 1 {
		stripeMin = 1
	}
	if stripeMax <= stripeMin {
		stripeMax = stripeMin + 1
	}
	g.stripeMin = stripeMin
	g.stripeMax = stripeMax
	return g
}

// CreateStripe returns the next stripe.
func (g *RandomStripeGenerator) CreateStripe() Stripe {
	var colour colorful.Color
	if len(g.palette) == 0 {
		colour = colorful.Hsl(g.rand.Float64()*360.0, 1.0, 0.2)
	} else if len(g.palette) == 1 {
		colour = g.palette[0]
	} else {
		// Choose a new colour that's different from the previous colour
		for {
			newCurrent := g.rand.Intn(len(g.palette))
			if newCurrent != g.current {
				g.current = newCurrent
				break
			}
		}

		colour = g.palette[g.current]
	}

	stripeLength := g.rand.Int31n(g.stripeMax-g.stripeMin) + g.stripeMin
	return Stripe{colour, stripeLength}
}
