package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledreel/stream/stripe"
)

// A StripePainter scrolls a repeating band of random stripes along the strip.
type StripePainter struct {
	stripes     []stripe.Stripe
	totalLength int
	pixelsPer   float64
}

// NewStripePainter creates a painter from count generated stripes that moves
// pixelsPerStep pixels each step.
func NewStripePainter(palette []colorful.Color, count int, stripeMin, stripeMax int32, pixelsPerStep float64, seed int64) *StripePainter {
	s := new(StripePainter)
	s.pixelsPer = pixelsPerStep

	if count < 1 {
		count = 1
	}
	g := stripe.NewRandomStripeGenerator(palette, stripeMin, stripeMax, seed)
	s.stripes = make([]stripe.Stripe, 0, count)
	for i := 0; i < count; i++ {
		st := g.CreateStripe()
		s.stripes = append(s.stripes, st)
		s.totalLength += int(st.Length)
	}

	return s
}

// Paint renders the stripes scrolled to the given step.
func (s *StripePainter) Paint(f *Frame, step int) {
	offset := int(math.Floor(float64(step) * s.pixelsPer))
	for i := 0; i < f.Len(); i++ {
		pos := (i - offset) % s.totalLength
		if pos < 0 {
			pos += s.totalLength
		}
		f.Set(i, s.colourAt(pos))
	}
}

func (s *StripePainter) colourAt(pos int) colorful.Color {
	for _, st := range s.stripes {
		if pos < int(st.Length) {
			return st.Colour
		}
		pos -= int(st.Length)
	}
	return s.stripes[len(s.stripes)-1].Colour
}
