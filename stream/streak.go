package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// A Streak is a Painter that sends a streak along the strip that fades in
// then out as it travels.
type Streak struct {
	colour     colorful.Color
	backColour colorful.Color
	length     float64
	increment  float64
}

// NewStreak creates an instance of a Streak object. The streak advances
// increment pixels per step.
func NewStreak(colour, backColour colorful.Color, length int, increment float64) *Streak {
	s := new(Streak)
	s.colour = colour
	s.backColour = backColour
	s.length = float64(length)
	if s.length < 1 {
		s.length = 1
	}
	s.increment = increment
	if s.increment <= 0 {
		s.increment = 1
	}

	return s
}

// overallGain eases in over the first half of the travel and out over the second.
func (s *Streak) overallGain(progress float64) float64 {
	if progress < 0 || progress > 1 {
		return 0
	}
	distance := progress * 2
	if distance > 1 {
		distance = 1 - (distance - 1)
	}

	return ease.InOutQuad(distance)
}

// Paint renders the streak at the given step.
func (s *Streak) Paint(f *Frame, step int) {
	f.Fill(s.backColour)

	numPixels := float64(f.Len())
	if numPixels == 0 {
		return
	}

	travel := numPixels + s.length
	current := math.Mod(float64(step)*s.increment, travel) - s.length
	bias := s.overallGain((current + s.length) / travel)

	start := int(math.Ceil(current))
	end := int(math.Floor(current + s.length))
	for i := start; i <= end; i++ {
		if i < 0 || i >= f.Len() {
			continue
		}
		f.Set(i, s.backColour.BlendHcl(s.colour, bias))
	}
}
