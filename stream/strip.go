package stream

import (
	"log"
	"time"

	"github.com/matt-g-everett/ledreel/movie"
	"github.com/matt-g-everett/ledreel/util"
)

// Strip is the host display for a movie. It holds the bound texture and
// renders what the LEDs should show, crossfading from the previous output
// when the texture changes.
type Strip struct {
	numPixels   int
	fade        time.Duration
	current     *Frame
	previous    *Frame
	last        *Frame
	fadeElapsed time.Duration
}

// NewStrip creates a Strip. A fade of zero switches textures instantly.
func NewStrip(numPixels int, fade time.Duration) *Strip {
	s := new(Strip)
	s.numPixels = numPixels
	if fade > 0 {
		s.fade = fade
	}
	return s
}

// SetTexture binds a new texture. Only *Frame textures can be shown.
func (s *Strip) SetTexture(t movie.Texture) {
	f, ok := t.(*Frame)
	if !ok || f == nil {
		log.Printf("strip: ignoring texture of type %T", t)
		return
	}
	if f == s.current {
		return
	}

	if s.fade > 0 && s.last != nil {
		s.previous = s.last
		s.fadeElapsed = 0
	}
	s.current = f
}

// Bound returns the texture most recently bound, or nil.
func (s *Strip) Bound() *Frame {
	return s.current
}

// Render returns the frame to display after dt has passed since the last render.
func (s *Strip) Render(dt time.Duration) *Frame {
	if s.current == nil {
		s.last = NewFrame(s.numPixels)
		return s.last
	}

	if s.previous != nil {
		s.fadeElapsed += dt
		if s.fadeElapsed >= s.fade {
			s.previous = nil
		}
	}

	if s.previous == nil {
		s.last = s.current
		return s.last
	}

	t := util.Ease(float64(s.fadeElapsed) / float64(s.fade))
	s.last = s.previous.InterpolateFrame(s.current, t)
	return s.last
}
