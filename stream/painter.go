package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Painter renders one step of a generated animation into a frame.
// Painters are deterministic: the same step always paints the same pixels.
type Painter interface {
	Paint(f *Frame, step int)
}

// Bake renders count consecutive steps of p into new frames.
func Bake(p Painter, numPixels int, count int) []*Frame {
	frames := make([]*Frame, 0, count)
	for step := 0; step < count; step++ {
		f := NewFrame(numPixels)
		p.Paint(f, step)
		frames = append(frames, f)
	}
	return frames
}

// Solid paints every pixel with one colour.
type Solid struct {
	Colour colorful.Color
}

// Paint fills the frame.
func (s Solid) Paint(f *Frame, step int) {
	f.Fill(s.Colour)
}
