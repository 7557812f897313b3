package stream

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxPixels is the largest strip a frame can describe on the wire.
const MaxPixels = math.MaxUint16

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black Frame with numPixels pixels.
func NewFrame(numPixels int) *Frame {
	if numPixels < 0 {
		numPixels = 0
	}
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// At returns the colour of pixel i.
func (f *Frame) At(i int) colorful.Color {
	return f.pixels[i]
}

// Set sets the colour of pixel i.
func (f *Frame) Set(i int, c colorful.Color) {
	f.pixels[i] = c
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Clone returns a copy of the frame.
func (f *Frame) Clone() *Frame {
	out := NewFrame(len(f.pixels))
	copy(out.pixels, f.pixels)
	return out
}

// InterpolateFrame merges two frames. A transitionPoint of 0 gives f, 1 gives
// f2. Pixels beyond the shorter frame are taken from f.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := f.Clone()
	n := len(f.pixels)
	if len(f2.pixels) < n {
		n = len(f2.pixels)
	}
	for i := 0; i < n; i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data: a little endian uint16
// pixel count followed by one RGB triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > MaxPixels {
		return nil, errors.New("stream: frame has too many pixels")
	}

	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return errors.New("stream: frame data too short")
	}
	n := int(binary.LittleEndian.Uint16(data))
	if len(data) != 2+n*3 {
		return errors.New("stream: frame data length does not match pixel count")
	}

	f.pixels = make([]colorful.Color, n)
	for i := 0; i < n; i++ {
		o := 2 + i*3
		f.pixels[i] = colorful.Color{
			R: float64(data[o]) / 255.0,
			G: float64(data[o+1]) / 255.0,
			B: float64(data[o+2]) / 255.0,
		}
	}

	return nil
}
