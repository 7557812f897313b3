package movie

import "time"

// Texture is an opaque handle to image data owned by the caller. The player
// only stores it and hands it to the Display.
type Texture interface{}

// Sound is an audio cue that can be triggered when its frame is reached.
type Sound interface {
	Play()
	Stop()
}

// Display is the host object that shows the currently bound texture.
type Display interface {
	SetTexture(t Texture)
}

// FrameListener is called once for every frame boundary crossed by Advance.
type FrameListener func(frame int)

// Effect records a single crossed frame boundary: the frame that became
// current and the sound attached to it, if any.
type Effect struct {
	Frame int
	Sound Sound
}

// State is a copy of the player's observable playback state.
type State struct {
	CurrentFrame    int
	NumFrames       int
	Elapsed         time.Duration
	TotalDuration   time.Duration
	DefaultDuration time.Duration
	Playing         bool
	Loop            bool
}
