package movie

import (
	"fmt"
	"math"
	"time"
)

type frame struct {
	texture  Texture
	duration time.Duration
	sound    Sound
}

// Player owns an ordered list of frames and advances through them.
type Player struct {
	display   Display
	frames    []frame
	listeners []FrameListener

	defaultDuration time.Duration
	totalDuration   time.Duration
	elapsed         time.Duration
	current         int
	playing         bool
	loop            bool
}

// New creates a paused, looping Player holding a single frame. Frames added
// without an explicit duration are shown for 1/fps seconds. The display may
// be nil, in which case textures are not pushed anywhere.
func New(display Display, texture Texture, fps float64) (*Player, error) {
	if texture == nil {
		return nil, nilTexture("new")
	}

	d, err := FrameDuration(fps)
	if err != nil {
		return nil, err
	}

	p := new(Player)
	p.display = display
	p.frames = []frame{{texture: texture, duration: d}}
	p.defaultDuration = d
	p.totalDuration = d
	p.loop = true

	p.bind()

	return p, nil
}

// FrameDuration converts a frame rate into the time each frame is shown.
func FrameDuration(fps float64) (time.Duration, error) {
	if math.IsNaN(fps) || math.IsInf(fps, 0) || fps <= 0 {
		return 0, &DurationError{Op: "fps", Msg: fmt.Sprintf("frame rate %v is not positive and finite", fps)}
	}

	d := time.Duration(math.Round(float64(time.Second) / fps))
	if d <= 0 {
		return 0, &DurationError{Op: "fps", Msg: fmt.Sprintf("frame rate %v is too high", fps)}
	}

	return d, nil
}

// AddFrame appends a frame shown for the default duration and returns its index.
func (p *Player) AddFrame(texture Texture) (int, error) {
	return p.AddFrameDuration(texture, p.defaultDuration)
}

// AddFrameDuration appends a frame shown for d and returns its index.
func (p *Player) AddFrameDuration(texture Texture, d time.Duration) (int, error) {
	if texture == nil {
		return 0, nilTexture("add")
	}
	if d <= 0 {
		return 0, durationError("add", d)
	}

	p.frames = append(p.frames, frame{texture: texture, duration: d})
	p.totalDuration += d

	return len(p.frames) - 1, nil
}

// InsertFrame inserts a frame before index; index == NumFrames appends. The
// new frame takes the duration of the frame it displaces. Inserting at or
// before the current frame keeps the same frame on display.
func (p *Player) InsertFrame(texture Texture, index int) error {
	if texture == nil {
		return nilTexture("insert")
	}
	if index < 0 || index > len(p.frames) {
		return rangeError("insert", index, len(p.frames)+1)
	}

	d := p.defaultDuration
	if index < len(p.frames) {
		d = p.frames[index].duration
	}

	p.frames = append(p.frames, frame{})
	copy(p.frames[index+1:], p.frames[index:])
	p.frames[index] = frame{texture: texture, duration: d}
	p.totalDuration += d

	if index <= p.current {
		p.current++
	}

	return nil
}

// RemoveFrame removes the frame at index. The only remaining frame can never
// be removed. Removing the current frame moves the playhead onto the frame
// that followed it (or the new last frame) and restarts its timing; no
// frame-change event fires for that move.
func (p *Player) RemoveFrame(index int) error {
	if err := p.checkIndex("remove", index); err != nil {
		return err
	}
	if len(p.frames) == 1 {
		return &RangeError{Op: "remove", Index: index, Limit: 1, Kind: ErrOnlyFrame}
	}

	p.totalDuration -= p.frames[index].duration
	p.frames = append(p.frames[:index], p.frames[index+1:]...)

	switch {
	case index < p.current:
		p.current--
	case index == p.current:
		if p.current >= len(p.frames) {
			p.current = len(p.frames) - 1
		}
		p.elapsed = 0
		p.bind()
	}

	return nil
}

// SetFrame replaces the texture at index.
func (p *Player) SetFrame(index int, texture Texture) error {
	if texture == nil {
		return nilTexture("set frame")
	}
	if err := p.checkIndex("set frame", index); err != nil {
		return err
	}

	p.frames[index].texture = texture
	if index == p.current {
		p.bind()
	}

	return nil
}

// SetSound attaches a sound to the frame at index. A nil sound clears it.
func (p *Player) SetSound(index int, sound Sound) error {
	if err := p.checkIndex("set sound", index); err != nil {
		return err
	}

	p.frames[index].sound = sound

	return nil
}

// SetDuration changes how long the frame at index is shown. Shortening the
// current frame below the time already spent on it restarts its timing.
func (p *Player) SetDuration(index int, d time.Duration) error {
	if err := p.checkIndex("set duration", index); err != nil {
		return err
	}
	if d <= 0 {
		return durationError("set duration", d)
	}

	p.totalDuration += d - p.frames[index].duration
	p.frames[index].duration = d

	if index == p.current && p.elapsed >= d {
		p.elapsed = 0
	}

	return nil
}

// FrameAt returns the texture at index.
func (p *Player) FrameAt(index int) (Texture, error) {
	if err := p.checkIndex("frame at", index); err != nil {
		return nil, err
	}
	return p.frames[index].texture, nil
}

// SoundAt returns the sound at index, which may be nil.
func (p *Player) SoundAt(index int) (Sound, error) {
	if err := p.checkIndex("sound at", index); err != nil {
		return nil, err
	}
	return p.frames[index].sound, nil
}

// DurationAt returns the duration of the frame at index.
func (p *Player) DurationAt(index int) (time.Duration, error) {
	if err := p.checkIndex("duration at", index); err != nil {
		return 0, err
	}
	return p.frames[index].duration, nil
}

// Play resumes advancing from the current position.
func (p *Player) Play() {
	p.playing = true
}

// Pause stops advancing without moving the playhead.
func (p *Player) Pause() {
	p.playing = false
}

// Stop pauses and rewinds to the first frame.
func (p *Player) Stop() {
	p.playing = false
	p.current = 0
	p.elapsed = 0
	p.bind()
}

// SetCurrentFrame seeks to index. Timing restarts and the frame's texture is
// pushed to the display immediately. Seeking fires no events and plays no
// sound.
func (p *Player) SetCurrentFrame(index int) error {
	if err := p.checkIndex("seek", index); err != nil {
		return err
	}

	p.current = index
	p.elapsed = 0
	p.bind()

	return nil
}

// AddListener registers fn to be called for every frame change caused by Advance.
func (p *Player) AddListener(fn FrameListener) {
	if fn == nil {
		return
	}
	p.listeners = append(p.listeners, fn)
}

// Advance moves the playhead forward by dt. Every frame boundary crossed
// produces one Effect, in the order crossed, including wraps to frame 0 when
// looping. After settling, the current texture is pushed to the display and
// each effect is dispatched: listeners first, then the frame's sound.
//
// Without looping, running past the last frame leaves the playhead on it with
// no elapsed time and stops playback; no effect is produced for that step.
func (p *Player) Advance(dt time.Duration) []Effect {
	if !p.playing || len(p.frames) <= 1 {
		return nil
	}
	if dt > 0 {
		p.elapsed += dt
	}

	var effects []Effect
	for p.elapsed >= p.frames[p.current].duration {
		p.elapsed -= p.frames[p.current].duration
		p.current++

		if p.current == len(p.frames) {
			if !p.loop {
				p.current = len(p.frames) - 1
				p.elapsed = 0
				p.playing = false
				break
			}
			p.current = 0
		}

		effects = append(effects, Effect{Frame: p.current, Sound: p.frames[p.current].sound})
	}

	p.bind()

	for _, e := range effects {
		for _, fn := range p.listeners {
			fn(e.Frame)
		}
		if e.Sound != nil {
			e.Sound.Play()
		}
	}

	return effects
}

// NumFrames returns the number of frames.
func (p *Player) NumFrames() int {
	return len(p.frames)
}

// TotalDuration returns the sum of all frame durations.
func (p *Player) TotalDuration() time.Duration {
	return p.totalDuration
}

// DefaultDuration returns the duration given to frames added without one.
func (p *Player) DefaultDuration() time.Duration {
	return p.defaultDuration
}

// IsPlaying reports whether Advance has any effect.
func (p *Player) IsPlaying() bool {
	return p.playing
}

// Loop reports whether playback wraps to the first frame after the last.
func (p *Player) Loop() bool {
	return p.loop
}

// SetLoop enables or disables wrapping.
func (p *Player) SetLoop(loop bool) {
	p.loop = loop
}

// CurrentFrame returns the index of the frame on display.
func (p *Player) CurrentFrame() int {
	return p.current
}

// Elapsed returns the time spent on the current frame.
func (p *Player) Elapsed() time.Duration {
	return p.elapsed
}

// State returns a copy of the playback state.
func (p *Player) State() State {
	return State{
		CurrentFrame:    p.current,
		NumFrames:       len(p.frames),
		Elapsed:         p.elapsed,
		TotalDuration:   p.totalDuration,
		DefaultDuration: p.defaultDuration,
		Playing:         p.playing,
		Loop:            p.loop,
	}
}

func (p *Player) checkIndex(op string, index int) error {
	if index < 0 || index >= len(p.frames) {
		return rangeError(op, index, len(p.frames))
	}
	return nil
}

func (p *Player) bind() {
	if p.display != nil {
		p.display.SetTexture(p.frames[p.current].texture)
	}
}
