// Package sound plays short audio cues through a shared beep mixer.
package sound

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

var ErrUnknownSound = errors.New("unknown sound")

// Bank holds decoded sound cues and the mixer they play through.
type Bank struct {
	rate     beep.SampleRate
	mixer    *beep.Mixer
	lock     sync.Locker
	channels map[string]*Channel
}

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// NewBank creates a Bank that plays through the speaker at sampleRate.
// Call Start before any cue is heard.
func NewBank(sampleRate int) *Bank {
	return NewBankWithLock(sampleRate, speakerLock{})
}

// NewBankWithLock creates a Bank whose mixer is guarded by lock instead of
// the speaker lock. The caller is responsible for streaming Mixer().
func NewBankWithLock(sampleRate int, lock sync.Locker) *Bank {
	b := new(Bank)
	b.rate = beep.SampleRate(sampleRate)
	b.mixer = &beep.Mixer{}
	b.lock = lock
	b.channels = make(map[string]*Channel)
	return b
}

// Start initialises the speaker and begins playing the mixer.
func (b *Bank) Start(buffer time.Duration) error {
	if err := speaker.Init(b.rate, b.rate.N(buffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	return nil
}

// Close silences every cue.
func (b *Bank) Close() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.mixer.Clear()
	for _, c := range b.channels {
		c.ctrl = nil
	}
}

// Mixer returns the mixer all channels play into.
func (b *Bank) Mixer() *beep.Mixer {
	return b.mixer
}

// SampleRate returns the rate cues are resampled to.
func (b *Bank) SampleRate() beep.SampleRate {
	return b.rate
}

// Load decodes the wav file at path and registers it under name.
func (b *Bank) Load(name, path string) (*Channel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	return b.Add(name, streamer, format)
}

// Add buffers streamer, resampling it to the bank's rate if needed, and
// registers the result under name.
func (b *Bank) Add(name string, streamer beep.Streamer, format beep.Format) (*Channel, error) {
	if name == "" {
		return nil, errors.New("sound: empty name")
	}

	var s beep.Streamer = streamer
	if format.SampleRate != b.rate {
		s = beep.Resample(4, format.SampleRate, b.rate, streamer)
		format.SampleRate = b.rate
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("buffer %s: %w", name, err)
	}

	c := &Channel{name: name, bank: b, buffer: buffer}

	b.lock.Lock()
	if old, ok := b.channels[name]; ok && old.ctrl != nil {
		old.ctrl.Streamer = nil
		old.ctrl = nil
	}
	b.channels[name] = c
	b.lock.Unlock()

	return c, nil
}

// Channel returns the cue registered under name.
func (b *Bank) Channel(name string) (*Channel, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	c, ok := b.channels[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSound, name)
	}
	return c, nil
}

// Names returns the registered cue names in order.
func (b *Bank) Names() []string {
	b.lock.Lock()
	defer b.lock.Unlock()
	names := make([]string, 0, len(b.channels))
	for name := range b.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
