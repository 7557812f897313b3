package stream

import (
	"errors"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledreel/movie"
)

type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }
func (s *countingSound) Stop() {}

func newTestController(t *testing.T) (*Controller, *Strip, *countingSound) {
	t.Helper()

	lib := NewLibrary()
	red := solidFrame(4, colorful.Color{R: 1})
	green := solidFrame(4, colorful.Color{G: 1})
	blue := solidFrame(4, colorful.Color{B: 1})
	lib.AddTexture("red", red)
	lib.AddTexture("green", green)
	lib.AddTexture("blue", blue)
	chime := &countingSound{}
	lib.AddSound("chime", chime)

	strip := NewStrip(4, 0)
	p, err := movie.New(strip, red, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewController(p, lib), strip, chime
}

func mustApply(t *testing.T, c *Controller, cmd Command) Status {
	t.Helper()
	st, err := c.Apply(cmd)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", cmd.Type, err)
	}
	return st
}

func TestController_BuildAndPlay(t *testing.T) {
	c, strip, chime := newTestController(t)

	mustApply(t, c, Command{Type: CommandAdd, Texture: "green"})
	mustApply(t, c, Command{Type: CommandAdd, Texture: "blue", Duration: 0.25})
	mustApply(t, c, Command{Type: CommandSetSound, Index: 2, Sound: "chime"})
	st := mustApply(t, c, Command{Type: CommandPlay})

	if st.NumFrames != 3 || !st.Playing {
		t.Fatalf("unexpected status: %+v", st)
	}
	if st.TotalDuration != 0.45 {
		t.Fatalf("expected 0.45s total, got %v", st.TotalDuration)
	}

	c.Player().Advance(200 * time.Millisecond)
	if c.Player().CurrentFrame() != 2 || chime.plays != 1 {
		t.Fatalf("expected frame 2 with one chime, got %d/%d", c.Player().CurrentFrame(), chime.plays)
	}
	if lib := c.Library(); strip.Bound() != mustTexture(t, lib, "blue") {
		t.Fatalf("expected blue bound")
	}
}

func mustTexture(t *testing.T, lib *Library, name string) *Frame {
	t.Helper()
	f, err := lib.Texture(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestController_EditCommands(t *testing.T) {
	c, strip, _ := newTestController(t)
	mustApply(t, c, Command{Type: CommandAdd, Texture: "green"})
	mustApply(t, c, Command{Type: CommandAdd, Texture: "blue"})

	st := mustApply(t, c, Command{Type: CommandSeek, Index: 1})
	if st.CurrentFrame != 1 || strip.Bound() != mustTexture(t, c.Library(), "green") {
		t.Fatalf("seek did not bind frame 1: %+v", st)
	}

	st = mustApply(t, c, Command{Type: CommandInsert, Texture: "red", Index: 0})
	if st.NumFrames != 4 || st.CurrentFrame != 2 {
		t.Fatalf("unexpected status after insert: %+v", st)
	}

	st = mustApply(t, c, Command{Type: CommandRemove, Index: 0})
	if st.NumFrames != 3 || st.CurrentFrame != 1 {
		t.Fatalf("unexpected status after remove: %+v", st)
	}

	mustApply(t, c, Command{Type: CommandSetFrame, Index: 1, Texture: "blue"})
	if strip.Bound() != mustTexture(t, c.Library(), "blue") {
		t.Fatalf("set-frame on the current frame must rebind")
	}

	st = mustApply(t, c, Command{Type: CommandSetDuration, Index: 0, Duration: 0.5})
	if st.TotalDuration != 0.7 {
		t.Fatalf("expected 0.7s total, got %v", st.TotalDuration)
	}

	st = mustApply(t, c, Command{Type: CommandLoop, Loop: false})
	if st.Loop {
		t.Fatalf("expected loop disabled")
	}

	mustApply(t, c, Command{Type: CommandSetSound, Index: 0, Sound: "chime"})
	mustApply(t, c, Command{Type: CommandSetSound, Index: 0})
	if s, _ := c.Player().SoundAt(0); s != nil {
		t.Fatalf("empty sound name must clear the slot")
	}

	mustApply(t, c, Command{Type: CommandPlay})
	st = mustApply(t, c, Command{Type: CommandStop})
	if st.Playing || st.CurrentFrame != 0 {
		t.Fatalf("unexpected status after stop: %+v", st)
	}
	st = mustApply(t, c, Command{Type: CommandPause})
	if st.Playing {
		t.Fatalf("expected paused")
	}
}

func TestController_Errors(t *testing.T) {
	c, _, _ := newTestController(t)

	tests := []struct {
		cmd  Command
		want error
	}{
		{Command{Type: "jump"}, ErrUnknownCommand},
		{Command{Type: CommandAdd, Texture: "purple"}, ErrUnknownAsset},
		{Command{Type: CommandAdd, Texture: "green", Duration: -1}, movie.ErrInvalidDuration},
		{Command{Type: CommandSetSound, Index: 0, Sound: "gong"}, ErrUnknownAsset},
		{Command{Type: CommandSeek, Index: 3}, movie.ErrRange},
		{Command{Type: CommandRemove, Index: 0}, movie.ErrOnlyFrame},
		{Command{Type: CommandSetDuration, Index: 0}, movie.ErrInvalidDuration},
		{Command{Type: CommandInsert, Texture: "green", Index: 5}, movie.ErrRange},
	}

	for _, tc := range tests {
		st, err := c.Apply(tc.cmd)
		if !errors.Is(err, tc.want) {
			t.Errorf("%+v: expected %v, got %v", tc.cmd, tc.want, err)
		}
		if st.NumFrames != 1 || st.TotalDuration != 0.1 {
			t.Errorf("%+v: state changed after failed command: %+v", tc.cmd, st)
		}
	}
}

func TestSeconds(t *testing.T) {
	if Seconds(0.1) != 100*time.Millisecond {
		t.Fatalf("expected 100ms, got %v", Seconds(0.1))
	}
	if Seconds(1.0/3.0) != 333333333*time.Nanosecond {
		t.Fatalf("expected rounding to the nanosecond, got %v", Seconds(1.0/3.0))
	}
}
