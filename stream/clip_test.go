package stream

import (
	"reflect"
	"testing"
	"time"

	"github.com/matt-g-everett/ledreel/movie"
)

func TestBuildClip(t *testing.T) {
	cfg, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chime := &countingSound{}
	strip := NewStrip(cfg.Strip.Pixels, cfg.Strip.Fade)
	c, err := BuildClip(cfg, strip, map[string]movie.Sound{"chime": chime})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := c.Player()
	if p.NumFrames() != 6 {
		t.Fatalf("expected 6 frames, got %d", p.NumFrames())
	}
	if p.TotalDuration() != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s, got %v", p.TotalDuration())
	}
	if p.Loop() || !p.IsPlaying() {
		t.Fatalf("expected non-looping autoplaying clip")
	}

	for i := 1; i <= 3; i++ {
		if s, _ := p.SoundAt(i); s != chime {
			t.Fatalf("expected chime on frame %d", i)
		}
	}
	if s, _ := p.SoundAt(4); s != nil {
		t.Fatalf("expected no sound on frame 4")
	}

	want := []string{"solid0", "trail-0", "trail-1", "twinkle1-0", "twinkle1-1", "twinkle1-2"}
	if got := c.Library().TextureNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !reflect.DeepEqual(c.Library().SoundNames(), []string{"chime"}) {
		t.Fatalf("unexpected sounds: %v", c.Library().SoundNames())
	}

	first, _ := p.FrameAt(0)
	if strip.Bound() != first {
		t.Fatalf("expected the first frame bound on creation")
	}

	p.Advance(10 * time.Second)
	if p.CurrentFrame() != 5 || p.IsPlaying() {
		t.Fatalf("expected clip to end on the last frame")
	}
	if chime.plays != 3 {
		t.Fatalf("expected 3 chimes, got %d", chime.plays)
	}
}

func TestBuildClip_MissingSoundIsSilent(t *testing.T) {
	cfg, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := BuildClip(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < c.Player().NumFrames(); i++ {
		if s, _ := c.Player().SoundAt(i); s != nil {
			t.Fatalf("expected frame %d to be silent", i)
		}
	}
}
