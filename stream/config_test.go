package stream

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testConfig = `
mqtt:
  url: tcp://localhost:1883
  topics:
    control: home/xmastree/control
    status: home/xmastree/status
strip:
  pixels: 50
  fade: 40ms
audio:
  enabled: false
clip:
  fps: 5
  loop: false
  frames:
    - painter: solid
      colour: "#ff0000"
      duration: 0.5
    - painter: twinkle
      count: 3
      seed: 4
      sound: chime
    - name: trail
      painter: gradient
      count: 2
sounds:
  - name: chime
    path: sounds/chime.wav
`

func TestParseConfig_DefaultsAndValues(t *testing.T) {
	c, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Mqtt.ClientID != "ledreel" || c.Mqtt.Topics.Stream != "home/xmastree/stream" {
		t.Fatalf("expected mqtt defaults, got %+v", c.Mqtt)
	}
	if c.Mqtt.Topics.Control != "home/xmastree/control" {
		t.Fatalf("unexpected control topic %q", c.Mqtt.Topics.Control)
	}
	if c.Strip.Pixels != 50 || c.Strip.FrameRate != 30 || c.Strip.Fade != 40*time.Millisecond {
		t.Fatalf("unexpected strip config: %+v", c.Strip)
	}
	if c.Audio.Enabled || c.Audio.SampleRate != 48000 || c.Audio.Buffer != 100*time.Millisecond {
		t.Fatalf("unexpected audio config: %+v", c.Audio)
	}
	if c.Clip.FPS != 5 || c.Clip.Loops() || !c.Clip.Autoplays() {
		t.Fatalf("unexpected clip config: %+v", c.Clip)
	}
	if len(c.Clip.Frames) != 3 || c.Clip.Frames[0].Count != 1 || c.Clip.Frames[1].Count != 3 {
		t.Fatalf("unexpected frames: %+v", c.Clip.Frames)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"no frames":      "clip: {fps: 10}",
		"bad fps":        "clip: {fps: -1, frames: [{painter: solid}]}",
		"bad painter":    "clip: {frames: [{painter: plasma}]}",
		"bad colour":     "clip: {frames: [{painter: solid, colour: red}]}",
		"unknown sound":  "clip: {frames: [{sound: gong}]}",
		"negative time":  "clip: {frames: [{duration: -0.1}]}",
		"bad qos":        "mqtt: {qos: 3}\nclip: {frames: [{}]}",
		"too many px":    "strip: {pixels: 70000}\nclip: {frames: [{}]}",
		"unknown field":  "clip: {frames: [{}], speed: 3}",
		"sound no path":  "sounds: [{name: a}]\nclip: {frames: [{}]}",
		"duplicate name": "sounds: [{name: a, path: a.wav}, {name: a, path: b.wav}]\nclip: {frames: [{}]}",
	}

	for name, doc := range tests {
		if _, err := ParseConfig([]byte(doc)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Strip.Pixels != 50 {
		t.Fatalf("expected 50 pixels, got %d", c.Strip.Pixels)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
