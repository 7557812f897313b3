package stream

import (
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"
)

// Painter names accepted in FrameConfig.
const (
	PainterSolid    = "solid"
	PainterGradient = "gradient"
	PainterTwinkle  = "twinkle"
	PainterStreak   = "streak"
	PainterStripe   = "stripe"
)

// Config is the yaml configuration of a streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
			Status  string `yaml:"status"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip  StripConfig   `yaml:"strip"`
	Audio  AudioConfig   `yaml:"audio"`
	HTTP   HTTPConfig    `yaml:"http"`
	Clip   ClipConfig    `yaml:"clip"`
	Sounds []SoundConfig `yaml:"sounds"`
}

// StripConfig describes the LED strip and how often frames are sent to it.
type StripConfig struct {
	Pixels    int           `yaml:"pixels"`
	FrameRate float64       `yaml:"frameRate"`
	Fade      time.Duration `yaml:"fade"`
}

// AudioConfig configures sound cue playback.
type AudioConfig struct {
	Enabled    bool          `yaml:"enabled"`
	SampleRate int           `yaml:"sampleRate"`
	Buffer     time.Duration `yaml:"buffer"`
}

// HTTPConfig configures the status server. An empty Addr disables it.
type HTTPConfig struct {
	Addr   string `yaml:"addr"`
	Static string `yaml:"static"`
}

// ClipConfig describes the initial frame sequence.
type ClipConfig struct {
	FPS      float64       `yaml:"fps"`
	Loop     *bool         `yaml:"loop"`
	Autoplay *bool         `yaml:"autoplay"`
	Frames   []FrameConfig `yaml:"frames"`
}

// FrameConfig describes one or more frames baked from a painter. Duration is
// in seconds; zero means the clip's default.
type FrameConfig struct {
	Name      string   `yaml:"name"`
	Painter   string   `yaml:"painter"`
	Colour    string   `yaml:"colour"`
	Back      string   `yaml:"back"`
	Palette   []string `yaml:"palette"`
	Seed      int64    `yaml:"seed"`
	Count     int      `yaml:"count"`
	Particles int      `yaml:"particles"`
	Length    int      `yaml:"length"`
	Speed     float64  `yaml:"speed"`
	Duration  float64  `yaml:"duration"`
	Sound     string   `yaml:"sound"`
}

// SoundConfig names a wav file used as a sound cue.
type SoundConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// LoadConfig reads, defaults and validates the config at path.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

// ParseConfig decodes yaml, applies defaults and validates the result.
func ParseConfig(b []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledreel"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Strip.Pixels == 0 {
		c.Strip.Pixels = 500
	}
	if c.Strip.FrameRate == 0 {
		c.Strip.FrameRate = 30
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 48000
	}
	if c.Audio.Buffer == 0 {
		c.Audio.Buffer = 100 * time.Millisecond
	}
	if c.Clip.FPS == 0 {
		c.Clip.FPS = 10
	}
	for i := range c.Clip.Frames {
		if c.Clip.Frames[i].Count == 0 {
			c.Clip.Frames[i].Count = 1
		}
	}
}

// Validate reports the first problem found in the config.
func (c Config) Validate() error {
	if c.Strip.Pixels < 1 || c.Strip.Pixels > MaxPixels {
		return invalidf("strip.pixels must be in [1,%d], got %d", MaxPixels, c.Strip.Pixels)
	}
	if c.Strip.FrameRate <= 0 {
		return invalidf("strip.frameRate must be positive, got %v", c.Strip.FrameRate)
	}
	if c.Strip.Fade < 0 {
		return invalidf("strip.fade must not be negative, got %v", c.Strip.Fade)
	}
	if c.Mqtt.QoS > 2 {
		return invalidf("mqtt.qos must be 0, 1 or 2, got %d", c.Mqtt.QoS)
	}
	if c.Audio.SampleRate <= 0 {
		return invalidf("audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Clip.FPS <= 0 {
		return invalidf("clip.fps must be positive, got %v", c.Clip.FPS)
	}
	if len(c.Clip.Frames) == 0 {
		return invalidf("clip.frames must not be empty")
	}

	sounds := make(map[string]bool, len(c.Sounds))
	for i, s := range c.Sounds {
		if s.Name == "" || s.Path == "" {
			return invalidf("sounds[%d] needs a name and a path", i)
		}
		if sounds[s.Name] {
			return invalidf("sounds[%d]: duplicate name %q", i, s.Name)
		}
		sounds[s.Name] = true
	}

	for i, f := range c.Clip.Frames {
		if f.Count < 1 {
			return invalidf("clip.frames[%d].count must be positive, got %d", i, f.Count)
		}
		if f.Duration < 0 {
			return invalidf("clip.frames[%d].duration must not be negative, got %v", i, f.Duration)
		}
		if f.Sound != "" && !sounds[f.Sound] {
			return invalidf("clip.frames[%d]: unknown sound %q", i, f.Sound)
		}
		if _, err := NewPainter(f); err != nil {
			return invalidf("clip.frames[%d]: %v", i, err)
		}
	}

	return nil
}

// Loops reports whether the clip wraps around; the default is true.
func (c ClipConfig) Loops() bool {
	return c.Loop == nil || *c.Loop
}

// Autoplays reports whether the clip starts playing immediately; the default is true.
func (c ClipConfig) Autoplays() bool {
	return c.Autoplay == nil || *c.Autoplay
}

// NewPainter builds the painter a frame config describes.
func NewPainter(f FrameConfig) (Painter, error) {
	switch f.Painter {
	case PainterSolid, "":
		colour, err := parseColour(f.Colour, "#404040")
		if err != nil {
			return nil, err
		}
		return Solid{Colour: colour}, nil
	case PainterGradient:
		return NewGradientTrail(RainbowGradient, orInt(f.Length, 180), orFloat(f.Speed, 2)), nil
	case PainterTwinkle:
		fore, err := parseColour(f.Colour, "#808080")
		if err != nil {
			return nil, err
		}
		back, err := parseColour(f.Back, "#000005")
		if err != nil {
			return nil, err
		}
		return NewTwinkle(orInt(f.Particles, 60), fore, back, f.Seed), nil
	case PainterStreak:
		colour, err := parseColour(f.Colour, "#732fd2")
		if err != nil {
			return nil, err
		}
		back, err := parseColour(f.Back, "#000005")
		if err != nil {
			return nil, err
		}
		return NewStreak(colour, back, orInt(f.Length, 10), orFloat(f.Speed, 4)), nil
	case PainterStripe:
		palette := make([]colorful.Color, 0, len(f.Palette))
		for _, hex := range f.Palette {
			c, err := colorful.Hex(hex)
			if err != nil {
				return nil, fmt.Errorf("palette colour %q: %v", hex, err)
			}
			palette = append(palette, c)
		}
		return NewStripePainter(palette, orInt(f.Particles, 8), 20, int32(orInt(f.Length, 60)), orFloat(f.Speed, 1), f.Seed), nil
	default:
		return nil, fmt.Errorf("unknown painter %q", f.Painter)
	}
}

func parseColour(hex, def string) (colorful.Color, error) {
	if hex == "" {
		hex = def
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("colour %q: %v", hex, err)
	}
	return c, nil
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
