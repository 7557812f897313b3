package stream

import (
	"fmt"

	"github.com/matt-g-everett/ledreel/movie"
)

// BuildClip bakes the configured frames into a Library and a Player bound to
// display. Sounds are looked up by name in sounds; a configured sound that is
// missing from sounds (audio disabled) leaves its frames silent.
func BuildClip(cfg Config, display movie.Display, sounds map[string]movie.Sound) (*Controller, error) {
	library := NewLibrary()
	for name, s := range sounds {
		library.AddSound(name, s)
	}

	type entry struct {
		texture  *Frame
		duration float64
		sound    movie.Sound
	}
	var entries []entry

	for i, fc := range cfg.Clip.Frames {
		painter, err := NewPainter(fc)
		if err != nil {
			return nil, fmt.Errorf("clip.frames[%d]: %w", i, err)
		}

		base := fc.Name
		if base == "" {
			base = fmt.Sprintf("%s%d", painterName(fc), i)
		}

		s := sounds[fc.Sound]
		for j, f := range Bake(painter, cfg.Strip.Pixels, fc.Count) {
			name := base
			if fc.Count > 1 {
				name = fmt.Sprintf("%s-%d", base, j)
			}
			library.AddTexture(name, f)
			entries = append(entries, entry{texture: f, duration: fc.Duration, sound: s})
		}
	}
	if len(entries) == 0 {
		return nil, invalidf("clip has no frames")
	}

	player, err := movie.New(display, entries[0].texture, cfg.Clip.FPS)
	if err != nil {
		return nil, err
	}

	for i, e := range entries {
		if i > 0 {
			if e.duration > 0 {
				_, err = player.AddFrameDuration(e.texture, Seconds(e.duration))
			} else {
				_, err = player.AddFrame(e.texture)
			}
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}
		} else if e.duration > 0 {
			if err := player.SetDuration(0, Seconds(e.duration)); err != nil {
				return nil, fmt.Errorf("frame 0: %w", err)
			}
		}

		if e.sound != nil {
			if err := player.SetSound(i, e.sound); err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}
		}
	}

	player.SetLoop(cfg.Clip.Loops())
	if cfg.Clip.Autoplays() {
		player.Play()
	}

	return NewController(player, library), nil
}

func painterName(fc FrameConfig) string {
	if fc.Painter == "" {
		return PainterSolid
	}
	return fc.Painter
}
