package stream

import (
	"fmt"
	"math"
	"time"

	"github.com/matt-g-everett/ledreel/movie"
)

// Controller applies control Commands to a movie player.
type Controller struct {
	player  *movie.Player
	library *Library
}

// NewController creates an instance of a Controller.
func NewController(player *movie.Player, library *Library) *Controller {
	c := new(Controller)
	c.player = player
	c.library = library
	if c.library == nil {
		c.library = NewLibrary()
	}
	return c
}

// Player returns the controlled player.
func (c *Controller) Player() *movie.Player {
	return c.player
}

// Library returns the assets commands can refer to.
func (c *Controller) Library() *Library {
	return c.library
}

// Status reports the current playback state.
func (c *Controller) Status() Status {
	st := c.player.State()
	return Status{
		CurrentFrame:  st.CurrentFrame,
		NumFrames:     st.NumFrames,
		Elapsed:       st.Elapsed.Seconds(),
		TotalDuration: st.TotalDuration.Seconds(),
		Playing:       st.Playing,
		Loop:          st.Loop,
	}
}

// Apply executes cmd and returns the resulting status. A failed command
// leaves the player unchanged.
func (c *Controller) Apply(cmd Command) (Status, error) {
	if err := c.apply(cmd); err != nil {
		return c.Status(), fmt.Errorf("%s: %w", cmd.Type, err)
	}
	return c.Status(), nil
}

func (c *Controller) apply(cmd Command) error {
	p := c.player

	switch cmd.Type {
	case CommandPlay:
		p.Play()
	case CommandPause:
		p.Pause()
	case CommandStop:
		p.Stop()
	case CommandStatus:
	case CommandSeek:
		return p.SetCurrentFrame(cmd.Index)
	case CommandLoop:
		p.SetLoop(cmd.Loop)
	case CommandAdd:
		tex, err := c.library.Texture(cmd.Texture)
		if err != nil {
			return err
		}
		if cmd.Duration == 0 {
			_, err = p.AddFrame(tex)
		} else {
			_, err = p.AddFrameDuration(tex, Seconds(cmd.Duration))
		}
		return err
	case CommandInsert:
		tex, err := c.library.Texture(cmd.Texture)
		if err != nil {
			return err
		}
		return p.InsertFrame(tex, cmd.Index)
	case CommandRemove:
		return p.RemoveFrame(cmd.Index)
	case CommandSetFrame:
		tex, err := c.library.Texture(cmd.Texture)
		if err != nil {
			return err
		}
		return p.SetFrame(cmd.Index, tex)
	case CommandSetSound:
		s, err := c.library.Sound(cmd.Sound)
		if err != nil {
			return err
		}
		return p.SetSound(cmd.Index, s)
	case CommandSetDuration:
		return p.SetDuration(cmd.Index, Seconds(cmd.Duration))
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Type)
	}

	return nil
}

// Seconds converts a number of seconds to a time.Duration, rounding to the
// nearest nanosecond.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
