package sound

import (
	"time"

	"github.com/gopxl/beep"
)

// Channel is a single buffered cue. Playing it again restarts it.
type Channel struct {
	name   string
	bank   *Bank
	buffer *beep.Buffer
	ctrl   *beep.Ctrl
}

// Name returns the name the cue was registered under.
func (c *Channel) Name() string {
	return c.name
}

// Duration returns the length of the cue.
func (c *Channel) Duration() time.Duration {
	return c.buffer.Format().SampleRate.D(c.buffer.Len())
}

// Play starts the cue from the beginning, cutting off a previous play.
func (c *Channel) Play() {
	c.bank.lock.Lock()
	defer c.bank.lock.Unlock()

	if c.ctrl != nil {
		c.ctrl.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: c.buffer.Streamer(0, c.buffer.Len())}
	c.ctrl = ctrl
	c.bank.mixer.Add(beep.Seq(ctrl, beep.Callback(func() { c.finished(ctrl) })))
}

// Stop silences the cue if it is playing.
func (c *Channel) Stop() {
	c.bank.lock.Lock()
	defer c.bank.lock.Unlock()

	if c.ctrl != nil {
		c.ctrl.Streamer = nil
		c.ctrl = nil
	}
}

// Playing reports whether the cue is still sounding.
func (c *Channel) Playing() bool {
	c.bank.lock.Lock()
	defer c.bank.lock.Unlock()
	return c.ctrl != nil
}

// finished runs on the mixer's goroutine with the lock already held.
func (c *Channel) finished(ctrl *beep.Ctrl) {
	if c.ctrl == ctrl {
		c.ctrl = nil
	}
}
