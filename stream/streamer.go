package stream

import (
	"context"
	"log"
	"time"
)

// A Publisher sends rendered frames to the LED device.
type Publisher interface {
	Publish(f *Frame) error
}

type request struct {
	cmd   Command
	reply chan result
}

type result struct {
	status Status
	err    error
}

// Streamer drives a movie: it advances the player once per tick, renders
// the strip and publishes the result. The player is only ever touched from
// the goroutine running Run; other goroutines go through Do.
type Streamer struct {
	controller *Controller
	strip      *Strip
	publisher  Publisher
	interval   time.Duration
	requests   chan request
	done       chan struct{}
}

// NewStreamer creates an instance of a Streamer ticking frameRate times a
// second. A nil publisher renders without sending anything.
func NewStreamer(controller *Controller, strip *Strip, publisher Publisher, frameRate float64) *Streamer {
	s := new(Streamer)
	s.controller = controller
	s.strip = strip
	s.publisher = publisher
	s.interval = 33 * time.Millisecond
	if frameRate > 0 {
		s.interval = time.Duration(float64(time.Second) / frameRate)
	}
	s.requests = make(chan request)
	s.done = make(chan struct{})
	return s
}

// Tick advances the movie by dt, renders the strip and publishes it.
func (s *Streamer) Tick(dt time.Duration) error {
	s.controller.Player().Advance(dt)
	f := s.strip.Render(dt)
	if s.publisher == nil {
		return nil
	}
	return s.publisher.Publish(f)
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	defer close(s.done)

	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-publishTimer.C:
			dt := now.Sub(last)
			last = now
			if err := s.Tick(dt); err != nil {
				log.Printf("publish: %v", err)
			}
		case req := <-s.requests:
			st, err := s.controller.Apply(req.cmd)
			req.reply <- result{status: st, err: err}
		}
	}
}

// Do runs cmd on the streaming goroutine and waits for its result.
func (s *Streamer) Do(ctx context.Context, cmd Command) (Status, error) {
	reply := make(chan result, 1)
	select {
	case s.requests <- request{cmd: cmd, reply: reply}:
	case <-s.done:
		return Status{}, ErrStopped
	case <-ctx.Done():
		return Status{}, ctx.Err()
	}

	select {
	case r := <-reply:
		return r.status, r.err
	case <-ctx.Done():
		return Status{}, ctx.Err()
	}
}
