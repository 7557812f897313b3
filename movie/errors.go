package movie

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRange           = errors.New("frame index out of range")
	ErrOnlyFrame       = fmt.Errorf("cannot remove the only frame: %w", ErrRange)
	ErrInvalidDuration = errors.New("invalid duration")
	ErrNilTexture      = errors.New("nil texture")
)

// RangeError reports an index outside [0, Limit).
type RangeError struct {
	Op    string
	Index int
	Limit int
	Kind  error
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == ErrOnlyFrame {
		return fmt.Sprintf("movie: %s %d: %s", e.Op, e.Index, ErrOnlyFrame.Error())
	}
	return fmt.Sprintf("movie: %s %d: %s [0,%d)", e.Op, e.Index, ErrRange.Error(), e.Limit)
}

func (e *RangeError) Unwrap() error {
	if e.Kind == nil {
		return ErrRange
	}
	return e.Kind
}

// DurationError reports a frame duration or frame rate that is not positive.
type DurationError struct {
	Op  string
	Msg string
}

func (e *DurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("movie: %s: %s: %s", e.Op, ErrInvalidDuration.Error(), e.Msg)
}

func (e *DurationError) Unwrap() error { return ErrInvalidDuration }

func rangeError(op string, index, limit int) error {
	return &RangeError{Op: op, Index: index, Limit: limit, Kind: ErrRange}
}

func durationError(op string, d time.Duration) error {
	return &DurationError{Op: op, Msg: fmt.Sprintf("%v is not positive", d)}
}

func nilTexture(op string) error {
	return fmt.Errorf("movie: %s: %w", op, ErrNilTexture)
}
