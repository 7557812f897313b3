package stream

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownAsset   = errors.New("unknown asset")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrStopped        = errors.New("streamer stopped")
)
