package frame

import "errors"

var (
	// ErrBadFrameLength reports a non-positive frame length.
	ErrBadFrameLength = errors.New("frame length must be > 0")
)
