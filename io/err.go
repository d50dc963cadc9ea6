package io

import (
	"errors"

	"github.com/ezrec/acc20/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))

	// Snapshot errors
	ErrSnapshotWidth = errors.New(f("snapshot line width"))
	ErrSnapshotBit   = errors.New(f("snapshot bit not 0 or 1"))
)

// ErrParseNumber is a tape line that does not hold an integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
