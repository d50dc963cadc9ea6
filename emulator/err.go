package emulator

import (
	"errors"

	"github.com/ezrec/acc20/translate"
)

var f = translate.From

var (
	ErrFault        = errors.New(f("machine fault"))
	ErrSnapshotSize = errors.New(f("snapshot larger than memory"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
