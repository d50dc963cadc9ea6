package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Tape provides sequential text I/O: one decimal integer per line.
// It wraps an io.Reader for input and io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	source io.Reader

	LineNo int // Lines consumed from Input.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// lines returns the buffered view of Input, reusing a caller supplied
// *bufio.Reader so that input already buffered elsewhere is not lost.
func (tc *Tape) lines() *bufio.Reader {
	if tc.reader == nil || tc.source != tc.Input {
		rd, ok := tc.Input.(*bufio.Reader)
		if !ok {
			rd = bufio.NewReader(tc.Input)
		}
		tc.reader = rd
		tc.source = tc.Input
	}
	return tc.reader
}

// Receive reads the next non-blank line and parses it as an integer.
// Returns io.EOF once the input is exhausted.
func (tc *Tape) Receive() (value int, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	rd := tc.lines()
	for {
		var text string
		text, err = rd.ReadString('\n')
		if len(text) == 0 && err != nil {
			if err != io.EOF {
				err = errors.Wrap(err, f("tape input"))
			}
			return
		}
		tc.LineNo++

		text = strings.TrimSpace(text)
		if len(text) == 0 {
			if err != nil {
				return
			}
			continue
		}

		var v64 int64
		v64, err = strconv.ParseInt(text, 10, 64)
		if err != nil {
			err = errors.WithMessage(ErrParseNumber(text), f("tape line %d", tc.LineNo))
			return
		}
		value = int(v64)
		err = nil
		return
	}
}

// Send writes a value to the output as a decimal line.
func (tc *Tape) Send(value int) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		err = errors.Wrap(err, f("tape output"))
	}
	return
}
