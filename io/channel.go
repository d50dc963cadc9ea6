// Package io provides the word-level input/output collaborators of the
// accumulator machine: the Tape that feeds INP and collects OUT, an
// in-memory Queue for scripted runs, and the RAM Snapshot text format.
package io

// Channel defines the interface for a word-level I/O channel.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns the next value from the channel.
	// io.EOF is returned when no more input is available.
	Receive() (value int, err error)
	// Send writes a single value to the channel.
	Send(value int) error
}
