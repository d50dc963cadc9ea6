package io

import (
	"io"
)

// Queue is an in-memory FIFO channel. Values sent are appended to Data,
// and values are received from Data in order.
type Queue struct {
	Capacity int // Maximum number of values, or 0 for unbounded.

	ReadIndex int
	Data      []int
}

var _ Channel = (*Queue)(nil)

// Rewind restarts reception from the first value.
func (queue *Queue) Rewind() {
	queue.ReadIndex = 0
}

// Receive returns the next unread value, or io.EOF.
func (queue *Queue) Receive() (value int, err error) {
	if queue.ReadIndex >= len(queue.Data) {
		err = io.EOF
		return
	}

	value = queue.Data[queue.ReadIndex]
	queue.ReadIndex++
	return
}

// Send appends a value.
// Returns ErrChannelFull if the queue has reached capacity.
func (queue *Queue) Send(value int) (err error) {
	if queue.Capacity > 0 && len(queue.Data) >= queue.Capacity {
		err = ErrChannelFull
		return
	}

	queue.Data = append(queue.Data, value)
	return
}

// Pending returns the number of values not yet received.
func (queue *Queue) Pending() int {
	return len(queue.Data) - queue.ReadIndex
}
