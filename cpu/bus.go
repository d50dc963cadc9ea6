package cpu

// Bus is the single shared channel between the units of the datapath.
// It is a strict FIFO with no notion of source or destination.
type Bus struct {
	Data []Word
}

// Write appends a word to the tail of the bus. It never blocks.
func (bus *Bus) Write(value Word) {
	bus.Data = append(bus.Data, value)
}

// Read removes the word at the head of the bus.
// Reading an empty bus is a protocol error, not a wait.
func (bus *Bus) Read() (value Word, err error) {
	if bus.Empty() {
		err = ErrBusEmpty
		return
	}

	value = bus.Data[0]
	bus.Data = bus.Data[1:]
	if len(bus.Data) == 0 {
		bus.Data = bus.Data[:0:0]
	}
	return
}

// Len returns the number of words in transit.
func (bus *Bus) Len() int {
	return len(bus.Data)
}

// Empty returns true if no word is in transit.
func (bus *Bus) Empty() bool {
	return len(bus.Data) == 0
}

// Reset drops any words in transit.
func (bus *Bus) Reset() {
	if len(bus.Data) > 0 {
		bus.Data = bus.Data[:0]
	}
}
