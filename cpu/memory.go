package cpu

const (
	RAM_SIZE     = 100          // Number of words of memory.
	VARIABLE_TOP = RAM_SIZE - 1 // First address handed out to DAT variables.
)

// Memory is the word-addressed RAM of the machine.
// The control unit only reaches it through bus transactions.
type Memory struct {
	Cell [RAM_SIZE]Word

	observer Observer
}

// check validates an address.
func (mem *Memory) check(addr int) (err error) {
	if addr < 0 || addr >= len(mem.Cell) {
		err = ErrAddress(addr)
	}
	return
}

// Get returns the signed value stored at addr.
func (mem *Memory) Get(addr int) (value int, err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	value = ToSigned(mem.Cell[addr])
	return
}

// Set stores any integer at addr, wrapping it into the word range.
func (mem *Memory) Set(addr int, value int) (err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	mem.Cell[addr] = ToUnsigned(value)
	notify(mem.observer, Event{Kind: EVENT_MEMORY, Address: addr, Value: mem.Cell[addr]})
	return
}

// Respond services a read request: it takes an address off the bus and
// places the word stored there back on the bus.
func (mem *Memory) Respond(bus *Bus) (err error) {
	addr, err := bus.Read()
	if err != nil {
		return
	}

	value, err := mem.Get(addr.Signed())
	if err != nil {
		return
	}

	bus.Write(ToUnsigned(value))
	return
}

// Accept services a write request: it takes an address and then a value
// off the bus and stores the value. Nothing is written back.
func (mem *Memory) Accept(bus *Bus) (err error) {
	addr, err := bus.Read()
	if err != nil {
		return
	}

	value, err := bus.Read()
	if err != nil {
		return
	}

	err = mem.Set(addr.Signed(), value.Signed())
	return
}

// Reset zeros every cell without emitting events.
func (mem *Memory) Reset() {
	clear(mem.Cell[:])
}
