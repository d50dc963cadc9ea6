package cpu

import (
	"fmt"
)

// Register is a named 20-bit storage unit of the control unit.
type Register struct {
	Name string

	data     Word
	observer Observer
}

// NewRegister creates a register that reports changes to obs.
func NewRegister(name string, obs Observer) *Register {
	return &Register{Name: name, observer: obs}
}

// Get returns the signed value of the register.
func (reg *Register) Get() int {
	return ToSigned(reg.data)
}

// Word returns the raw bit pattern of the register.
func (reg *Register) Word() Word {
	return reg.data
}

// Set stores any integer, wrapping it into the word range.
func (reg *Register) Set(value int) {
	reg.data = ToUnsigned(value)
	notify(reg.observer, Event{Kind: EVENT_REGISTER, Name: reg.Name, Value: reg.data})
}

// ReadFromBus loads the register from the head of the bus.
func (reg *Register) ReadFromBus(bus *Bus) (err error) {
	value, err := bus.Read()
	if err != nil {
		return
	}

	reg.Set(value.Signed())
	return
}

// WriteToBus places the register value on the bus.
func (reg *Register) WriteToBus(bus *Bus) {
	bus.Write(reg.data)
}

// String returns the register as name, binary pattern and signed value.
func (reg *Register) String() string {
	return fmt.Sprintf("%v: %020b (%d)", reg.Name, uint32(reg.data), reg.Get())
}
