package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGet(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Set(0, 5))
	assert.NoError(mem.Set(99, -7))
	assert.NoError(mem.Set(50, 1<<19))

	value, err := mem.Get(0)
	assert.NoError(err)
	assert.Equal(5, value)

	value, err = mem.Get(99)
	assert.NoError(err)
	assert.Equal(-7, value)

	value, err = mem.Get(50)
	assert.NoError(err)
	assert.Equal(WORD_MIN, value)
}

func TestMemory_Isolation(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	for addr := range RAM_SIZE {
		assert.NoError(mem.Set(addr, addr*3-50))
	}

	for a := range RAM_SIZE {
		before := mem.Cell
		assert.NoError(mem.Set(a, -12345))
		for b := range RAM_SIZE {
			if b != a {
				assert.Equal(before[b], mem.Cell[b])
			}
		}
		assert.NoError(mem.Set(a, a*3-50))
	}
}

func TestMemory_Address(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	for _, addr := range []int{-1, RAM_SIZE, 0xffff} {
		_, err := mem.Get(addr)
		assert.Equal(ErrAddress(addr), err)
		assert.True(errors.Is(err, ErrAddress(0)))

		err = mem.Set(addr, 1)
		assert.Equal(ErrAddress(addr), err)
	}
}

func TestMemory_Respond(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	bus := &Bus{}
	assert.NoError(mem.Set(42, -9))

	bus.Write(42)
	err := mem.Respond(bus)
	assert.NoError(err)
	assert.Equal(1, bus.Len())

	value, err := bus.Read()
	assert.NoError(err)
	assert.Equal(-9, value.Signed())

	// No address pending.
	err = mem.Respond(bus)
	assert.Equal(ErrBusEmpty, err)

	// Bad address.
	bus.Write(100)
	err = mem.Respond(bus)
	assert.Equal(ErrAddress(100), err)
	assert.True(bus.Empty())
}

func TestMemory_Accept(t *testing.T) {
	assert := assert.New(t)

	var events []Event
	mem := &Memory{observer: ObserverFunc(func(ev Event) { events = append(events, ev) })}
	bus := &Bus{}

	bus.Write(7)
	bus.Write(ToUnsigned(-3))
	err := mem.Accept(bus)
	assert.NoError(err)
	assert.True(bus.Empty())

	value, err := mem.Get(7)
	assert.NoError(err)
	assert.Equal(-3, value)
	assert.Equal([]Event{{Kind: EVENT_MEMORY, Address: 7, Value: 0xffffd}}, events)

	// Value missing.
	bus.Write(7)
	err = mem.Accept(bus)
	assert.Equal(ErrBusEmpty, err)
	value, _ = mem.Get(7)
	assert.Equal(-3, value)
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Set(3, 3))
	mem.Reset()
	value, err := mem.Get(3)
	assert.NoError(err)
	assert.Equal(0, value)
}
