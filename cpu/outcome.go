package cpu

// State is the result class of an execute stage.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	CONTINUE = State(0) // continue
	HALT     = State(1) // halt
	FAULT    = State(2) // fault
)

// Outcome is returned from the execute stage and from Tick.
// Err is only set for a FAULT.
type Outcome struct {
	State State
	Err   error
}

// Continued returns true if the machine can keep ticking.
func (out Outcome) Continued() bool {
	return out.State == CONTINUE
}

// Halted returns true after a successful HLT.
func (out Outcome) Halted() bool {
	return out.State == HALT
}

// Faulted returns true after an unrecoverable error.
func (out Outcome) Faulted() bool {
	return out.State == FAULT
}

// String returns the outcome, with its fault reason if any.
func (out Outcome) String() string {
	if out.Err != nil {
		return out.State.String() + ": " + out.Err.Error()
	}
	return out.State.String()
}

// makeFault wraps err as a FAULT outcome.
func makeFault(err error) Outcome {
	return Outcome{State: FAULT, Err: err}
}
