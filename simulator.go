package qsim

import (
	"context"
	"time"
)

/*
Simulator executes a single-timestep circuit against some backend. The core
treats it as a black box: whatever it returns is surfaced unchanged, and
whatever error it returns propagates unchanged. An empty circuit is still a
valid dispatch.
*/
type Simulator interface {
	Simulate(ctx context.Context, circuit *Circuit, qubits Chain) (*Result, error)
}

// Measurement is one Z-basis measurement outcome.
type Measurement struct {
	Qubit Qubit
	Value int
}

/*
Result wraps the outcome of one simulated timestep: the final state vector
and the outcomes of any Measure operations, listed in the order their qubits
appear in the chain handed to Simulate.
*/
type Result struct {
	Amplitudes   []complex128
	Measurements []Measurement
	CreatedAt    time.Time
}

// Measured returns the recorded outcome for q, if q was measured.
func (r *Result) Measured(q Qubit) (int, bool) {
	for _, m := range r.Measurements {
		if m.Qubit == q {
			return m.Value, true
		}
	}
	return 0, false
}
