package qsim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShapeMismatch reports a parameter matrix whose shape does not match the
// qubit chain it is being applied to.
var ErrShapeMismatch = errors.New("parameter matrix shape mismatch")

/*
Circuit is the ordered operation sequence for a single timestep. It is built
once, handed to the simulator once, and then discarded; it is never mutated
after construction.
*/
type Circuit struct {
	NumQubits int
	Ops       []Operation
}

/*
BuildCircuit derives a circuit from the chain and a parameter matrix. Per
phase, qubit i's operation is included iff matrix[phase][i] >= cfg.Threshold
(>= so that exactly 0.5 is included at the default threshold). Phases are
emitted in cfg.PhaseOrder; within a phase, ascending qubit index. The CNOT
phase only considers qubits with a right neighbour, so the last qubit is
never a control.

The builder is pure: identical inputs always produce identical circuits.
Randomness lives entirely in the Sampler.
*/
func BuildCircuit(qubits Chain, matrix ParameterMatrix, cfg *Config) (*Circuit, error) {
	n := len(qubits)
	if len(matrix) != NumPhases {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrShapeMismatch, len(matrix), NumPhases)
	}
	for phase, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrShapeMismatch, phase, len(row), n)
		}
	}

	circuit := &Circuit{NumQubits: n}
	for _, phase := range cfg.PhaseOrder {
		circuit.appendPhase(qubits, matrix[phase], phase, cfg.Threshold)
	}
	return circuit, nil
}

func (c *Circuit) appendPhase(qubits Chain, row []float64, kind OpKind, threshold float64) {
	if kind == KindCNOT {
		for i := range qubits {
			target, ok := qubits.RightNeighbor(i)
			if !ok {
				break
			}
			if row[i] >= threshold {
				c.Ops = append(c.Ops, CNOT(qubits[i], target))
			}
		}
		return
	}

	for i, q := range qubits {
		if row[i] < threshold {
			continue
		}
		switch kind {
		case KindReset:
			c.Ops = append(c.Ops, Reset(q))
		case KindH:
			c.Ops = append(c.Ops, H(q))
		case KindS:
			c.Ops = append(c.Ops, S(q))
		case KindT:
			c.Ops = append(c.Ops, T(q))
		case KindMeasure:
			c.Ops = append(c.Ops, Measure(q))
		}
	}
}

// Len returns the number of operations in the circuit.
func (c *Circuit) Len() int {
	return len(c.Ops)
}

func (c *Circuit) String() string {
	if len(c.Ops) == 0 {
		return "(empty circuit)"
	}
	parts := make([]string, len(c.Ops))
	for i, op := range c.Ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}
