package qsim

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"time"
)

/*
VectorSimulator is the built-in Simulator: a dense state-vector engine over
the computational basis. Basis indices are little-endian, qubit q owning bit
1<<q. The initial state is |0...0>; measurement and reset collapse the state
using the simulator's random source.
*/
type VectorSimulator struct {
	rng Rand
}

func NewVectorSimulator(rng Rand) *VectorSimulator {
	return &VectorSimulator{rng: rng}
}

func (vs *VectorSimulator) Simulate(ctx context.Context, circuit *Circuit, qubits Chain) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if circuit.NumQubits != len(qubits) {
		return nil, fmt.Errorf("circuit spans %d qubits, ordering has %d", circuit.NumQubits, len(qubits))
	}

	state := newStateVector(circuit.NumQubits)
	outcomes := make(map[Qubit]int, len(qubits))

	for _, op := range circuit.Ops {
		if int(op.Target) < 0 || int(op.Target) >= circuit.NumQubits {
			return nil, fmt.Errorf("operation %s targets qubit outside the chain", op)
		}
		switch op.Kind {
		case KindReset:
			// Reset is measure-then-flip: collapse the qubit, then map a
			// |1> outcome back to |0>.
			if state.measure(int(op.Target), vs.rng) == 1 {
				state.applyX(int(op.Target))
			}
		case KindCNOT:
			state.applyCNOT(int(op.Control), int(op.Target))
		case KindH:
			state.applyH(int(op.Target))
		case KindS:
			state.applyPhase(int(op.Target), 1i)
		case KindT:
			state.applyPhase(int(op.Target), cmplx.Exp(complex(0, math.Pi/4)))
		case KindMeasure:
			outcomes[op.Target] = state.measure(int(op.Target), vs.rng)
		default:
			return nil, fmt.Errorf("unknown operation kind %v", op.Kind)
		}
	}

	result := &Result{
		Amplitudes: state.amps,
		CreatedAt:  time.Now(),
	}
	for _, q := range qubits {
		if value, ok := outcomes[q]; ok {
			result.Measurements = append(result.Measurements, Measurement{Qubit: q, Value: value})
		}
	}
	return result, nil
}

// stateVector is the mutable amplitude array the gates act on.
type stateVector struct {
	amps      []complex128
	numQubits int
}

func newStateVector(numQubits int) *stateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &stateVector{amps: amps, numQubits: numQubits}
}

func (s *stateVector) applyH(q int) {
	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = factor * (s.amps[i] + s.amps[j])
			next[j] = factor * (s.amps[i] - s.amps[j])
		}
	}
	s.amps = next
}

func (s *stateVector) applyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// applyPhase multiplies the |1> component of qubit q by the given factor.
// S is factor i, T is factor e^{iπ/4}.
func (s *stateVector) applyPhase(q int, factor complex128) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= factor
		}
	}
}

func (s *stateVector) applyCNOT(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

/*
measure performs a Z-basis measurement of qubit q: draws against the
probability of reading 1, zeroes the amplitudes of the discarded branch,
and renormalises the survivor.
*/
func (s *stateVector) measure(q int, rng Rand) int {
	bit := 1 << q

	prob1 := 0.0
	for i, amp := range s.amps {
		if i&bit != 0 {
			prob1 += real(amp * cmplx.Conj(amp))
		}
	}

	outcome := 0
	if rng.Float64() < prob1 {
		outcome = 1
	}

	keep := prob1
	if outcome == 0 {
		keep = 1 - prob1
	}
	norm := 1.0
	if keep > 0 {
		norm = math.Sqrt(keep)
	}
	for i := range s.amps {
		set := i&bit != 0
		if (outcome == 1) != set {
			s.amps[i] = 0
		} else {
			s.amps[i] /= complex(norm, 0)
		}
	}
	return outcome
}
