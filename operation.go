package qsim

import "fmt"

// OpKind identifies one of the six operation kinds applied during a timestep.
type OpKind int

const (
	KindReset OpKind = iota
	KindCNOT
	KindH
	KindS
	KindT
	KindMeasure
)

// NumPhases is the number of operation kinds, and therefore the number of
// parameter rows consumed per timestep.
const NumPhases = 6

func (k OpKind) String() string {
	switch k {
	case KindReset:
		return "Reset"
	case KindCNOT:
		return "CNOT"
	case KindH:
		return "H"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindMeasure:
		return "Measure"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

/*
Operation is a single gate or measurement placed on the circuit. Operations
are immutable value objects: Control is -1 for everything except CNOT, where
it names the control qubit and Target the control's right neighbour.
*/
type Operation struct {
	Kind    OpKind
	Target  Qubit
	Control Qubit
}

// Reset sets the qubit to |0>.
func Reset(q Qubit) Operation {
	return Operation{Kind: KindReset, Target: q, Control: -1}
}

// CNOT flips target iff control is |1>.
func CNOT(control, target Qubit) Operation {
	return Operation{Kind: KindCNOT, Target: target, Control: control}
}

// H applies the Hadamard gate.
func H(q Qubit) Operation {
	return Operation{Kind: KindH, Target: q, Control: -1}
}

// S applies the phase gate (i on |1>).
func S(q Qubit) Operation {
	return Operation{Kind: KindS, Target: q, Control: -1}
}

// T applies the π/8 gate (e^{iπ/4} on |1>).
func T(q Qubit) Operation {
	return Operation{Kind: KindT, Target: q, Control: -1}
}

// Measure measures the qubit in the Z basis.
func Measure(q Qubit) Operation {
	return Operation{Kind: KindMeasure, Target: q, Control: -1}
}

func (op Operation) String() string {
	if op.Kind == KindCNOT {
		return fmt.Sprintf("CNOT(%d,%d)", int(op.Control), int(op.Target))
	}
	return fmt.Sprintf("%s(%d)", op.Kind, int(op.Target))
}
