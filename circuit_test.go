package qsim

import (
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func uniformMatrix(n int, v float64) ParameterMatrix {
	matrix := make(ParameterMatrix, NumPhases)
	for phase := range matrix {
		row := make([]float64, n)
		for i := range row {
			row[i] = v
		}
		matrix[phase] = row
	}
	return matrix
}

func TestBuildCircuit(t *testing.T) {
	convey.Convey("Given a four-qubit chain", t, func() {
		cfg := NewConfig()
		qubits := LineChain(4)

		convey.Convey("When every parameter clears the threshold", func() {
			circuit, err := BuildCircuit(qubits, uniformMatrix(4, 1.0), cfg)

			convey.So(err, convey.ShouldBeNil)
			convey.So(circuit.Len(), convey.ShouldEqual, NumPhases*4-1)
			convey.So(circuit.Ops, convey.ShouldResemble, []Operation{
				Reset(0), Reset(1), Reset(2), Reset(3),
				CNOT(0, 1), CNOT(1, 2), CNOT(2, 3),
				H(0), H(1), H(2), H(3),
				S(0), S(1), S(2), S(3),
				T(0), T(1), T(2), T(3),
				Measure(0), Measure(1), Measure(2), Measure(3),
			})
		})

		convey.Convey("When no parameter clears the threshold", func() {
			circuit, err := BuildCircuit(qubits, uniformMatrix(4, 0.0), cfg)

			convey.So(err, convey.ShouldBeNil)
			convey.So(circuit.Len(), convey.ShouldEqual, 0)
		})

		convey.Convey("When a parameter sits exactly on the threshold", func() {
			matrix := uniformMatrix(4, 0.0)
			matrix[KindH][2] = 0.5
			matrix[KindH][3] = 0.4999999

			circuit, err := BuildCircuit(qubits, matrix, cfg)

			convey.So(err, convey.ShouldBeNil)
			convey.So(circuit.Ops, convey.ShouldResemble, []Operation{H(2)})
		})

		convey.Convey("The last qubit is never a CNOT control", func() {
			matrix := uniformMatrix(4, 0.0)
			for i := range matrix[KindCNOT] {
				matrix[KindCNOT][i] = 1.0
			}

			circuit, err := BuildCircuit(qubits, matrix, cfg)

			convey.So(err, convey.ShouldBeNil)
			for _, op := range circuit.Ops {
				convey.So(op.Control, convey.ShouldNotEqual, Qubit(3))
			}
			convey.So(circuit.Ops, convey.ShouldResemble, []Operation{CNOT(0, 1), CNOT(1, 2), CNOT(2, 3)})
		})

		convey.Convey("The final CNOT row entry is sampled but never read", func() {
			a := uniformMatrix(4, 1.0)
			b := uniformMatrix(4, 1.0)
			a[KindCNOT][3] = 0.0
			b[KindCNOT][3] = 0.9

			circuitA, errA := BuildCircuit(qubits, a, cfg)
			circuitB, errB := BuildCircuit(qubits, b, cfg)

			convey.So(errA, convey.ShouldBeNil)
			convey.So(errB, convey.ShouldBeNil)
			convey.So(circuitA.Ops, convey.ShouldResemble, circuitB.Ops)
		})

		convey.Convey("Building twice from the same matrix is bit-identical", func() {
			matrix := uniformMatrix(4, 0.0)
			matrix[KindReset][1] = 0.7
			matrix[KindT][0] = 0.9
			matrix[KindMeasure][3] = 0.6

			first, errA := BuildCircuit(qubits, matrix, cfg)
			second, errB := BuildCircuit(qubits, matrix, cfg)

			convey.So(errA, convey.ShouldBeNil)
			convey.So(errB, convey.ShouldBeNil)
			convey.So(second, convey.ShouldResemble, first)
		})

		convey.Convey("When the matrix shape does not match the chain", func() {
			matrix := uniformMatrix(3, 1.0)

			circuit, err := BuildCircuit(qubits, matrix, cfg)

			convey.So(circuit, convey.ShouldBeNil)
			convey.So(errors.Is(err, ErrShapeMismatch), convey.ShouldBeTrue)
		})

		convey.Convey("When a matrix is missing a row", func() {
			matrix := uniformMatrix(4, 1.0)[:NumPhases-1]

			circuit, err := BuildCircuit(qubits, matrix, cfg)

			convey.So(circuit, convey.ShouldBeNil)
			convey.So(errors.Is(err, ErrShapeMismatch), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given the worked two-qubit example", t, func() {
		cfg := NewConfig()
		qubits := LineChain(2)
		matrix := ParameterMatrix{
			{1, 0},   // Reset
			{1, 0.3}, // CNOT, second entry unused
			{0, 0},   // H
			{0, 0},   // S
			{0, 0},   // T
			{1, 1},   // Measure
		}

		circuit, err := BuildCircuit(qubits, matrix, cfg)

		convey.So(err, convey.ShouldBeNil)
		convey.So(circuit.Ops, convey.ShouldResemble, []Operation{
			Reset(0), CNOT(0, 1), Measure(0), Measure(1),
		})
	})

	convey.Convey("Given the worked three-qubit example", t, func() {
		cfg := NewConfig()
		qubits := LineChain(3)
		matrix := uniformMatrix(3, 0.0)
		matrix[KindCNOT] = []float64{1, 1, 0}

		circuit, err := BuildCircuit(qubits, matrix, cfg)

		convey.So(err, convey.ShouldBeNil)
		convey.So(circuit.Ops, convey.ShouldResemble, []Operation{CNOT(0, 1), CNOT(1, 2)})
	})

	convey.Convey("Given an empty chain", t, func() {
		cfg := NewConfig()
		cfg.NumQubits = 0

		circuit, err := BuildCircuit(LineChain(0), uniformMatrix(0, 0), cfg)

		convey.So(err, convey.ShouldBeNil)
		convey.So(circuit.Len(), convey.ShouldEqual, 0)
		convey.So(circuit.NumQubits, convey.ShouldEqual, 0)
	})

	convey.Convey("Given a custom phase order", t, func() {
		cfg := NewConfig()
		cfg.PhaseOrder = []OpKind{KindMeasure, KindT, KindS, KindH, KindCNOT, KindReset}
		qubits := LineChain(2)

		circuit, err := BuildCircuit(qubits, uniformMatrix(2, 1.0), cfg)

		convey.So(err, convey.ShouldBeNil)
		convey.So(circuit.Ops, convey.ShouldResemble, []Operation{
			Measure(0), Measure(1), T(0), T(1), S(0), S(1),
			H(0), H(1), CNOT(0, 1), Reset(0), Reset(1),
		})
	})
}
