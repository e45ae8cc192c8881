package qsim

import (
	"fmt"
	"strings"
)

const separator = "**************************************************************"

/*
RenderReport formats one timestep for display: a separator, the timestep
index, the circuit one operation per line, and the simulator's result.
*/
func RenderReport(report TimestepReport) string {
	var b strings.Builder

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "t = %d\n", report.Step)
	if report.Circuit.Len() == 0 {
		b.WriteString("(empty circuit)\n")
	} else {
		for _, op := range report.Circuit.Ops {
			b.WriteString(op.String() + "\n")
		}
	}
	b.WriteString(RenderResult(report.Result, report.Circuit.NumQubits))

	return b.String()
}

/*
RenderResult formats the final state as a superposition of nonzero basis
kets, qubit 0 leftmost inside each ket, followed by one line per
measurement outcome in chain order.
*/
func RenderResult(result *Result, numQubits int) string {
	var b strings.Builder

	b.WriteString("output state: ")
	b.WriteString(renderAmplitudes(result.Amplitudes, numQubits))
	b.WriteString("\n")
	for _, m := range result.Measurements {
		fmt.Fprintf(&b, "m%d = %d\n", int(m.Qubit), m.Value)
	}

	return b.String()
}

func renderAmplitudes(amps []complex128, numQubits int) string {
	const eps = 1e-10

	terms := make([]string, 0, len(amps))
	for i, amp := range amps {
		if real(amp)*real(amp)+imag(amp)*imag(amp) < eps {
			continue
		}
		terms = append(terms, fmt.Sprintf("(%.3f%+.3fi)|%s⟩", real(amp), imag(amp), ketBits(i, numQubits)))
	}
	if len(terms) == 0 {
		return "(zero state)"
	}
	return strings.Join(terms, " + ")
}

// ketBits renders basis index i with qubit 0 leftmost.
func ketBits(i, numQubits int) string {
	bits := make([]byte, numQubits)
	for q := 0; q < numQubits; q++ {
		if i&(1<<q) != 0 {
			bits[q] = '1'
		} else {
			bits[q] = '0'
		}
	}
	return string(bits)
}
