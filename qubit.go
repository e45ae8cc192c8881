package qsim

import "fmt"

// Qubit is a position on the linear chain. Identity is the index itself;
// two chains of the same length produce the same qubits in the same order.
type Qubit int

func (q Qubit) String() string {
	return fmt.Sprintf("q%d", int(q))
}

/*
Chain is a linear open chain of qubits. Qubit i is adjacent only to i+1;
there is no wraparound, so the rightmost qubit has no right neighbour.
*/
type Chain []Qubit

// LineChain returns n qubits indexed 0..n-1. Deterministic, no randomness.
func LineChain(n int) Chain {
	chain := make(Chain, n)
	for i := range chain {
		chain[i] = Qubit(i)
	}
	return chain
}

// RightNeighbor returns the qubit to the right of index i. The second
// return is false for the last index (open boundary).
func (c Chain) RightNeighbor(i int) (Qubit, bool) {
	if i < 0 || i >= len(c)-1 {
		return 0, false
	}
	return c[i+1], true
}
