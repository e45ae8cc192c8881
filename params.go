package qsim

// Rand is the uniform [0,1) source consumed by the sampler and the
// simulator. math/rand/v2's *rand.Rand satisfies it; tests substitute a
// fixed sequence.
type Rand interface {
	Float64() float64
}

/*
ParameterMatrix holds one row of per-qubit thresholds for each phase, in
fixed row order Reset, CNOT, H, S, T, Measure. Every entry is an independent
uniform draw from [0,1). A matrix is sampled fresh each timestep and never
reused.

The CNOT row is sampled at full length even though only the first N-1
entries are ever consulted; dropping the last draw would shift the random
stream for everything sampled after it.
*/
type ParameterMatrix [][]float64

// Row accessors, one per phase.
func (m ParameterMatrix) Reset() []float64   { return m[KindReset] }
func (m ParameterMatrix) CNOT() []float64    { return m[KindCNOT] }
func (m ParameterMatrix) H() []float64       { return m[KindH] }
func (m ParameterMatrix) S() []float64       { return m[KindS] }
func (m ParameterMatrix) T() []float64       { return m[KindT] }
func (m ParameterMatrix) Measure() []float64 { return m[KindMeasure] }

// Sampler draws parameter matrices from a random source.
type Sampler struct {
	rng Rand
}

func NewSampler(rng Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample returns a fresh 6×n matrix of independent uniform draws. n = 0
// yields six empty rows.
func (s *Sampler) Sample(n int) ParameterMatrix {
	matrix := make(ParameterMatrix, NumPhases)
	for phase := range matrix {
		row := make([]float64, n)
		for i := range row {
			row[i] = s.rng.Float64()
		}
		matrix[phase] = row
	}
	return matrix
}
