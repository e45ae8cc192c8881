package qsim

import "fmt"

// DefaultThreshold is the inclusion threshold for every phase: a qubit's
// operation is emitted when its parameter is >= this value.
const DefaultThreshold = 0.5

// DefaultPhaseOrder returns the fixed order phases are applied in.
func DefaultPhaseOrder() []OpKind {
	return []OpKind{KindReset, KindCNOT, KindH, KindS, KindT, KindMeasure}
}

// Config holds the run parameters for a sampling run.
type Config struct {
	NumQubits  int
	Steps      int
	Threshold  float64
	PhaseOrder []OpKind
}

func NewConfig() *Config {
	return &Config{
		NumQubits:  4,
		Steps:      1,
		Threshold:  DefaultThreshold,
		PhaseOrder: DefaultPhaseOrder(),
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.NumQubits < 0 {
		return fmt.Errorf("invalid config: negative qubit count %d", c.NumQubits)
	}
	if c.Steps < 0 {
		return fmt.Errorf("invalid config: negative step count %d", c.Steps)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("invalid config: threshold %v outside [0,1]", c.Threshold)
	}
	if len(c.PhaseOrder) != NumPhases {
		return fmt.Errorf("invalid config: phase order has %d entries, want %d", len(c.PhaseOrder), NumPhases)
	}
	seen := make(map[OpKind]bool, NumPhases)
	for _, k := range c.PhaseOrder {
		if k < KindReset || k > KindMeasure || seen[k] {
			return fmt.Errorf("invalid config: phase order is not a permutation of the six kinds")
		}
		seen[k] = true
	}
	return nil
}
