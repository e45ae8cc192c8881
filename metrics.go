package qsim

import (
	"sync"
	"time"
)

// Metrics tracks what a run produced. Guarded for concurrent readers even
// though the driver itself is sequential, so callers can poll mid-run.
type Metrics struct {
	mu sync.RWMutex

	CircuitsBuilt int64
	OpCounts      map[OpKind]int64
	Measurements  int64
	TotalStepTime time.Duration
	StepCount     int64
}

func newMetrics() *Metrics {
	return &Metrics{
		OpCounts: make(map[OpKind]int64),
	}
}

func (m *Metrics) recordTimestep(circuit *Circuit, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CircuitsBuilt++
	m.StepCount++
	m.TotalStepTime += duration
	for _, op := range circuit.Ops {
		m.OpCounts[op.Kind]++
		if op.Kind == KindMeasure {
			m.Measurements++
		}
	}
}

// AverageStepTime returns the mean wall time per timestep so far.
func (m *Metrics) AverageStepTime() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.StepCount == 0 {
		return 0
	}
	return m.TotalStepTime / time.Duration(m.StepCount)
}

// ExportMetrics returns a flat snapshot for logging or display.
func (m *Metrics) ExportMetrics() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ops := int64(0)
	for _, n := range m.OpCounts {
		ops += n
	}
	return map[string]any{
		"circuits_built":  m.CircuitsBuilt,
		"operations":      ops,
		"measurements":    m.Measurements,
		"steps":           m.StepCount,
		"total_step_time": m.TotalStepTime.String(),
		"resets":          m.OpCounts[KindReset],
		"cnots":           m.OpCounts[KindCNOT],
		"hadamards":       m.OpCounts[KindH],
		"s_gates":         m.OpCounts[KindS],
		"t_gates":         m.OpCounts[KindT],
		"measurement_ops": m.OpCounts[KindMeasure],
	}
}
