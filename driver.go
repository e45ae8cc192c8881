package qsim

import (
	"context"
	"time"

	"github.com/theapemachine/errnie"
)

// TimestepReport surfaces one timestep's circuit and simulator result.
type TimestepReport struct {
	Step    int
	Circuit *Circuit
	Result  *Result
}

/*
Driver runs the sampling loop: per timestep it samples a fresh parameter
matrix, builds a circuit, and hands it to the simulator. Timesteps are
independent; no quantum state, circuit, or random seed is carried between
iterations, and nothing branches on a timestep's outcome.
*/
type Driver struct {
	cfg     *Config
	qubits  Chain
	sampler *Sampler
	sim     Simulator
	metrics *Metrics
}

// NewDriver validates the config and wires the loop's collaborators.
func NewDriver(cfg *Config, rng Rand, sim Simulator) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Driver{
		cfg:     cfg,
		qubits:  LineChain(cfg.NumQubits),
		sampler: NewSampler(rng),
		sim:     sim,
		metrics: newMetrics(),
	}, nil
}

// Qubits returns the chain the driver simulates over.
func (d *Driver) Qubits() Chain {
	return d.qubits
}

func (d *Driver) Metrics() *Metrics {
	return d.metrics
}

/*
Run executes cfg.Steps timesteps and returns one report per timestep.
Simulator errors abort the run and propagate unchanged. Cancelling the
context stops the loop between timesteps.
*/
func (d *Driver) Run(ctx context.Context) ([]TimestepReport, error) {
	reports := make([]TimestepReport, 0, d.cfg.Steps)

	for step := 0; step < d.cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		started := time.Now()
		matrix := d.sampler.Sample(d.cfg.NumQubits)
		circuit, err := BuildCircuit(d.qubits, matrix, d.cfg)
		if err != nil {
			return reports, err
		}
		errnie.Info("timestep %d: built circuit with %d operations", step, circuit.Len())

		result, err := d.sim.Simulate(ctx, circuit, d.qubits)
		if err != nil {
			return reports, err
		}

		d.metrics.recordTimestep(circuit, time.Since(started))
		reports = append(reports, TimestepReport{Step: step, Circuit: circuit, Result: result})
	}

	return reports, nil
}
