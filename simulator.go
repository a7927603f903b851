package qsim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/theapemachine/errnie"
	"golang.org/x/sync/errgroup"
)

/*
Simulator is a session around one register and one circuit, driven by a
Config. Run replays the circuit on the live register, the way an interactive
front end steps through it. Sample runs the circuit many times on throwaway
registers to estimate outcome frequencies.
*/
type Simulator struct {
	config   *Config
	register *Register
	circuit  *Circuit
	rng      *rand.Rand
	metrics  *Metrics
}

func NewSimulator(cfg *Config) (*Simulator, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	register, err := NewRegisterOf(cfg.Qubits)
	if err != nil {
		return nil, err
	}

	circuit, err := cfg.BuildCircuit()
	if err != nil {
		return nil, err
	}

	errnie.Info(
		"NewSimulator - qubits %d, instructions %d, seed %d",
		cfg.Qubits,
		circuit.Len(),
		cfg.Seed,
	)

	return &Simulator{
		config:   cfg,
		register: register,
		circuit:  circuit,
		rng:      NewSource(cfg.Seed),
		metrics:  NewMetrics(),
	}, nil
}

func (s *Simulator) Register() *Register { return s.register }
func (s *Simulator) Circuit() *Circuit   { return s.circuit }
func (s *Simulator) Metrics() *Metrics   { return s.metrics }
func (s *Simulator) Source() Source      { return s.rng }

// Run executes the circuit once against the session register and returns
// the histogram of its measurement slots.
func (s *Simulator) Run(opts ...RunOption) (Histogram, error) {
	startTime := time.Now()

	opts = append(opts, WithStepHook(s.metrics.StepHook()))
	err := s.circuit.Run(s.register, s.rng, opts...)
	s.metrics.recordRun(startTime, s.register.Len(), err)

	if err != nil {
		errnie.Debug("register after failed run:\n%s", s.register.Dump())
		return nil, err
	}

	return HistogramOf(s.register), nil
}

/*
Distribution aggregates the final measurements of many independent shots.
PerQubit[i] counts the outcomes of register slot i across all shots.
*/
type Distribution struct {
	Shots    int
	PerQubit []Histogram
}

// Combined counts every outcome across every qubit and shot.
func (d *Distribution) Combined() Histogram {
	h := NewHistogram()
	for _, q := range d.PerQubit {
		h.Add(q)
	}
	return h
}

/*
Sample runs Config.Shots shots of the circuit, each on a fresh register of
Config.Qubits qubits, using up to Config.Workers goroutines. Shot i draws
from its own generator seeded with (Config.Seed, i), so the result does not
depend on scheduling. The session register is not touched.
*/
func (s *Simulator) Sample(ctx context.Context) (*Distribution, error) {
	shots := s.config.Shots
	outcomes := make([][]Outcome, shots)

	errnie.Info("sampling %d shots on %d workers", shots, s.config.Workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for shot := 0; shot < shots; shot++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			register, err := NewRegisterOf(s.config.Qubits)
			if err != nil {
				return err
			}

			startTime := time.Now()
			err = s.circuit.Run(
				register,
				NewStreamSource(s.config.Seed, uint64(shot)),
				WithStepHook(s.metrics.StepHook()),
			)
			s.metrics.recordRun(startTime, register.Len(), err)

			if err != nil {
				return fmt.Errorf("shot %d: %w", shot, err)
			}

			outcomes[shot] = register.Measurements()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.recordShots(shots)

	dist := &Distribution{
		Shots:    shots,
		PerQubit: make([]Histogram, s.config.Qubits),
	}

	for i := range dist.PerQubit {
		dist.PerQubit[i] = NewHistogram()
	}

	for _, shot := range outcomes {
		for i, o := range shot {
			if o.Valid() {
				dist.PerQubit[i][o]++
			}
		}
	}

	return dist, nil
}
