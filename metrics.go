package qsim

import (
	"sort"
	"sync"
	"time"
)

type Metrics struct {
	mu             sync.RWMutex
	Runs           int64
	FailedRuns     int64
	Shots          int64
	Measurements   int64
	GatesApplied   map[Gate]int64
	TotalRunTime   time.Duration
	AverageRunTime time.Duration
	P95RunTime     time.Duration

	// Sliding window of recent run durations for the percentile
	latencies  []time.Duration
	windowSize int
}

func NewMetrics() *Metrics {
	return &Metrics{
		GatesApplied: make(map[Gate]int64),
		latencies:    make([]time.Duration, 0, 1000),
		windowSize:   1000,
	}
}

// StepHook returns a hook that counts every instruction a run applies.
func (m *Metrics) StepHook() StepHook {
	return func(_ int, ins Instruction, _ *Register) {
		m.mu.Lock()
		defer m.mu.Unlock()

		if ins.Gate == Measure {
			m.Measurements++
			return
		}

		m.GatesApplied[ins.Gate]++
	}
}

// recordRun accounts for one completed or failed Run on a register of the
// given size.
func (m *Metrics) recordRun(startTime time.Time, qubits int, err error) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Runs++
	if err != nil {
		m.FailedRuns++
	} else {
		m.Measurements += int64(qubits)
	}

	m.TotalRunTime += duration
	m.AverageRunTime = m.TotalRunTime / time.Duration(m.Runs)
	m.updateLatencyPercentile(duration)
}

func (m *Metrics) recordShots(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Shots += int64(n)
}

func (m *Metrics) updateLatencyPercentile(duration time.Duration) {
	m.latencies = append(m.latencies, duration)

	if len(m.latencies) > m.windowSize {
		m.latencies = m.latencies[1:]
	}

	sorted := make([]time.Duration, len(m.latencies))
	copy(sorted, m.latencies)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	p95Index := int(float64(len(sorted)) * 0.95)
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	m.P95RunTime = sorted[p95Index]
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	gates := make(map[string]int64, len(m.GatesApplied))
	for gate, count := range m.GatesApplied {
		gates[gate.String()] = count
	}

	return map[string]interface{}{
		"runs":           m.Runs,
		"failed_runs":    m.FailedRuns,
		"shots":          m.Shots,
		"measurements":   m.Measurements,
		"gates_applied":  gates,
		"avg_run_time":   m.AverageRunTime.Microseconds(),
		"p95_run_time":   m.P95RunTime.Microseconds(),
		"total_run_time": m.TotalRunTime.Milliseconds(),
	}
}
