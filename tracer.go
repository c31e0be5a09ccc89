package qstab

import (
	"time"

	"github.com/theapemachine/errnie"
)

// Tracer is the observability hook of the engine. It is invoked at
// well-defined trace points and never from inside the numeric loops.
type Tracer interface {
	GateApplied(name string, qubits []int)
	QueryIssued(qubits []int, outcomes []int)
	QueryResolved(p float64, elapsed time.Duration)
}

// LogTracer logs every trace point through errnie.
type LogTracer struct{}

func (LogTracer) GateApplied(name string, qubits []int) {
	errnie.Info("applying gate %s on qubits %v", name, qubits)
}

func (LogTracer) QueryIssued(qubits []int, outcomes []int) {
	errnie.Info("probability query on qubits %v for outcomes %v", qubits, outcomes)
}

func (LogTracer) QueryResolved(p float64, elapsed time.Duration) {
	errnie.Info("probability query resolved to %v in %v", p, elapsed)
}

// NopTracer silences all trace points.
type NopTracer struct{}

func (NopTracer) GateApplied(string, []int)            {}
func (NopTracer) QueryIssued([]int, []int)             {}
func (NopTracer) QueryResolved(float64, time.Duration) {}
