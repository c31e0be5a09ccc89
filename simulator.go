package qstab

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// TAngle is the canonical magic rotation: the pi/4 phase of the T gate,
// the only angle the fast summation path is exact for.
const TAngle = math.Pi / 4

// OpType classifies the instructions this engine accepts from its host.
type OpType int

const (
	// OpGate applies a named gate to the tableau.
	OpGate OpType = iota
	// OpSaveProbability computes the probability of a specific
	// measurement outcome and writes it to the result sink.
	OpSaveProbability
)

// Instruction is the record handed over by the host dispatcher. Qubit
// order is significant: for two-qubit gates the first index is the
// control (or first swap operand). For OpSaveProbability, Outcomes
// holds one desired outcome bit per entry of Qubits and Label names the
// result slot.
type Instruction struct {
	Type     OpType
	Name     string
	Qubits   []int
	Outcomes []int
	Label    string
}

// Gate is the closed set of operations the tableau supports.
type Gate int

const (
	GateID Gate = iota
	GateX
	GateY
	GateZ
	GateH
	GateS
	GateSdg
	GateT
	GateTdg
	GateCX
	GateCZ
	GateSwap
)

// gateset maps instruction names to gate kinds. Built once at package
// init and never mutated.
var gateset = map[string]Gate{
	"delay": GateID,
	"id":    GateID,
	"x":     GateX,
	"y":     GateY,
	"z":     GateZ,
	"s":     GateS,
	"sdg":   GateSdg,
	"h":     GateH,
	"t":     GateT,
	"tdg":   GateTdg,
	"CX":    GateCX,
	"cx":    GateCX,
	"CZ":    GateCZ,
	"cz":    GateCZ,
	"swap":  GateSwap,
}

var (
	// ErrUnsupportedInstruction reports an operation type this engine
	// does not implement.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
	// ErrUnknownGate reports a gate name missing from the gate set.
	ErrUnknownGate = errors.New("unknown gate")
	// ErrStateMismatch reports a qubit-count mismatch on state
	// injection.
	ErrStateMismatch = errors.New("initial state does not match qubit number")
)

// ResultSink receives named scalar results. Probabilities are written
// as entries of a list-typed, averaged data category under the label
// the instruction carries.
type ResultSink interface {
	SaveProbability(label string, p float64)
}

// Results is a map-backed ResultSink.
type Results map[string][]float64

func (r Results) SaveProbability(label string, p float64) {
	r[label] = append(r[label], p)
}

/*
Simulator owns an extended stabilizer tableau and evaluates measurement
outcome probabilities for Clifford circuits with a bounded number of
magic gates. Gate application mutates the tableau in place; probability
queries run on a deep copy, so the owned state is observably unchanged
by any number of queries.

Everything is sequential. A query runs to completion once issued; its
cost is exponential in the number of magic qubits that survive
reduction, and bounding that number is the caller's responsibility.
*/
type Simulator struct {
	tableau       *Tableau
	numCodeQubits int
	config        *Config
	metrics       *Metrics
}

// NewSimulator creates a simulator for a circuit on numQubits qubits,
// starting in the all-zeros state. A nil config selects defaults.
func NewSimulator(numQubits int, config *Config) *Simulator {
	if config == nil {
		config = NewConfig()
	}
	return &Simulator{
		tableau:       NewTableau(numQubits),
		numCodeQubits: numQubits,
		config:        config,
		metrics:       newMetrics(),
	}
}

// InitializeState replaces the owned tableau with a copy of the given
// one. The provided qubit count must match the tableau's own; on
// mismatch nothing is mutated.
func (s *Simulator) InitializeState(t *Tableau, numQubits int) error {
	if t.NumQubits != numQubits {
		return fmt.Errorf("%w: got %d qubits, tableau has %d",
			ErrStateMismatch, numQubits, t.NumQubits)
	}
	s.tableau = t.Clone()
	s.numCodeQubits = numQubits - len(t.MagicPhases)
	return nil
}

// Snapshot returns a deep copy of the current tableau.
func (s *Simulator) Snapshot() *Tableau {
	return s.tableau.Clone()
}

// Metrics returns the simulator's metrics collector.
func (s *Simulator) Metrics() *Metrics {
	return s.metrics
}

// Run executes a sequence of instructions, writing probability results
// to sink. The first unsupported instruction or unknown gate aborts the
// run; nothing is retried.
func (s *Simulator) Run(ops []Instruction, sink ResultSink) error {
	for _, op := range ops {
		switch op.Type {
		case OpGate:
			if err := s.ApplyGate(op.Name, op.Qubits...); err != nil {
				return err
			}
		case OpSaveProbability:
			p, err := s.Probability(op.Qubits, op.Outcomes)
			if err != nil {
				return err
			}
			sink.SaveProbability(op.Label, p)
		default:
			return fmt.Errorf("%w: operation type %d", ErrUnsupportedInstruction, op.Type)
		}
	}
	return nil
}

var gateArity = map[Gate]int{
	GateID: 1, GateX: 1, GateY: 1, GateZ: 1, GateH: 1,
	GateS: 1, GateSdg: 1, GateT: 1, GateTdg: 1,
	GateCX: 2, GateCZ: 2, GateSwap: 2,
}

// ApplyGate applies the named gate to the owned tableau. The two magic
// gates are forwarded to the gadget insertion with a signed canonical
// angle; everything else is a symplectic tableau update.
func (s *Simulator) ApplyGate(name string, qubits ...int) error {
	gate, ok := gateset[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGate, name)
	}
	if len(qubits) < gateArity[gate] {
		return fmt.Errorf("%w: gate %q expects %d qubits, got %d",
			ErrUnsupportedInstruction, name, gateArity[gate], len(qubits))
	}

	s.config.Tracer.GateApplied(name, qubits)
	s.metrics.recordGate()

	switch gate {
	case GateID:
	case GateX:
		s.tableau.ApplyX(qubits[0])
	case GateY:
		s.tableau.ApplyY(qubits[0])
	case GateZ:
		s.tableau.ApplyZ(qubits[0])
	case GateS:
		s.tableau.ApplyS(qubits[0])
	case GateSdg:
		s.tableau.ApplySdg(qubits[0])
	case GateH:
		s.tableau.ApplyH(qubits[0])
	case GateT:
		s.tableau.GadgetizedPhaseGate(qubits[0], TAngle)
	case GateTdg:
		s.tableau.GadgetizedPhaseGate(qubits[0], -TAngle)
	case GateCX:
		s.tableau.ApplyCX(qubits[0], qubits[1])
	case GateCZ:
		s.tableau.ApplyCZ(qubits[0], qubits[1])
	case GateSwap:
		s.tableau.ApplySwap(qubits[0], qubits[1])
	}
	return nil
}

/*
Probability computes the probability of observing the given outcome
bits on the given qubits. The owned tableau is never mutated: the whole
reduction runs on a clone. An outcome inconsistent with the stabilizer
group is not an error; it yields exactly zero.
*/
func (s *Simulator) Probability(qubits []int, outcomes []int) (float64, error) {
	if len(outcomes) != len(qubits) {
		return 0, fmt.Errorf("%w: %d qubits with %d outcome bits",
			ErrUnsupportedInstruction, len(qubits), len(outcomes))
	}

	s.config.Tracer.QueryIssued(qubits, outcomes)
	start := time.Now()

	clone := s.tableau.Clone()

	// Reorder so the measured qubits occupy the front in caller order.
	where := make([]int, clone.NumQubits)
	perm := make([]int, clone.NumQubits)
	for i := range perm {
		perm[i] = i
		where[i] = i
	}
	for i, mq := range qubits {
		cur := where[mq]
		if cur == i {
			continue
		}
		clone.ApplySwap(i, cur)
		displaced := perm[i]
		perm[i], perm[cur] = perm[cur], perm[i]
		where[mq] = i
		where[displaced] = cur
	}

	// Fold requested 1-outcomes into the signs so that from here on the
	// query is uniformly "all zeros".
	for i, bit := range outcomes {
		if bit == 1 {
			clone.ApplyX(i)
		}
	}

	w := len(qubits)
	tcount := len(clone.MagicPhases)

	feasible, v := clone.applyConstraints(w, tcount)
	if !feasible {
		s.metrics.recordQuery(start, true, false)
		s.config.Tracer.QueryResolved(0, time.Since(start))
		return 0, nil
	}

	clone.deleteNonMagicQubits(tcount)
	clone.applyTConstraints()
	clone.deleteIdentityMagicQubits()

	// The fast path is only exact for canonical pi/4 phases. Phases
	// outside tolerance still go through the same formula; the result
	// is approximate for them, which the metrics record.
	nonCanonical := false
	for _, phase := range clone.MagicPhases {
		if math.Abs(phase-TAngle) > s.config.ChopThreshold {
			nonCanonical = true
			break
		}
	}

	scale := math.Pow(2, float64(v-w))
	var p float64
	if clone.NumQubits == 0 {
		p = scale
	} else {
		p = computeAllPhasesT(clone) * scale
	}

	s.metrics.recordQuery(start, false, nonCanonical)
	s.config.Tracer.QueryResolved(p, time.Since(start))
	return p, nil
}
