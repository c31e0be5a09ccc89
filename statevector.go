package qstab

import (
	"math"
	"math/cmplx"
)

/*
StateVector is the brute-force reference backend: an explicit
exponential-size amplitude vector over the computational basis. It
exists to cross-check the stabilizer engine on small circuits, and as
an exact (but exponentially expensive) fallback for circuits whose
magic phases the fast path cannot handle.
*/
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns the all-zeros state on numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<uint(numQubits))
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// Clone returns a deep copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// ApplyGate applies a gate from the engine's gate set. Unlike the
// tableau, the reference backend implements the magic gates directly.
func (s *StateVector) ApplyGate(gate Gate, qubits ...int) {
	switch gate {
	case GateID:
	case GateX:
		s.applyX(qubits[0])
	case GateY:
		s.applyY(qubits[0])
	case GateZ:
		s.applyPhase(qubits[0], -1)
	case GateS:
		s.applyPhase(qubits[0], 1i)
	case GateSdg:
		s.applyPhase(qubits[0], -1i)
	case GateH:
		s.applyH(qubits[0])
	case GateT:
		s.applyPhase(qubits[0], cmplx.Exp(complex(0, TAngle)))
	case GateTdg:
		s.applyPhase(qubits[0], cmplx.Exp(complex(0, -TAngle)))
	case GateCX:
		s.applyCX(qubits[0], qubits[1])
	case GateCZ:
		s.applyCZ(qubits[0], qubits[1])
	case GateSwap:
		s.applySwap(qubits[0], qubits[1])
	}
}

func (s *StateVector) applyX(q int) {
	bit := 1 << uint(q)
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyY(q int) {
	bit := 1 << uint(q)
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = -1i*s.Amplitudes[j], 1i*s.Amplitudes[i]
		}
	}
}

// applyPhase multiplies the |1> amplitude of qubit q by factor. Z, S,
// Sdg, T and Tdg are all diagonal, so they share this.
func (s *StateVector) applyPhase(q int, factor complex128) {
	bit := 1 << uint(q)
	for i := range s.Amplitudes {
		if i&bit != 0 {
			s.Amplitudes[i] *= factor
		}
	}
}

func (s *StateVector) applyH(q int) {
	bit := 1 << uint(q)
	f := complex(1/math.Sqrt2, 0)
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = f * (a + b)
			s.Amplitudes[j] = f * (a - b)
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	cBit, tBit := 1<<uint(control), 1<<uint(target)
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCZ(a, b int) {
	aBit, bBit := 1<<uint(a), 1<<uint(b)
	for i := range s.Amplitudes {
		if i&aBit != 0 && i&bBit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

func (s *StateVector) applySwap(a, b int) {
	aBit, bBit := 1<<uint(a), 1<<uint(b)
	for i := range s.Amplitudes {
		if i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// Probability returns the probability of observing the given outcome
// bits on the given qubits, marginalizing over all other qubits.
func (s *StateVector) Probability(qubits []int, outcomes []int) float64 {
	p := 0.0
	for i, amp := range s.Amplitudes {
		match := true
		for k, q := range qubits {
			if (i>>uint(q))&1 != outcomes[k] {
				match = false
				break
			}
		}
		if match {
			p += real(amp * cmplx.Conj(amp))
		}
	}
	return p
}
