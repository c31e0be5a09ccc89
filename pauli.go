package qstab

// Pauli is the symplectic bit-vector representation of an n-qubit Pauli
// operator, up to an external phase. Per qubit, (X[i], Z[i]) of
// (false,false)/(true,false)/(false,true)/(true,true) denotes I/X/Z/Y.
type Pauli struct {
	X []bool
	Z []bool
}

// NewPauli returns the identity operator on numQubits qubits.
func NewPauli(numQubits int) Pauli {
	return Pauli{
		X: make([]bool, numQubits),
		Z: make([]bool, numQubits),
	}
}

// NumQubits returns the number of qubits the operator acts on.
func (p Pauli) NumQubits() int {
	return len(p.X)
}

// Clone returns a deep copy of the operator.
func (p Pauli) Clone() Pauli {
	q := NewPauli(len(p.X))
	copy(q.X, p.X)
	copy(q.Z, p.Z)
	return q
}

/*
Mul multiplies the operator in place by q, discarding phase. On the bit
pattern this is a pointwise XOR, so it is its own inverse. The phase
correction discarded here is available through PhaseExponent.

Both operators must act on the same number of qubits.
*/
func (p *Pauli) Mul(q Pauli) {
	for i := range p.X {
		p.X[i] = p.X[i] != q.X[i]
		p.Z[i] = p.Z[i] != q.Z[i]
	}
}

// IsIdentity reports whether the operator acts trivially on every qubit.
func (p Pauli) IsIdentity() bool {
	for i := range p.X {
		if p.X[i] || p.Z[i] {
			return false
		}
	}
	return true
}

// Commutes reports whether p and q commute as Pauli operators.
func (p Pauli) Commutes(q Pauli) bool {
	anti := false
	for i := range p.X {
		if p.X[i] && q.Z[i] {
			anti = !anti
		}
		if p.Z[i] && q.X[i] {
			anti = !anti
		}
	}
	return !anti
}

/*
PhaseExponent returns the exponent e (mod 4) of the phase i^e picked up
when the Pauli operator a is multiplied by b, with both read in the
Hermitian convention (a set X and Z bit on a qubit denotes Y). Each
qubit where the single-qubit factors anticommute contributes +1 for a
cyclic pair (XY, YZ, ZX) and -1 for an anticyclic pair, so the parity
of the result is the number of anticommuting positions.
*/
func PhaseExponent(a, b Pauli) int {
	e := 0
	for i := range a.X {
		switch {
		case !a.X[i] && !a.Z[i]: // I on a
		case !b.X[i] && !b.Z[i]: // I on b
		case a.X[i] == b.X[i] && a.Z[i] == b.Z[i]: // equal factors square to I
		case a.X[i] && !a.Z[i] && b.X[i] && b.Z[i]: // XY = iZ
			e++
		case a.X[i] && a.Z[i] && !b.X[i] && b.Z[i]: // YZ = iX
			e++
		case !a.X[i] && a.Z[i] && b.X[i] && !b.Z[i]: // ZX = iY
			e++
		default: // YX, ZY, XZ pick up -i
			e += 3
		}
	}
	return e % 4
}
