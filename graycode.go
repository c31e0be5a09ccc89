package qstab

import (
	"math"
	"math/bits"
)

// binaryToGray converts an unsigned binary number to reflected binary
// Gray code. Consecutive values differ in exactly one bit, which is
// what lets the summation update one generator per step.
func binaryToGray(n uint64) uint64 {
	return n ^ (n >> 1)
}

// phaseCounter accumulates i-exponents picked up while multiplying
// Pauli operators. Only its parity is ever observable: the operators
// multiplied here always commute, so the running exponent stays even
// and the parity is the sign bit of the product.
type phaseCounter struct {
	total int
}

func (c *phaseCounter) Add(exponent int) {
	c.total = (c.total + exponent) % 4
}

func (c *phaseCounter) Parity() int {
	return c.total / 2
}

/*
computeAllPhasesT evaluates the exponential sum over the reduced
stabilizer group, assuming every remaining magic phase is the canonical
pi/4 rotation. Each group element contributes the product of its
per-qubit overlaps with the magic state: 2^(-1/2) for an X or Y
position, zero for a pure-Z position, with a sign collecting the
accumulated multiplication phase, the generator signs and the Y count.

Nonzero subsets of the generator set are enumerated in Gray-code order
so that each step multiplies exactly one generator into the running
product instead of rebuilding the subset product from scratch.
*/
func computeAllPhasesT(t *Tableau) float64 {
	k := t.NumStabilizers()
	if k == 0 {
		return 1
	}

	fullMask := uint64(1)<<uint(k) - 1
	acc := 1.0
	row := NewPauli(t.NumQubits)
	var phase phaseCounter

	for mask := uint64(1); mask <= fullMask; mask++ {
		flipped := bits.TrailingZeros64(binaryToGray(mask) ^ binaryToGray(mask-1))

		phase.Add(PhaseExponent(row, t.Table[flipped]) + 2*int(t.Signs[flipped]))
		row.Mul(t.Table[flipped])

		xCount, yCount := 0, 0
		hasPureZ := false
		for q := 0; q < t.NumQubits; q++ {
			switch {
			case row.X[q] && row.Z[q]:
				yCount++
			case row.X[q]:
				xCount++
			case row.Z[q]:
				hasPureZ = true
			}
		}
		if hasPureZ {
			// The magic state has no Z component; this subset's term
			// vanishes.
			continue
		}

		term := math.Pow(0.5, float64(xCount+yCount)/2)
		if (phase.Parity()+yCount)%2 == 0 {
			acc += term
		} else {
			acc -= term
		}
	}

	return acc
}
