package qstab

import (
	"math"
	"math/bits"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBinaryToGray(t *testing.T) {
	Convey("Given the Gray-code enumeration", t, func() {
		Convey("Then consecutive codes differ in exactly one bit", func() {
			for k := 1; k <= 8; k++ {
				full := uint64(1)<<uint(k) - 1
				for mask := uint64(1); mask <= full; mask++ {
					diff := binaryToGray(mask) ^ binaryToGray(mask-1)
					So(bits.OnesCount64(diff), ShouldEqual, 1)
				}
			}
		})

		Convey("Then the walk visits every nonzero subset exactly once", func() {
			for k := 1; k <= 8; k++ {
				full := uint64(1)<<uint(k) - 1
				seen := make(map[uint64]bool)
				subset := uint64(0)
				for mask := uint64(1); mask <= full; mask++ {
					subset ^= binaryToGray(mask) ^ binaryToGray(mask-1)
					So(seen[subset], ShouldBeFalse)
					seen[subset] = true
				}
				So(len(seen), ShouldEqual, int(full))
				So(seen[0], ShouldBeFalse)
			}
		})
	})
}

func TestPhaseCounter(t *testing.T) {
	Convey("Given a phase counter", t, func() {
		var c phaseCounter

		Convey("Then parity reads the sign bit of the i-exponent", func() {
			So(c.Parity(), ShouldEqual, 0)
			c.Add(2)
			So(c.Parity(), ShouldEqual, 1)
			c.Add(2)
			So(c.Parity(), ShouldEqual, 0)
		})

		Convey("Then accumulation never wraps through overflow", func() {
			for i := 0; i < 1000; i++ {
				c.Add(2)
			}
			So(c.Parity(), ShouldEqual, 0)
		})
	})
}

// reducedTableau builds a post-reduction tableau directly: generators
// over magic qubits only, all phases canonical.
func reducedTableau(signs []uint8, rows ...string) *Tableau {
	numQubits := 0
	if len(rows) > 0 {
		numQubits = len(rows[0])
	}
	tab := &Tableau{
		NumQubits: numQubits,
		Table:     make([]Pauli, 0, len(rows)),
		Signs:     signs,
	}
	for _, r := range rows {
		tab.Table = append(tab.Table, pauliFromString(r))
	}
	for i := 0; i < tab.NumQubits; i++ {
		tab.MagicPhases = append(tab.MagicPhases, TAngle)
	}
	return tab
}

func TestComputeAllPhasesT(t *testing.T) {
	invSqrt2 := 1 / math.Sqrt2

	Convey("Given reduced generator sets over magic qubits", t, func() {
		Convey("When no generators remain, the sum is the identity term", func() {
			tab := reducedTableau(nil)
			tab.NumQubits = 0
			tab.MagicPhases = nil
			So(computeAllPhasesT(tab), ShouldEqual, 1)
		})

		Convey("When the only generator is +X", func() {
			So(computeAllPhasesT(reducedTableau([]uint8{0}, "X")),
				ShouldAlmostEqual, 1+invSqrt2, 1e-12)
		})

		Convey("When the only generator is -X", func() {
			So(computeAllPhasesT(reducedTableau([]uint8{1}, "X")),
				ShouldAlmostEqual, 1-invSqrt2, 1e-12)
		})

		Convey("When the only generator is +Y", func() {
			// The gadget projects onto the conjugate magic state, so Y
			// weighs in with a negative sine.
			So(computeAllPhasesT(reducedTableau([]uint8{0}, "Y")),
				ShouldAlmostEqual, 1-invSqrt2, 1e-12)
		})

		Convey("When the only generator is a pure Z", func() {
			So(computeAllPhasesT(reducedTableau([]uint8{0}, "Z")),
				ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("When the group is <XX, ZZ>", func() {
			// XX contributes +1/2, the element XX*ZZ = -YY contributes
			// -(-1/sqrt2)^2 = -1/2, ZZ itself vanishes.
			So(computeAllPhasesT(reducedTableau([]uint8{0, 0}, "XX", "ZZ")),
				ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("When a two-qubit group mixes X and Y", func() {
			// XI gives +1/sqrt2, IY gives -1/sqrt2, their product XY
			// gives -1/2: the sum is exactly one half.
			So(computeAllPhasesT(reducedTableau([]uint8{0, 0}, "XI", "IY")),
				ShouldAlmostEqual, 0.5, 1e-12)
		})
	})
}
