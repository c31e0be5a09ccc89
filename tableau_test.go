package qstab

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewTableau(t *testing.T) {
	Convey("Given a fresh tableau", t, func() {
		tab := NewTableau(3)

		Convey("Then it stabilizes the all-zeros state", func() {
			So(tab.NumQubits, ShouldEqual, 3)
			So(tab.NumStabilizers(), ShouldEqual, 3)
			So(tab.MagicPhases, ShouldBeEmpty)
			for i := 0; i < 3; i++ {
				So(tab.Table[i].Z[i], ShouldBeTrue)
				So(tab.Table[i].X[i], ShouldBeFalse)
				So(tab.Signs[i], ShouldEqual, 0)
			}
		})
	})
}

func TestCliffordConjugation(t *testing.T) {
	Convey("Given the single-qubit conjugation rules", t, func() {
		Convey("When applying H to a Z stabilizer", func() {
			tab := NewTableau(1)
			tab.ApplyH(0)

			Convey("Then Z becomes X with positive sign", func() {
				So(tab.Table[0].X[0], ShouldBeTrue)
				So(tab.Table[0].Z[0], ShouldBeFalse)
				So(tab.Signs[0], ShouldEqual, 0)
			})
		})

		Convey("When applying S to an X stabilizer", func() {
			tab := NewTableau(1)
			tab.ApplyH(0)
			tab.ApplyS(0)

			Convey("Then X becomes +Y", func() {
				So(tab.Table[0].X[0], ShouldBeTrue)
				So(tab.Table[0].Z[0], ShouldBeTrue)
				So(tab.Signs[0], ShouldEqual, 0)
			})

			Convey("And a further S yields -X", func() {
				tab.ApplyS(0)
				So(tab.Table[0].X[0], ShouldBeTrue)
				So(tab.Table[0].Z[0], ShouldBeFalse)
				So(tab.Signs[0], ShouldEqual, 1)
			})
		})

		Convey("When applying X to a Z stabilizer", func() {
			tab := NewTableau(1)
			tab.ApplyX(0)

			Convey("Then the sign flips", func() {
				So(tab.Signs[0], ShouldEqual, 1)
			})
		})

		Convey("When applying Sdg twice to an X stabilizer", func() {
			tab := NewTableau(1)
			tab.ApplyH(0)
			tab.ApplySdg(0)
			tab.ApplySdg(0)

			Convey("Then X becomes -X, same as Z conjugation", func() {
				So(tab.Table[0].X[0], ShouldBeTrue)
				So(tab.Table[0].Z[0], ShouldBeFalse)
				So(tab.Signs[0], ShouldEqual, 1)
			})
		})
	})

	Convey("Given the two-qubit conjugation rules", t, func() {
		Convey("When building a Bell pair with H and CX", func() {
			tab := NewTableau(2)
			tab.ApplyH(0)
			tab.ApplyCX(0, 1)

			Convey("Then the group is <XX, ZZ>", func() {
				So(tab.Table[0].X[0], ShouldBeTrue)
				So(tab.Table[0].X[1], ShouldBeTrue)
				So(tab.Table[0].Z[0], ShouldBeFalse)
				So(tab.Table[1].Z[0], ShouldBeTrue)
				So(tab.Table[1].Z[1], ShouldBeTrue)
				So(tab.Table[1].X[0], ShouldBeFalse)
				So(tab.Signs[0], ShouldEqual, 0)
				So(tab.Signs[1], ShouldEqual, 0)
			})
		})

		Convey("When applying CZ to X stabilizers", func() {
			tab := NewTableau(2)
			tab.ApplyH(0)
			tab.ApplyH(1)
			tab.ApplyCZ(0, 1)

			Convey("Then X_i picks up a Z on the partner qubit", func() {
				So(tab.Table[0].X[0], ShouldBeTrue)
				So(tab.Table[0].Z[1], ShouldBeTrue)
				So(tab.Table[1].X[1], ShouldBeTrue)
				So(tab.Table[1].Z[0], ShouldBeTrue)
			})
		})

		Convey("When swapping two qubits", func() {
			tab := NewTableau(2)
			tab.ApplyH(0)
			tab.ApplySwap(0, 1)

			Convey("Then the columns exchange", func() {
				So(tab.Table[0].X[1], ShouldBeTrue)
				So(tab.Table[0].X[0], ShouldBeFalse)
				So(tab.Table[1].Z[0], ShouldBeTrue)
			})
		})
	})
}

func TestGadgetizedPhaseGate(t *testing.T) {
	Convey("Given a plus state on one qubit", t, func() {
		tab := NewTableau(1)
		tab.ApplyH(0)

		Convey("When inserting a magic gadget", func() {
			tab.GadgetizedPhaseGate(0, TAngle)

			Convey("Then the tableau grows one qubit and one generator", func() {
				So(tab.NumQubits, ShouldEqual, 2)
				So(tab.NumStabilizers(), ShouldEqual, 2)
				So(tab.MagicPhases, ShouldResemble, []float64{TAngle})
			})

			Convey("Then the X bit copies into the new column", func() {
				So(tab.Table[0].X[0], ShouldBeTrue)
				So(tab.Table[0].X[1], ShouldBeTrue)
			})

			Convey("Then the gadget generator is Z Z", func() {
				So(tab.Table[1].Z[0], ShouldBeTrue)
				So(tab.Table[1].Z[1], ShouldBeTrue)
				So(tab.Table[1].X[0], ShouldBeFalse)
				So(tab.Signs[1], ShouldEqual, 0)
			})
		})
	})
}

func TestTableauClone(t *testing.T) {
	Convey("Given a tableau with magic structure", t, func() {
		tab := NewTableau(2)
		tab.ApplyH(0)
		tab.ApplyCX(0, 1)
		tab.GadgetizedPhaseGate(1, TAngle)

		Convey("When cloning and mutating the clone", func() {
			clone := tab.Clone()
			clone.ApplyX(0)
			clone.Table[0].X[0] = !clone.Table[0].X[0]
			clone.MagicPhases[0] = 0
			clone.Signs[1] ^= 1

			Convey("Then the original shares no memory with the clone", func() {
				So(tab.Table[0].X[0], ShouldBeTrue)
				So(tab.MagicPhases[0], ShouldEqual, TAngle)
				So(tab.Signs[1], ShouldEqual, 0)
			})
		})
	})
}
