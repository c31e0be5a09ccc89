package qstab

/*
Tableau is an extended stabilizer tableau: an ordered list of Pauli
generators with per-generator sign bits, describing the common +1
eigenspace of the generators, plus one recorded rotation angle per
magic qubit. Magic qubits always occupy a contiguous suffix of the
qubit index range; code qubits come first.

The tableau is exclusively owned by its Simulator. Gates mutate it in
place; probability queries work on a Clone so the original is never
observably changed.
*/
type Tableau struct {
	NumQubits   int
	Table       []Pauli
	Signs       []uint8 // 0 => +1, 1 => -1
	MagicPhases []float64
}

// NewTableau returns the tableau of the all-zeros state on numQubits
// qubits: one +Z generator per qubit, no magic qubits.
func NewTableau(numQubits int) *Tableau {
	t := &Tableau{
		NumQubits:   numQubits,
		Table:       make([]Pauli, numQubits),
		Signs:       make([]uint8, numQubits),
		MagicPhases: make([]float64, 0),
	}
	for i := range t.Table {
		t.Table[i] = NewPauli(numQubits)
		t.Table[i].Z[i] = true
	}
	return t
}

// NumStabilizers returns the number of generators currently held.
func (t *Tableau) NumStabilizers() int {
	return len(t.Table)
}

// Clone returns a deep value copy: generators, signs and magic phases
// share no memory with the original.
func (t *Tableau) Clone() *Tableau {
	c := &Tableau{
		NumQubits:   t.NumQubits,
		Table:       make([]Pauli, len(t.Table)),
		Signs:       make([]uint8, len(t.Signs)),
		MagicPhases: make([]float64, len(t.MagicPhases)),
	}
	for i := range t.Table {
		c.Table[i] = t.Table[i].Clone()
	}
	copy(c.Signs, t.Signs)
	copy(c.MagicPhases, t.MagicPhases)
	return c
}

// mulRow multiplies generator i by generator j, keeping the sign bit
// exact. Generators of a stabilizer group commute, so the i-exponent of
// the product is even and folds into the sign.
func (t *Tableau) mulRow(i, j int) {
	e := PhaseExponent(t.Table[i], t.Table[j])
	t.Signs[i] ^= t.Signs[j] ^ uint8(e/2)%2
	t.Table[i].Mul(t.Table[j])
}

// ApplyX conjugates the state by X on qubit q.
func (t *Tableau) ApplyX(q int) {
	for i := range t.Table {
		if t.Table[i].Z[q] {
			t.Signs[i] ^= 1
		}
	}
}

// ApplyZ conjugates the state by Z on qubit q.
func (t *Tableau) ApplyZ(q int) {
	for i := range t.Table {
		if t.Table[i].X[q] {
			t.Signs[i] ^= 1
		}
	}
}

// ApplyY conjugates the state by Y on qubit q.
func (t *Tableau) ApplyY(q int) {
	for i := range t.Table {
		if t.Table[i].X[q] != t.Table[i].Z[q] {
			t.Signs[i] ^= 1
		}
	}
}

// ApplyH conjugates the state by the Hadamard gate on qubit q.
func (t *Tableau) ApplyH(q int) {
	for i := range t.Table {
		if t.Table[i].X[q] && t.Table[i].Z[q] {
			t.Signs[i] ^= 1
		}
		t.Table[i].X[q], t.Table[i].Z[q] = t.Table[i].Z[q], t.Table[i].X[q]
	}
}

// ApplyS conjugates the state by the phase gate S on qubit q.
func (t *Tableau) ApplyS(q int) {
	for i := range t.Table {
		if t.Table[i].X[q] && t.Table[i].Z[q] {
			t.Signs[i] ^= 1
		}
		t.Table[i].Z[q] = t.Table[i].Z[q] != t.Table[i].X[q]
	}
}

// ApplySdg conjugates by the adjoint phase gate, as Z followed by S.
func (t *Tableau) ApplySdg(q int) {
	t.ApplyZ(q)
	t.ApplyS(q)
}

// ApplyCX conjugates the state by controlled-X with control c, target g.
func (t *Tableau) ApplyCX(c, g int) {
	for i := range t.Table {
		row := &t.Table[i]
		if row.X[c] && row.Z[g] && row.X[g] == row.Z[c] {
			t.Signs[i] ^= 1
		}
		row.X[g] = row.X[g] != row.X[c]
		row.Z[c] = row.Z[c] != row.Z[g]
	}
}

// ApplyCZ conjugates the state by controlled-Z on qubits a and b.
func (t *Tableau) ApplyCZ(a, b int) {
	for i := range t.Table {
		row := &t.Table[i]
		if row.X[a] && row.X[b] && row.Z[a] != row.Z[b] {
			t.Signs[i] ^= 1
		}
		row.Z[a] = row.Z[a] != row.X[b]
		row.Z[b] = row.Z[b] != row.X[a]
	}
}

// ApplySwap exchanges qubits a and b.
func (t *Tableau) ApplySwap(a, b int) {
	for i := range t.Table {
		row := &t.Table[i]
		row.X[a], row.X[b] = row.X[b], row.X[a]
		row.Z[a], row.Z[b] = row.Z[b], row.Z[a]
	}
}

/*
GadgetizedPhaseGate records a non-Clifford Z-rotation on qubit q by
appending one magic qubit. The new qubit starts in |0> and is entangled
with the target through a controlled-X, so under conjugation every
generator copies its X bit at q into the new column and the generator
Z_q Z_new joins the group. The rotation angle itself is deferred to
probability-query time via MagicPhases.
*/
func (t *Tableau) GadgetizedPhaseGate(q int, angle float64) {
	n := t.NumQubits
	for i := range t.Table {
		t.Table[i].X = append(t.Table[i].X, t.Table[i].X[q])
		t.Table[i].Z = append(t.Table[i].Z, false)
	}
	gadget := NewPauli(n + 1)
	gadget.Z[q] = true
	gadget.Z[n] = true
	t.Table = append(t.Table, gadget)
	t.Signs = append(t.Signs, 0)
	t.MagicPhases = append(t.MagicPhases, angle)
	t.NumQubits = n + 1
}
