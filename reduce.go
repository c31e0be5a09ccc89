package qstab

/*
Constraint reduction projects a cloned tableau onto the subspace
consistent with the all-zeros outcome on the first w qubits, then
isolates the part of the stabilizer group supported purely on the magic
qubits. The caller is expected to have reordered the measured qubits to
the front and folded requested 1-outcomes into the signs with X gates.
*/

// applyConstraints projects the stabilizer group onto the all-zero
// outcome on the first w qubits, with tcount magic qubits at the end of
// the index range. It returns (false, 0) when the outcome is infeasible
// (probability exactly zero). On success v is the base-2 logarithm of
// the degeneracy factor: one per measured qubit whose outcome was
// already determined by the group. Afterwards the generator list is
// reduced to the rows supported only on magic qubits.
func (t *Tableau) applyConstraints(w, tcount int) (bool, int) {
	v := 0
	designated := make([]bool, len(t.Table))
	zrow := make([]int, w)

	for q := 0; q < w; q++ {
		pivot := -1
		for i := range t.Table {
			if t.Table[i].X[q] {
				pivot = i
				break
			}
		}

		if pivot >= 0 {
			// Random outcome: one generator anticommutes with Z_q.
			// Clear the X column with it, then project it to +Z_q.
			for i := range t.Table {
				if i != pivot && t.Table[i].X[q] {
					t.mulRow(i, pivot)
				}
			}
			t.Table[pivot] = NewPauli(t.NumQubits)
			t.Table[pivot].Z[q] = true
			t.Signs[pivot] = 0
			designated[pivot] = true
			zrow[q] = pivot
			continue
		}

		// Deterministic outcome: +/-Z_q is in the group. Synthesize it
		// and read off the sign.
		combo, ok := t.synthesize(q)
		if !ok {
			// Unreachable for a well-formed tableau; a malformed
			// injected state lands here. Treat the constraint as
			// unsatisfiable.
			return false, 0
		}
		sign, member := t.comboSign(combo, designated)
		if sign == 1 {
			return false, 0
		}
		v++
		t.Table[member] = NewPauli(t.NumQubits)
		t.Table[member].Z[q] = true
		t.Signs[member] = 0
		designated[member] = true
		zrow[q] = member
	}

	// Clear leftover Z bits on the measured columns; X bits are already
	// gone there.
	for q := 0; q < w; q++ {
		for i := range t.Table {
			if i != zrow[q] && t.Table[i].Z[q] {
				t.mulRow(i, zrow[q])
			}
		}
	}

	// Eliminate the unmeasured code columns. Rows that end up carrying
	// a pivot there cannot contribute to the magic-only subgroup and
	// are dropped together with the w projector rows.
	discarded := make([]bool, len(t.Table))
	for q := w; q < t.NumQubits-tcount; q++ {
		for _, useZ := range []bool{false, true} {
			pivot := -1
			for i := range t.Table {
				if designated[i] || discarded[i] {
					continue
				}
				if bitAt(t.Table[i], q, useZ) {
					pivot = i
					break
				}
			}
			if pivot < 0 {
				continue
			}
			for i := range t.Table {
				if i == pivot || designated[i] || discarded[i] {
					continue
				}
				if bitAt(t.Table[i], q, useZ) {
					t.mulRow(i, pivot)
				}
			}
			discarded[pivot] = true
		}
	}

	table := make([]Pauli, 0, len(t.Table))
	signs := make([]uint8, 0, len(t.Signs))
	for i := range t.Table {
		if !designated[i] && !discarded[i] {
			table = append(table, t.Table[i])
			signs = append(signs, t.Signs[i])
		}
	}
	t.Table = table
	t.Signs = signs

	return true, v
}

func bitAt(p Pauli, q int, useZ bool) bool {
	if useZ {
		return p.Z[q]
	}
	return p.X[q]
}

// synthesize finds a subset of generators whose bit pattern multiplies
// to exactly Z_q, by Gauss-Jordan elimination over the symplectic bit
// vectors. The returned slice marks the generators in the combination.
func (t *Tableau) synthesize(q int) ([]bool, bool) {
	m := len(t.Table)
	rows := make([]Pauli, m)
	combos := make([][]bool, m)
	for i := range rows {
		rows[i] = t.Table[i].Clone()
		combos[i] = make([]bool, m)
		combos[i][i] = true
	}

	cols := 2 * t.NumQubits
	pivotRow := make([]int, cols)
	pivoted := make([]bool, m)
	for c := 0; c < cols; c++ {
		pivotRow[c] = -1
		for i := 0; i < m; i++ {
			if !pivoted[i] && colBit(rows[i], c) {
				pivotRow[c] = i
				break
			}
		}
		if pivotRow[c] < 0 {
			continue
		}
		p := pivotRow[c]
		pivoted[p] = true
		for i := 0; i < m; i++ {
			if i != p && colBit(rows[i], c) {
				rows[i].Mul(rows[p])
				xorInto(combos[i], combos[p])
			}
		}
	}

	target := NewPauli(t.NumQubits)
	target.Z[q] = true
	combo := make([]bool, m)
	for c := 0; c < cols; c++ {
		if !colBit(target, c) {
			continue
		}
		p := pivotRow[c]
		if p < 0 {
			return nil, false
		}
		target.Mul(rows[p])
		xorInto(combo, combos[p])
	}
	if !target.IsIdentity() {
		return nil, false
	}
	return combo, true
}

func colBit(p Pauli, c int) bool {
	if c%2 == 0 {
		return p.X[c/2]
	}
	return p.Z[c/2]
}

func xorInto(dst, src []bool) {
	for i := range dst {
		dst[i] = dst[i] != src[i]
	}
}

// comboSign multiplies out the generators marked in combo, tracking
// phase exactly, and returns the sign bit of the product together with
// the index of one non-designated member (always present: designated
// rows alone cannot produce a Z on an unprocessed qubit).
func (t *Tableau) comboSign(combo []bool, designated []bool) (uint8, int) {
	acc := NewPauli(t.NumQubits)
	exponent := 0
	var sign uint8
	member := -1
	for i, in := range combo {
		if !in {
			continue
		}
		exponent += PhaseExponent(acc, t.Table[i])
		acc.Mul(t.Table[i])
		sign ^= t.Signs[i]
		if !designated[i] {
			member = i
		}
	}
	sign ^= uint8(exponent/2) % 2
	return sign, member
}

// deleteNonMagicQubits truncates every generator to the magic suffix of
// the qubit range. Valid only after applyConstraints has reduced the
// generator list to rows supported purely on magic qubits.
func (t *Tableau) deleteNonMagicQubits(tcount int) {
	start := t.NumQubits - tcount
	for i := range t.Table {
		t.Table[i].X = append([]bool(nil), t.Table[i].X[start:]...)
		t.Table[i].Z = append([]bool(nil), t.Table[i].Z[start:]...)
	}
	t.NumQubits = tcount
}

// applyTConstraints brings the reduced generator set to reduced row
// echelon form over the magic columns. The group is unchanged; the
// point is to shrink generator support so disentangled magic qubits
// show up as all-identity columns.
func (t *Tableau) applyTConstraints() {
	pivoted := make([]bool, len(t.Table))
	for c := 0; c < 2*t.NumQubits; c++ {
		pivot := -1
		for i := range t.Table {
			if !pivoted[i] && colBit(t.Table[i], c) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		pivoted[pivot] = true
		for i := range t.Table {
			if i != pivot && colBit(t.Table[i], c) {
				t.mulRow(i, pivot)
			}
		}
	}
}

// deleteIdentityMagicQubits removes every magic qubit on which no
// generator acts. Such a qubit is disentangled and contributes a unit
// factor to the probability, not a summation term.
func (t *Tableau) deleteIdentityMagicQubits() {
	keep := make([]int, 0, t.NumQubits)
	for q := 0; q < t.NumQubits; q++ {
		used := false
		for i := range t.Table {
			if t.Table[i].X[q] || t.Table[i].Z[q] {
				used = true
				break
			}
		}
		if used {
			keep = append(keep, q)
		}
	}
	if len(keep) == t.NumQubits {
		return
	}

	phases := make([]float64, 0, len(keep))
	for i := range t.Table {
		x := make([]bool, 0, len(keep))
		z := make([]bool, 0, len(keep))
		for _, q := range keep {
			x = append(x, t.Table[i].X[q])
			z = append(z, t.Table[i].Z[q])
		}
		t.Table[i].X = x
		t.Table[i].Z = z
	}
	for _, q := range keep {
		phases = append(phases, t.MagicPhases[q])
	}
	t.MagicPhases = phases
	t.NumQubits = len(keep)
}
