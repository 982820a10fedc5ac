package toolkit

import (
	"slices"

	"molstd/pkg/model"
)

// Sanitize checks bond indices, perceives rings, verifies aromatic flags sit on
// ring atoms and bonds, checks every atom's valence and assigns implicit
// hydrogens. The molecule is modified in place; on error it may be partially
// updated.
func (b *Basic) Sanitize(mol *model.Molecule) error {
	if err := checkIndices(mol); err != nil {
		return err
	}
	perceiveRings(mol)
	if err := checkAromaticity(mol); err != nil {
		return err
	}
	return assignImplicitHs(mol, true)
}

func checkIndices(mol *model.Molecule) error {
	n := len(mol.Atoms)
	for i, bd := range mol.Bonds {
		if bd.Begin < 0 || bd.Begin >= n || bd.End < 0 || bd.End >= n {
			return sanitizeErr(-1, "bond %d references a missing atom", i)
		}
		if bd.Begin == bd.End {
			return sanitizeErr(bd.Begin, "bond %d is a self loop", i)
		}
	}
	for _, c := range mol.Conformers {
		if len(c.Positions) != n {
			return sanitizeErr(-1, "conformer %d has %d positions for %d atoms", c.ID, len(c.Positions), n)
		}
	}
	return nil
}

// perceiveRings flags ring bonds and atoms. A bond is in a ring exactly when it
// is not a bridge of the molecular graph.
func perceiveRings(mol *model.Molecule) {
	adj := mol.Neighbors()
	n := len(mol.Atoms)
	disc := make([]int, n)
	low := make([]int, n)
	bridge := make([]bool, len(mol.Bonds))
	timer := 0

	var visit func(u, parentBond int)
	visit = func(u, parentBond int) {
		timer++
		disc[u], low[u] = timer, timer
		for _, bi := range adj[u] {
			if bi == parentBond {
				continue
			}
			v := mol.Bonds[bi].Other(u)
			if disc[v] == 0 {
				visit(v, bi)
				low[u] = min(low[u], low[v])
				if low[v] > disc[u] {
					bridge[bi] = true
				}
			} else {
				low[u] = min(low[u], disc[v])
			}
		}
	}
	for i := 0; i < n; i++ {
		if disc[i] == 0 {
			visit(i, -1)
		}
	}

	for i := range mol.Atoms {
		mol.Atoms[i].InRing = false
	}
	for i := range mol.Bonds {
		bd := &mol.Bonds[i]
		bd.InRing = !bridge[i]
		if bd.InRing {
			mol.Atoms[bd.Begin].InRing = true
			mol.Atoms[bd.End].InRing = true
		}
	}
}

func checkAromaticity(mol *model.Molecule) error {
	for i, bd := range mol.Bonds {
		if bd.Type != model.BondAromatic {
			continue
		}
		if !bd.InRing {
			return sanitizeErr(bd.Begin, "non-ring bond %d marked aromatic", i)
		}
		mol.Atoms[bd.Begin].Aromatic = true
		mol.Atoms[bd.End].Aromatic = true
	}
	for i, a := range mol.Atoms {
		if a.Aromatic && !a.InRing {
			return sanitizeErr(i, "non-ring atom %s marked aromatic", a.Element)
		}
	}
	return nil
}

// explicitValence returns the valence an atom uses through its bonds and
// explicit hydrogens. An aromatic atom counts one bond per aromatic neighbour
// plus one extra when its default valence leaves room for a double bond.
func explicitValence(mol *model.Molecule, adj [][]int, idx int) int {
	a := mol.Atoms[idx]
	half, aromatic := 0, 0
	for _, bi := range adj[idx] {
		t := mol.Bonds[bi].Type
		if t == model.BondAromatic {
			aromatic++
			continue
		}
		half += t.Valence()
	}
	base := half/2 + a.ExplicitHs + aromatic
	if aromatic == 0 {
		return base
	}
	allowed := model.AllowedValences(a.Element, a.FormalCharge)
	if allowed == nil {
		return (half+3*aromatic+1)/2 + a.ExplicitHs
	}
	if target, ok := nextValence(allowed, base); ok && target > base {
		base++
	}
	return base
}

// nextValence returns the smallest allowed valence not below v.
func nextValence(allowed []int, v int) (int, bool) {
	for _, a := range allowed {
		if a >= v {
			return a, true
		}
	}
	return 0, false
}

// assignImplicitHs fills ImplicitHs for every atom. In strict mode an atom
// whose explicit valence exceeds every allowed valence is an error; otherwise
// it gets no implicit hydrogens.
func assignImplicitHs(mol *model.Molecule, strict bool) error {
	adj := mol.Neighbors()
	for i := range mol.Atoms {
		a := &mol.Atoms[i]
		allowed := model.AllowedValences(a.Element, a.FormalCharge)
		a.ImplicitHs = 0
		if allowed == nil {
			continue
		}
		ev := explicitValence(mol, adj, i)
		target, ok := nextValence(allowed, ev)
		if !ok {
			if strict {
				return sanitizeErr(i, "explicit valence for %s, %d, is greater than permitted (%d)",
					a.Element, ev, slices.Max(allowed))
			}
			continue
		}
		if !a.NoImplicit {
			a.ImplicitHs = target - ev
		}
	}
	return nil
}
