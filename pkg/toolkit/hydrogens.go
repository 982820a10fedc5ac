package toolkit

import "molstd/pkg/model"

// RemoveHs drops hydrogen atoms that are plain substituents: no isotope, no
// charge and a single bond to one non-hydrogen neighbour. Isotopic, charged,
// bridging and H2 hydrogens stay. A neighbour that does not take implicit
// hydrogens records the removed ones as explicit.
func (b *Basic) RemoveHs(mol *model.Molecule) *model.Molecule {
	work := mol.Clone()
	adj := work.Neighbors()
	keep := make([]bool, len(work.Atoms))
	removed := false
	for i := range work.Atoms {
		keep[i] = true
		if !removableH(work, adj, i) {
			continue
		}
		keep[i] = false
		removed = true
		heavy := work.Bonds[adj[i][0]].Other(i)
		if work.Atoms[heavy].NoImplicit {
			work.Atoms[heavy].ExplicitHs++
		}
	}
	if !removed {
		return work
	}
	out := work.Subset(keep)
	_ = assignImplicitHs(out, false)
	return out
}

func removableH(mol *model.Molecule, adj [][]int, idx int) bool {
	a := mol.Atoms[idx]
	if !a.IsHydrogen() || a.Isotope != 0 || a.FormalCharge != 0 {
		return false
	}
	if len(adj[idx]) != 1 {
		return false
	}
	bd := mol.Bonds[adj[idx][0]]
	if bd.Type != model.BondSingle {
		return false
	}
	return !mol.Atoms[bd.Other(idx)].IsHydrogen()
}
