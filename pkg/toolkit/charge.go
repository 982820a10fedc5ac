package toolkit

import (
	"fmt"

	"molstd/pkg/model"
)

// ChargeParent takes the fragment parent and neutralizes it.
func (b *Basic) ChargeParent(mol *model.Molecule) (*model.Molecule, error) {
	parent, err := b.FragmentParent(mol)
	if err != nil {
		return nil, fmt.Errorf("charge parent: %w", err)
	}
	neutralize(parent)
	if err := b.Sanitize(parent); err != nil {
		return nil, fmt.Errorf("charge parent: %w", err)
	}
	return parent, nil
}

// neutralize removes protons from positive atoms that carry hydrogens and adds
// protons to negative atoms. Positive charges that cannot be removed
// (quaternary atoms) are balanced by leaving the same number of negative
// charges in place, first atoms first. Expects implicit hydrogens assigned.
func neutralize(mol *model.Molecule) {
	adj := mol.Neighbors()
	fixed := 0
	for i := range mol.Atoms {
		a := &mol.Atoms[i]
		for a.FormalCharge > 0 && a.TotalHs() > 0 {
			a.FormalCharge--
			if a.ExplicitHs > 0 {
				a.ExplicitHs--
			} else {
				a.ImplicitHs--
			}
		}
		if a.FormalCharge > 0 {
			fixed += a.FormalCharge
		}
	}

	for i := range mol.Atoms {
		a := &mol.Atoms[i]
		kept, added := 0, 0
		for a.FormalCharge+kept < 0 {
			if fixed > 0 {
				fixed--
				kept++
				continue
			}
			if !canProtonate(mol, adj, i, added) {
				break
			}
			a.FormalCharge++
			if a.NoImplicit {
				a.ExplicitHs++
			} else {
				added++
			}
		}
	}
}

// canProtonate reports whether the atom can take one more hydrogen once its
// negative charge drops by one. pending counts protons already added but not
// yet reflected in its hydrogen counts.
func canProtonate(mol *model.Molecule, adj [][]int, idx, pending int) bool {
	a := mol.Atoms[idx]
	allowed := model.AllowedValences(a.Element, a.FormalCharge+1)
	if allowed == nil {
		return false
	}
	ev := explicitValence(mol, adj, idx) + a.ImplicitHs + pending + 1
	_, ok := nextValence(allowed, ev)
	return ok
}
