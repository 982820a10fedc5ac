package toolkit

import (
	"fmt"

	"molstd/pkg/model"
)

// TautomerParent sanitizes a copy of the molecule and shifts every enol to its
// keto form (H-O-C=C to O=C-C-H) until none is left. Aromatic and charged
// atoms are not touched.
func (b *Basic) TautomerParent(mol *model.Molecule) (*model.Molecule, error) {
	work := mol.Clone()
	if err := b.Sanitize(work); err != nil {
		return nil, fmt.Errorf("tautomer parent: %w", err)
	}
	// each shift turns a C=C into a single bond, so the loop is bounded
	for range work.Bonds {
		if !shiftEnol(work) {
			break
		}
		if err := b.Sanitize(work); err != nil {
			return nil, fmt.Errorf("tautomer parent: %w", err)
		}
	}
	return work, nil
}

// shiftEnol applies one enol to keto shift and reports whether it found one.
func shiftEnol(mol *model.Molecule) bool {
	adj := mol.Neighbors()
	for o, a := range mol.Atoms {
		if a.Element != "O" || a.FormalCharge != 0 || a.Aromatic || a.TotalHs() == 0 {
			continue
		}
		if len(adj[o]) != 1 {
			continue
		}
		co := adj[o][0]
		if mol.Bonds[co].Type != model.BondSingle {
			continue
		}
		c1 := mol.Bonds[co].Other(o)
		if !plainCarbon(mol.Atoms[c1]) {
			continue
		}
		for _, bi := range adj[c1] {
			if bi == co || mol.Bonds[bi].Type != model.BondDouble {
				continue
			}
			c2 := mol.Bonds[bi].Other(c1)
			if !plainCarbon(mol.Atoms[c2]) {
				continue
			}
			mol.Bonds[co].Type = model.BondDouble
			mol.Bonds[bi].Type = model.BondSingle
			mol.Bonds[bi].Stereo = ""
			moveHydrogen(&mol.Atoms[o], &mol.Atoms[c2])
			return true
		}
	}
	return false
}

func plainCarbon(a model.Atom) bool {
	return a.Element == "C" && a.FormalCharge == 0 && !a.Aromatic
}

// moveHydrogen takes one hydrogen from src and gives it to dst. Implicit
// counts are reassigned by the next sanitization, so only explicit counts
// need adjusting.
func moveHydrogen(src, dst *model.Atom) {
	if src.ExplicitHs > 0 {
		src.ExplicitHs--
	}
	if dst.NoImplicit {
		dst.ExplicitHs++
	}
}
