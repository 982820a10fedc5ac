package toolkit

import (
	"fmt"

	"molstd/pkg/model"
)

// SuperParent combines the fragment, charge, isotope, stereo and tautomer
// parents.
func (b *Basic) SuperParent(mol *model.Molecule) (*model.Molecule, error) {
	parent, err := b.ChargeParent(mol)
	if err != nil {
		return nil, fmt.Errorf("super parent: %w", err)
	}
	stripIsotopes(parent)
	stripStereo(parent)
	parent, err = b.TautomerParent(parent)
	if err != nil {
		return nil, fmt.Errorf("super parent: %w", err)
	}
	return parent, nil
}

func stripIsotopes(mol *model.Molecule) {
	for i := range mol.Atoms {
		mol.Atoms[i].Isotope = 0
	}
}

func stripStereo(mol *model.Molecule) {
	for i := range mol.Atoms {
		mol.Atoms[i].Chirality = ""
	}
	for i := range mol.Bonds {
		mol.Bonds[i].Stereo = ""
	}
}
