// Package toolkit defines the cheminformatics capabilities the standardization
// steps delegate to, and Basic, an in-process implementation of them.
//
// Methods that return a molecule never modify their input. Sanitize and
// CanonicalizeConformer work in place.
package toolkit

import (
	"errors"
	"fmt"

	"molstd/pkg/model"
)

type Toolkit interface {
	// RemoveHs returns a copy of the molecule without its removable hydrogen atoms.
	RemoveHs(mol *model.Molecule) *model.Molecule
	// CanonicalizeConformer moves a conformer into its canonical frame.
	CanonicalizeConformer(conf *model.Conformer)
	// Sanitize perceives rings, checks aromaticity and valences and assigns
	// implicit hydrogens.
	Sanitize(mol *model.Molecule) error
	FragmentParent(mol *model.Molecule) (*model.Molecule, error)
	ChargeParent(mol *model.Molecule) (*model.Molecule, error)
	TautomerParent(mol *model.Molecule) (*model.Molecule, error)
	SuperParent(mol *model.Molecule) (*model.Molecule, error)
}

var (
	ErrSanitization  = errors.New("sanitization failed")
	ErrEmptyMolecule = errors.New("molecule has no atoms")
)

// SanitizeError reports the atom that failed sanitization. Atom is -1 when the
// failure is not tied to a single atom.
type SanitizeError struct {
	Atom    int
	Message string
}

func (e *SanitizeError) Error() string {
	if e.Atom < 0 {
		return fmt.Sprintf("sanitize: %s", e.Message)
	}
	return fmt.Sprintf("sanitize: atom %d: %s", e.Atom, e.Message)
}

func (e *SanitizeError) Is(target error) bool {
	return target == ErrSanitization
}

func sanitizeErr(atom int, format string, args ...any) *SanitizeError {
	return &SanitizeError{Atom: atom, Message: fmt.Sprintf(format, args...)}
}
