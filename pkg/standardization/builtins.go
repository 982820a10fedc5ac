package standardization

import (
	"fmt"

	"molstd/pkg/model"
	"molstd/pkg/toolkit"
)

const (
	NoStandardizationName       = "no_standardization"
	RemoveHsName                = "remove_hs"
	CanonicalizeOrientationName = "canonicalize_orientation"
	OverlappingAtomsName        = "has_overlapping_atoms"
	PolymerInfoName             = "has_polymer_info"
	SanitizeName                = "rdkit_sanitize"
	FragmentParentName          = "fragment_parent"
	ChargeParentName            = "charge_parent"
	TautomerParentName          = "tautomer_parent"
	SuperParentName             = "super_parent"
)

// OverlapThreshold is the distance below which two atoms of the first
// conformer are considered overlapping.
const OverlapThreshold = 0.0001

const overlapThresholdSq = OverlapThreshold * OverlapThreshold

// PolymerTypes are the SGroup types that mark polymer information.
var PolymerTypes = map[string]struct{}{
	"SRU": {},
	"COP": {},
	"MON": {},
	"CRO": {},
	"GRA": {},
}

var builtinNames = []string{
	NoStandardizationName,
	RemoveHsName,
	CanonicalizeOrientationName,
	OverlappingAtomsName,
	PolymerInfoName,
	SanitizeName,
	FragmentParentName,
	ChargeParentName,
	TautomerParentName,
	SuperParentName,
}

// Names lists the built-in step names in declaration order.
func Names() []string {
	return append([]string(nil), builtinNames...)
}

func IsBuiltin(name string) bool {
	for _, n := range builtinNames {
		if n == name {
			return true
		}
	}
	return false
}

// Builtins builds every built-in step over tk, in declaration order.
func Builtins(tk toolkit.Toolkit) []Standardization {
	return []Standardization{
		NoStandardization(),
		RemoveHs(tk),
		CanonicalizeOrientation(tk),
		OverlappingAtoms(),
		PolymerInfo(),
		Sanitize(tk),
		FragmentParent(tk),
		ChargeParent(tk),
		TautomerParent(tk),
		SuperParent(tk),
	}
}

func NoStandardization() *Step {
	return NewStep(NoStandardizationName,
		"does not modify the molecule",
		ReasonComputation, identity)
}

func RemoveHs(tk toolkit.Toolkit) *Step {
	return NewStep(RemoveHsName,
		"removes hydrogens from the molecule",
		ReasonComputation,
		func(mol *model.Molecule) (*model.Molecule, error) {
			return tk.RemoveHs(mol), nil
		})
}

// CanonicalizeOrientation works in place. 2D conformers are left alone.
func CanonicalizeOrientation(tk toolkit.Toolkit) *Step {
	return NewStep(CanonicalizeOrientationName,
		"canonicalizes the orientation of the molecule's 3D conformers (if present)",
		ReasonComputation,
		func(mol *model.Molecule) (*model.Molecule, error) {
			for i := range mol.Conformers {
				if mol.Conformers[i].Is3D {
					tk.CanonicalizeConformer(&mol.Conformers[i])
				}
			}
			return mol, nil
		})
}

// OverlappingAtoms only looks at the first conformer and passes molecules
// without coordinates.
func OverlappingAtoms() *Step {
	return NewStep(OverlappingAtomsName,
		"fails if molecule has at least two atoms which are closer than a threshold distance to each other",
		ReasonValidation,
		func(mol *model.Molecule) (*model.Molecule, error) {
			if mol.NumConformers() == 0 {
				return mol, nil
			}
			pos := mol.Conformers[0].Positions
			for i := range pos {
				for j := 0; j < i; j++ {
					if pos[i].Sub(pos[j]).LengthSq() < overlapThresholdSq {
						return nil, fmt.Errorf("%w: atoms %d and %d", ErrOverlappingAtoms, j, i)
					}
				}
			}
			return mol, nil
		})
}

func PolymerInfo() *Step {
	return NewStep(PolymerInfoName,
		"fails if molecule has an SGroup associated with polymers",
		ReasonValidation,
		func(mol *model.Molecule) (*model.Molecule, error) {
			for i, sg := range mol.SubstanceGroups {
				if _, ok := PolymerTypes[sg.Type]; ok {
					return nil, fmt.Errorf("%w: sgroup %d has type %s", ErrPolymerInfo, i, sg.Type)
				}
			}
			return mol, nil
		})
}

// Sanitize modifies the molecule in place and returns the same reference.
func Sanitize(tk toolkit.Toolkit) *Step {
	return NewStep(SanitizeName,
		"runs the standard RDKit sanitization on the molecule",
		ReasonComputation,
		func(mol *model.Molecule) (*model.Molecule, error) {
			if err := tk.Sanitize(mol); err != nil {
				return nil, err
			}
			return mol, nil
		})
}

func FragmentParent(tk toolkit.Toolkit) *Step {
	return NewStep(FragmentParentName,
		"generates the fragment parent of the molecule",
		ReasonComputation, tk.FragmentParent)
}

func ChargeParent(tk toolkit.Toolkit) *Step {
	return NewStep(ChargeParentName,
		"generates the charge parent of the molecule",
		ReasonComputation, tk.ChargeParent)
}

func TautomerParent(tk toolkit.Toolkit) *Step {
	return NewStep(TautomerParentName,
		"generates the tautomer parent of the molecule",
		ReasonComputation, tk.TautomerParent)
}

func SuperParent(tk toolkit.Toolkit) *Step {
	return NewStep(SuperParentName,
		"generates the super parent of the molecule",
		ReasonComputation, tk.SuperParent)
}
