package sanitizer

import "molstd/pkg/model"

// SanitizeMolecule normalizes mol in place. A nil molecule is left alone.
func SanitizeMolecule(mol *model.Molecule) {
	if mol == nil {
		return
	}

	mol.Name = TrimAndNormalize(mol.Name)
	for i := range mol.Atoms {
		a := &mol.Atoms[i]
		a.Element = NormalizeElement(a.Element)
		a.Chirality = NormalizeTag(a.Chirality)
	}
	for i := range mol.Bonds {
		b := &mol.Bonds[i]
		b.Type = model.BondType(trimAndLower(string(b.Type)))
		b.Stereo = NormalizeStereo(b.Stereo)
	}
	for i := range mol.SubstanceGroups {
		mol.SubstanceGroups[i].Type = NormalizeTag(mol.SubstanceGroups[i].Type)
	}
}
