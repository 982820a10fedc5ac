// Package moltest builds small molecules used across the test suites.
package moltest

import "molstd/pkg/model"

func chain(elements ...string) *model.Molecule {
	m := &model.Molecule{}
	for i, e := range elements {
		m.Atoms = append(m.Atoms, model.Atom{Element: e})
		if i > 0 {
			m.Bonds = append(m.Bonds, model.Bond{Begin: i - 1, End: i, Type: model.BondSingle})
		}
	}
	return m
}

// Benzene is aromatic benzene with no hydrogens as atoms and no conformers.
func Benzene() *model.Molecule {
	m := &model.Molecule{Name: "benzene"}
	for i := 0; i < 6; i++ {
		m.Atoms = append(m.Atoms, model.Atom{Element: "C", Aromatic: true})
		m.Bonds = append(m.Bonds, model.Bond{Begin: i, End: (i + 1) % 6, Type: model.BondAromatic})
	}
	return m
}

// Ethanol is CCO with implicit hydrogens.
func Ethanol() *model.Molecule {
	m := chain("C", "C", "O")
	m.Name = "ethanol"
	return m
}

// MethaneWithHs is CH4 with the four hydrogens as atoms and a 3D conformer.
func MethaneWithHs() *model.Molecule {
	m := &model.Molecule{Name: "methane"}
	m.Atoms = append(m.Atoms, model.Atom{Element: "C"})
	pos := []model.Point3D{
		{X: 0, Y: 0, Z: 0},
		{X: 0.629, Y: 0.629, Z: 0.629},
		{X: -0.629, Y: -0.629, Z: 0.629},
		{X: -0.629, Y: 0.629, Z: -0.629},
		{X: 0.629, Y: -0.629, Z: -0.629},
	}
	for i := 1; i <= 4; i++ {
		m.Atoms = append(m.Atoms, model.Atom{Element: "H"})
		m.Bonds = append(m.Bonds, model.Bond{Begin: 0, End: i, Type: model.BondSingle})
	}
	m.Conformers = []model.Conformer{{ID: 0, Positions: pos, Is3D: true}}
	return m
}

// SodiumAcetate is CC(=O)[O-].[Na+].
func SodiumAcetate() *model.Molecule {
	m := &model.Molecule{Name: "sodium acetate"}
	m.Atoms = []model.Atom{
		{Element: "C"},
		{Element: "C"},
		{Element: "O"},
		{Element: "O", FormalCharge: -1},
		{Element: "Na", FormalCharge: 1},
	}
	m.Bonds = []model.Bond{
		{Begin: 0, End: 1, Type: model.BondSingle},
		{Begin: 1, End: 2, Type: model.BondDouble},
		{Begin: 1, End: 3, Type: model.BondSingle},
	}
	return m
}

// Ethylammonium is CC[NH3+].
func Ethylammonium() *model.Molecule {
	m := chain("C", "C", "N")
	m.Name = "ethylammonium"
	m.Atoms[2].FormalCharge = 1
	return m
}

// Betaine is C[N+](C)(C)CC(=O)[O-], a zwitterion with a quaternary nitrogen.
func Betaine() *model.Molecule {
	m := &model.Molecule{Name: "betaine"}
	m.Atoms = []model.Atom{
		{Element: "C"},
		{Element: "N", FormalCharge: 1},
		{Element: "C"},
		{Element: "C"},
		{Element: "C"},
		{Element: "C"},
		{Element: "O"},
		{Element: "O", FormalCharge: -1},
	}
	m.Bonds = []model.Bond{
		{Begin: 0, End: 1, Type: model.BondSingle},
		{Begin: 1, End: 2, Type: model.BondSingle},
		{Begin: 1, End: 3, Type: model.BondSingle},
		{Begin: 1, End: 4, Type: model.BondSingle},
		{Begin: 4, End: 5, Type: model.BondSingle},
		{Begin: 5, End: 6, Type: model.BondDouble},
		{Begin: 5, End: 7, Type: model.BondSingle},
	}
	return m
}

// VinylAlcohol is C=CO, the enol tautomer of acetaldehyde.
func VinylAlcohol() *model.Molecule {
	m := chain("C", "C", "O")
	m.Name = "vinyl alcohol"
	m.Bonds[0].Type = model.BondDouble
	return m
}

// PentavalentCarbon is a carbon with five methyl neighbours.
func PentavalentCarbon() *model.Molecule {
	m := &model.Molecule{Name: "pentavalent carbon"}
	m.Atoms = append(m.Atoms, model.Atom{Element: "C"})
	for i := 1; i <= 5; i++ {
		m.Atoms = append(m.Atoms, model.Atom{Element: "C"})
		m.Bonds = append(m.Bonds, model.Bond{Begin: 0, End: i, Type: model.BondSingle})
	}
	return m
}

// AromaticChain marks an acyclic chain aromatic, which sanitization rejects.
func AromaticChain() *model.Molecule {
	m := chain("C", "C", "C")
	for i := range m.Atoms {
		m.Atoms[i].Aromatic = true
	}
	for i := range m.Bonds {
		m.Bonds[i].Type = model.BondAromatic
	}
	return m
}

// Propanol3D is CCCO with a non-symmetric 3D conformer.
func Propanol3D() *model.Molecule {
	m := chain("C", "C", "C", "O")
	m.Name = "propanol"
	m.Conformers = []model.Conformer{{
		ID:   0,
		Is3D: true,
		Positions: []model.Point3D{
			{X: 1.0, Y: 2.0, Z: 3.0},
			{X: 2.5, Y: 2.2, Z: 3.1},
			{X: 3.1, Y: 3.6, Z: 3.6},
			{X: 4.4, Y: 3.5, Z: 4.5},
		},
	}}
	return m
}

// WithConformer attaches one conformer built from positions.
func WithConformer(m *model.Molecule, is3D bool, positions ...model.Point3D) *model.Molecule {
	m.Conformers = append(m.Conformers, model.Conformer{
		ID:        len(m.Conformers),
		Positions: positions,
		Is3D:      is3D,
	})
	return m
}

// WithSubstanceGroup attaches a substance group of the given type over all atoms.
func WithSubstanceGroup(m *model.Molecule, typ string) *model.Molecule {
	atoms := make([]int, len(m.Atoms))
	for i := range atoms {
		atoms[i] = i
	}
	m.SubstanceGroups = append(m.SubstanceGroups, model.SubstanceGroup{Type: typ, Atoms: atoms})
	return m
}
