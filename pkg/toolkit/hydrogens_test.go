package toolkit

import (
	"testing"

	"molstd/pkg/model"
	"molstd/pkg/model/moltest"
)

func TestRemoveHs_Methane(t *testing.T) {
	in := moltest.WithSubstanceGroup(moltest.MethaneWithHs(), "DAT")
	out := NewBasic().RemoveHs(in)

	if out.NumAtoms() != 1 {
		t.Fatalf("expected 1 atom, got %d", out.NumAtoms())
	}
	if out.HeavyAtomCount() != in.HeavyAtomCount() {
		t.Errorf("expected heavy atom count %d, got %d", in.HeavyAtomCount(), out.HeavyAtomCount())
	}
	if len(out.Bonds) != 0 {
		t.Errorf("expected no bonds, got %d", len(out.Bonds))
	}
	if got := out.Atoms[0].ImplicitHs; got != 4 {
		t.Errorf("expected carbon to carry 4 implicit Hs, got %d", got)
	}
	if got := len(out.Conformers[0].Positions); got != 1 {
		t.Errorf("expected conformer with 1 position, got %d", got)
	}
	if got := out.SubstanceGroups[0].Atoms; len(got) != 1 || got[0] != 0 {
		t.Errorf("expected substance group reindexed to [0], got %v", got)
	}
	if in.NumAtoms() != 5 {
		t.Errorf("input molecule was modified: %d atoms", in.NumAtoms())
	}
}

func TestRemoveHs_KeepsSpecialHydrogens(t *testing.T) {
	tests := []struct {
		name      string
		mol       *model.Molecule
		wantAtoms int
	}{
		{
			name: "deuterium",
			mol: &model.Molecule{
				Atoms: []model.Atom{{Element: "C"}, {Element: "H", Isotope: 2}, {Element: "H"}},
				Bonds: []model.Bond{
					{Begin: 0, End: 1, Type: model.BondSingle},
					{Begin: 0, End: 2, Type: model.BondSingle},
				},
			},
			wantAtoms: 2,
		},
		{
			name: "dihydrogen",
			mol: &model.Molecule{
				Atoms: []model.Atom{{Element: "H"}, {Element: "H"}},
				Bonds: []model.Bond{{Begin: 0, End: 1, Type: model.BondSingle}},
			},
			wantAtoms: 2,
		},
		{
			name: "proton",
			mol: &model.Molecule{
				Atoms: []model.Atom{{Element: "H", FormalCharge: 1}, {Element: "Cl", FormalCharge: -1}},
			},
			wantAtoms: 2,
		},
		{
			name:      "no hydrogens",
			mol:       moltest.Benzene(),
			wantAtoms: 6,
		},
	}

	tk := NewBasic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tk.RemoveHs(tt.mol)
			if out.NumAtoms() != tt.wantAtoms {
				t.Errorf("expected %d atoms, got %d", tt.wantAtoms, out.NumAtoms())
			}
		})
	}
}

func TestRemoveHs_NoImplicitNeighbour(t *testing.T) {
	in := moltest.MethaneWithHs()
	in.Atoms[0].NoImplicit = true

	out := NewBasic().RemoveHs(in)
	if got := out.Atoms[0].ExplicitHs; got != 4 {
		t.Errorf("expected 4 explicit Hs, got %d", got)
	}
	if got := out.Atoms[0].ImplicitHs; got != 0 {
		t.Errorf("expected 0 implicit Hs, got %d", got)
	}
}
