package toolkit

import (
	"errors"
	"testing"

	"molstd/pkg/model"
	"molstd/pkg/model/moltest"
)

func TestFragments(t *testing.T) {
	frags := Fragments(moltest.SodiumAcetate())
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if len(frags[0]) != 4 || len(frags[1]) != 1 || frags[1][0] != 4 {
		t.Errorf("unexpected fragments %v", frags)
	}
}

func TestFragmentParent(t *testing.T) {
	ethanolAndWater := moltest.Ethanol()
	ethanolAndWater.Atoms = append([]model.Atom{{Element: "O"}}, ethanolAndWater.Atoms...)
	for i := range ethanolAndWater.Bonds {
		ethanolAndWater.Bonds[i].Begin++
		ethanolAndWater.Bonds[i].End++
	}

	tests := []struct {
		name         string
		mol          *model.Molecule
		wantElements []string
	}{
		{
			name:         "organic salt keeps the anion",
			mol:          moltest.SodiumAcetate(),
			wantElements: []string{"C", "C", "O", "O"},
		},
		{
			name:         "largest organic fragment wins",
			mol:          ethanolAndWater,
			wantElements: []string{"C", "C", "O"},
		},
		{
			name: "inorganic falls back to mass",
			mol: &model.Molecule{Atoms: []model.Atom{
				{Element: "Na", FormalCharge: 1},
				{Element: "Cl", FormalCharge: -1},
			}},
			wantElements: []string{"Cl"},
		},
		{
			name:         "single fragment is kept whole",
			mol:          moltest.Benzene(),
			wantElements: []string{"C", "C", "C", "C", "C", "C"},
		},
	}

	tk := NewBasic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atomsBefore := tt.mol.NumAtoms()
			out, err := tk.FragmentParent(tt.mol)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.NumAtoms() != len(tt.wantElements) {
				t.Fatalf("expected %d atoms, got %d", len(tt.wantElements), out.NumAtoms())
			}
			for i, e := range tt.wantElements {
				if out.Atoms[i].Element != e {
					t.Errorf("atom %d: expected %s, got %s", i, e, out.Atoms[i].Element)
				}
			}
			if tt.mol.NumAtoms() != atomsBefore {
				t.Errorf("input molecule was modified")
			}
		})
	}
}

func TestParents_Errors(t *testing.T) {
	tk := NewBasic()
	parents := map[string]func(*model.Molecule) (*model.Molecule, error){
		"fragment": tk.FragmentParent,
		"charge":   tk.ChargeParent,
		"tautomer": tk.TautomerParent,
		"super":    tk.SuperParent,
	}
	for name, fn := range parents {
		t.Run(name, func(t *testing.T) {
			out, err := fn(moltest.PentavalentCarbon())
			if err == nil {
				t.Fatalf("expected error, got molecule with %d atoms", out.NumAtoms())
			}
			if !errors.Is(err, ErrSanitization) {
				t.Errorf("expected ErrSanitization in chain, got %v", err)
			}
		})
	}

	if _, err := tk.FragmentParent(&model.Molecule{}); !errors.Is(err, ErrEmptyMolecule) {
		t.Errorf("expected ErrEmptyMolecule, got %v", err)
	}
}

func TestChargeParent(t *testing.T) {
	tk := NewBasic()

	acid, err := tk.ChargeParent(moltest.SodiumAcetate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acid.NumAtoms() != 4 {
		t.Fatalf("expected acetic acid with 4 heavy atoms, got %d", acid.NumAtoms())
	}
	if acid.NetCharge() != 0 {
		t.Errorf("expected neutral molecule, got charge %d", acid.NetCharge())
	}
	if got := acid.Atoms[3].TotalHs(); got != 1 {
		t.Errorf("expected hydroxyl oxygen with 1 H, got %d", got)
	}

	amine, err := tk.ChargeParent(moltest.Ethylammonium())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amine.Atoms[2].FormalCharge != 0 || amine.Atoms[2].TotalHs() != 2 {
		t.Errorf("expected neutral NH2, got charge %d with %d Hs",
			amine.Atoms[2].FormalCharge, amine.Atoms[2].TotalHs())
	}

	zwitterion, err := tk.ChargeParent(moltest.Betaine())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zwitterion.Atoms[1].FormalCharge != 1 || zwitterion.Atoms[7].FormalCharge != -1 {
		t.Errorf("expected quaternary N+ balanced by O-, got %d and %d",
			zwitterion.Atoms[1].FormalCharge, zwitterion.Atoms[7].FormalCharge)
	}
}

func TestTautomerParent(t *testing.T) {
	tk := NewBasic()

	keto, err := tk.TautomerParent(moltest.VinylAlcohol())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keto.Bonds[0].Type != model.BondSingle || keto.Bonds[1].Type != model.BondDouble {
		t.Errorf("expected CC=O, got bonds %s and %s", keto.Bonds[0].Type, keto.Bonds[1].Type)
	}
	if got := keto.Atoms[0].ImplicitHs; got != 3 {
		t.Errorf("expected methyl carbon with 3 Hs, got %d", got)
	}
	if got := keto.Atoms[2].ImplicitHs; got != 0 {
		t.Errorf("expected carbonyl oxygen with 0 Hs, got %d", got)
	}

	ethanol, err := tk.TautomerParent(moltest.Ethanol())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, b := range ethanol.Bonds {
		if b.Type != model.BondSingle {
			t.Errorf("bond %d: expected single, got %s", i, b.Type)
		}
	}
}

func TestSuperParent(t *testing.T) {
	in := moltest.SodiumAcetate()
	in.Atoms[0].Isotope = 13
	in.Atoms[1].Chirality = "CW"

	out, err := NewBasic().SuperParent(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.NumAtoms() != 4 {
		t.Fatalf("expected 4 atoms, got %d", out.NumAtoms())
	}
	if out.Atoms[0].Isotope != 0 {
		t.Errorf("expected isotope label removed, got %d", out.Atoms[0].Isotope)
	}
	if out.Atoms[1].Chirality != "" {
		t.Errorf("expected chirality removed, got %q", out.Atoms[1].Chirality)
	}
	if out.NetCharge() != 0 {
		t.Errorf("expected neutral super parent, got charge %d", out.NetCharge())
	}
	if in.Atoms[0].Isotope != 13 {
		t.Errorf("input molecule was modified")
	}
}
