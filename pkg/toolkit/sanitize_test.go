package toolkit

import (
	"errors"
	"testing"

	"molstd/pkg/model"
	"molstd/pkg/model/moltest"
)

func aromaticRing(elements ...string) *model.Molecule {
	m := &model.Molecule{}
	n := len(elements)
	for i, e := range elements {
		m.Atoms = append(m.Atoms, model.Atom{Element: e, Aromatic: true})
		m.Bonds = append(m.Bonds, model.Bond{Begin: i, End: (i + 1) % n, Type: model.BondAromatic})
	}
	return m
}

func TestSanitize_ImplicitHydrogens(t *testing.T) {
	tests := []struct {
		name string
		mol  *model.Molecule
		want []int
	}{
		{
			name: "benzene",
			mol:  moltest.Benzene(),
			want: []int{1, 1, 1, 1, 1, 1},
		},
		{
			name: "ethanol",
			mol:  moltest.Ethanol(),
			want: []int{3, 2, 1},
		},
		{
			name: "pyridine",
			mol:  aromaticRing("N", "C", "C", "C", "C", "C"),
			want: []int{0, 1, 1, 1, 1, 1},
		},
		{
			name: "thiophene",
			mol:  aromaticRing("S", "C", "C", "C", "C"),
			want: []int{0, 1, 1, 1, 1},
		},
		{
			name: "sodium acetate",
			mol:  moltest.SodiumAcetate(),
			want: []int{3, 0, 0, 0, 0},
		},
		{
			name: "ethylammonium",
			mol:  moltest.Ethylammonium(),
			want: []int{3, 2, 3},
		},
	}

	tk := NewBasic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tk.Sanitize(tt.mol); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, want := range tt.want {
				if got := tt.mol.Atoms[i].ImplicitHs; got != want {
					t.Errorf("atom %d: expected %d implicit Hs, got %d", i, want, got)
				}
			}
		})
	}
}

func TestSanitize_RingPerception(t *testing.T) {
	tk := NewBasic()

	benzene := moltest.Benzene()
	if err := tk.Sanitize(benzene); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, a := range benzene.Atoms {
		if !a.InRing {
			t.Errorf("benzene atom %d should be in a ring", i)
		}
	}
	for i, b := range benzene.Bonds {
		if !b.InRing {
			t.Errorf("benzene bond %d should be in a ring", i)
		}
	}

	ethanol := moltest.Ethanol()
	if err := tk.Sanitize(ethanol); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, a := range ethanol.Atoms {
		if a.InRing {
			t.Errorf("ethanol atom %d should not be in a ring", i)
		}
	}
}

func TestSanitize_Failures(t *testing.T) {
	mismatch := moltest.Ethanol()
	mismatch.Conformers = []model.Conformer{{ID: 0, Positions: []model.Point3D{{}}}}

	tests := []struct {
		name     string
		mol      *model.Molecule
		wantAtom int
	}{
		{
			name:     "pentavalent carbon",
			mol:      moltest.PentavalentCarbon(),
			wantAtom: 0,
		},
		{
			name:     "aromatic chain",
			mol:      moltest.AromaticChain(),
			wantAtom: 0,
		},
		{
			name: "bond to missing atom",
			mol: &model.Molecule{
				Atoms: []model.Atom{{Element: "C"}, {Element: "C"}},
				Bonds: []model.Bond{{Begin: 0, End: 5, Type: model.BondSingle}},
			},
			wantAtom: -1,
		},
		{
			name:     "conformer size mismatch",
			mol:      mismatch,
			wantAtom: -1,
		},
		{
			name: "hypervalent fluorine",
			mol: &model.Molecule{
				Atoms: []model.Atom{{Element: "F"}, {Element: "C"}, {Element: "C"}},
				Bonds: []model.Bond{
					{Begin: 0, End: 1, Type: model.BondSingle},
					{Begin: 0, End: 2, Type: model.BondSingle},
				},
			},
			wantAtom: 0,
		},
	}

	tk := NewBasic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tk.Sanitize(tt.mol)
			if err == nil {
				t.Fatal("expected sanitization error, got nil")
			}
			if !errors.Is(err, ErrSanitization) {
				t.Errorf("expected error to match ErrSanitization, got %v", err)
			}
			var se *SanitizeError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SanitizeError, got %T", err)
			}
			if se.Atom != tt.wantAtom {
				t.Errorf("expected atom %d, got %d (%v)", tt.wantAtom, se.Atom, err)
			}
		})
	}
}

func TestSanitize_NoImplicit(t *testing.T) {
	mol := moltest.Ethanol()
	mol.Atoms[0].NoImplicit = true
	mol.Atoms[0].ExplicitHs = 3

	if err := NewBasic().Sanitize(mol); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mol.Atoms[0].ImplicitHs != 0 {
		t.Errorf("expected no implicit Hs on a no-implicit atom, got %d", mol.Atoms[0].ImplicitHs)
	}
	if mol.Atoms[0].TotalHs() != 3 {
		t.Errorf("expected 3 total Hs, got %d", mol.Atoms[0].TotalHs())
	}
}
