package sanitizer

import (
	"slices"
	"testing"

	"molstd/pkg/model"
)

func TestNormalizeStepName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "remove_hs", want: "remove_hs"},
		{name: "mixed case and hyphen", input: " Remove-Hs ", want: "remove_hs"},
		{name: "spaces", input: "RDKit  Sanitize", want: "rdkit_sanitize"},
		{name: "leading separators", input: "__fragment_parent_", want: "fragment_parent"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStepName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeStepName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizeStepName(got); again != got {
				t.Errorf("not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestNormalizeElement(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "C", want: "C"},
		{input: "cl", want: "Cl"},
		{input: " NA ", want: "Na"},
		{input: "", want: ""},
		{input: "C1", want: "C1"},
	}

	for _, tt := range tests {
		if got := NormalizeElement(tt.input); got != tt.want {
			t.Errorf("NormalizeElement(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeStereo(t *testing.T) {
	for input, want := range map[string]string{
		"e":      "E",
		" Z ":    "Z",
		"Trans":  "trans",
		"ANY":    "any",
		"":       "",
		"either": "either",
	} {
		if got := NormalizeStereo(input); got != want {
			t.Errorf("NormalizeStereo(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "  sodium   acetate ", want: "sodium acetate"},
		{input: "ethanol\t\nabsolute", want: "ethanol absolute"},
		{input: "   ", want: ""},
	}

	for _, tt := range tests {
		if got := TrimAndNormalize(tt.input); got != tt.want {
			t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeSteps(t *testing.T) {
	got := NormalizeSteps([]string{"Remove-Hs", " ", "remove_hs", "Fragment Parent"})
	want := []string{"remove_hs", "remove_hs", "fragment_parent"}
	if !slices.Equal(got, want) {
		t.Errorf("NormalizeSteps() = %v, want %v", got, want)
	}
	if NormalizeSteps(nil) != nil {
		t.Errorf("expected nil for no steps")
	}
}

func TestSanitizeMolecule(t *testing.T) {
	mol := &model.Molecule{
		Name: "  vinyl   chloride ",
		Atoms: []model.Atom{
			{Element: "c"},
			{Element: "C", Chirality: "ccw"},
			{Element: " CL "},
		},
		Bonds: []model.Bond{
			{Begin: 0, End: 1, Type: " Double", Stereo: "e"},
			{Begin: 1, End: 2, Type: "single"},
		},
		SubstanceGroups: []model.SubstanceGroup{{Type: "sru"}},
	}

	SanitizeMolecule(mol)

	if mol.Name != "vinyl chloride" {
		t.Errorf("unexpected name %q", mol.Name)
	}
	if mol.Atoms[0].Element != "C" || mol.Atoms[2].Element != "Cl" {
		t.Errorf("unexpected elements %+v", mol.Atoms)
	}
	if mol.Atoms[1].Chirality != "CCW" {
		t.Errorf("unexpected chirality %q", mol.Atoms[1].Chirality)
	}
	if mol.Bonds[0].Type != model.BondDouble || mol.Bonds[0].Stereo != "E" {
		t.Errorf("unexpected bond %+v", mol.Bonds[0])
	}
	if mol.SubstanceGroups[0].Type != "SRU" {
		t.Errorf("unexpected group type %q", mol.SubstanceGroups[0].Type)
	}

	SanitizeMolecule(nil)
}
