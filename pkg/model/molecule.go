package model

import "maps"

type BondType string

const (
	BondSingle   BondType = "single"
	BondDouble   BondType = "double"
	BondTriple   BondType = "triple"
	BondAromatic BondType = "aromatic"
)

// Valence returns the bond's contribution to an atom's valence, in half units
// so that aromatic bonds stay integral.
func (t BondType) Valence() int {
	switch t {
	case BondDouble:
		return 4
	case BondTriple:
		return 6
	case BondAromatic:
		return 3
	default:
		return 2
	}
}

type Atom struct {
	Element      string `json:"element" validate:"required,min=1,max=3"`
	FormalCharge int    `json:"formal_charge,omitempty" validate:"min=-8,max=8"`
	Isotope      int    `json:"isotope,omitempty" validate:"min=0"`
	ExplicitHs   int    `json:"explicit_hs,omitempty" validate:"min=0,max=8"`
	ImplicitHs   int    `json:"implicit_hs,omitempty" validate:"min=0"`
	NoImplicit   bool   `json:"no_implicit,omitempty"`
	Aromatic     bool   `json:"aromatic,omitempty"`
	InRing       bool   `json:"in_ring,omitempty"`
	Chirality    string `json:"chirality,omitempty" validate:"omitempty,oneof=CW CCW"`
}

// TotalHs counts hydrogens carried on the atom, not hydrogen atoms bonded to it.
func (a Atom) TotalHs() int {
	return a.ExplicitHs + a.ImplicitHs
}

func (a Atom) IsHydrogen() bool {
	return a.Element == "H"
}

type Bond struct {
	Begin  int      `json:"begin" validate:"min=0"`
	End    int      `json:"end" validate:"min=0,nefield=Begin"`
	Type   BondType `json:"type" validate:"required,oneof=single double triple aromatic"`
	InRing bool     `json:"in_ring,omitempty"`
	Stereo string   `json:"stereo,omitempty" validate:"omitempty,oneof=E Z cis trans any"`
}

// Other returns the atom at the opposite end of the bond from idx.
func (b Bond) Other(idx int) int {
	if b.Begin == idx {
		return b.End
	}
	return b.Begin
}

type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p Point3D) Sub(o Point3D) Point3D {
	return Point3D{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

func (p Point3D) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

type Conformer struct {
	ID        int       `json:"id"`
	Positions []Point3D `json:"positions"`
	Is3D      bool      `json:"is_3d,omitempty"`
}

type SubstanceGroup struct {
	Type  string            `json:"type" validate:"required,alphanum,max=3"`
	Atoms []int             `json:"atoms,omitempty" validate:"omitempty,dive,min=0"`
	Props map[string]string `json:"props,omitempty"`
}

type Molecule struct {
	Name            string            `json:"name,omitempty" validate:"omitempty,max=200"`
	Atoms           []Atom            `json:"atoms" validate:"dive"`
	Bonds           []Bond            `json:"bonds,omitempty" validate:"dive"`
	Conformers      []Conformer       `json:"conformers,omitempty" validate:"dive"`
	SubstanceGroups []SubstanceGroup  `json:"substance_groups,omitempty" validate:"dive"`
	Props           map[string]string `json:"props,omitempty"`
}

func (m *Molecule) NumAtoms() int {
	return len(m.Atoms)
}

func (m *Molecule) NumConformers() int {
	return len(m.Conformers)
}

func (m *Molecule) HeavyAtomCount() int {
	n := 0
	for _, a := range m.Atoms {
		if !a.IsHydrogen() {
			n++
		}
	}
	return n
}

// Neighbors returns, for every atom, the indices of the bonds touching it.
func (m *Molecule) Neighbors() [][]int {
	adj := make([][]int, len(m.Atoms))
	for i, b := range m.Bonds {
		adj[b.Begin] = append(adj[b.Begin], i)
		adj[b.End] = append(adj[b.End], i)
	}
	return adj
}

// Clone returns a deep copy of the molecule.
func (m *Molecule) Clone() *Molecule {
	if m == nil {
		return nil
	}
	out := &Molecule{
		Name:  m.Name,
		Atoms: append([]Atom(nil), m.Atoms...),
		Bonds: append([]Bond(nil), m.Bonds...),
		Props: maps.Clone(m.Props),
	}
	if m.Conformers != nil {
		out.Conformers = make([]Conformer, len(m.Conformers))
		for i, c := range m.Conformers {
			out.Conformers[i] = Conformer{
				ID:        c.ID,
				Positions: append([]Point3D(nil), c.Positions...),
				Is3D:      c.Is3D,
			}
		}
	}
	if m.SubstanceGroups != nil {
		out.SubstanceGroups = make([]SubstanceGroup, len(m.SubstanceGroups))
		for i, sg := range m.SubstanceGroups {
			out.SubstanceGroups[i] = SubstanceGroup{
				Type:  sg.Type,
				Atoms: append([]int(nil), sg.Atoms...),
				Props: maps.Clone(sg.Props),
			}
		}
	}
	return out
}

// Subset returns a copy holding only the atoms for which keep is true. Bonds,
// conformer positions and substance group members are reindexed. Bonds that
// lose an atom are dropped, as are groups left with no members.
func (m *Molecule) Subset(keep []bool) *Molecule {
	remap := make([]int, len(m.Atoms))
	out := &Molecule{Name: m.Name, Props: maps.Clone(m.Props)}
	for i, a := range m.Atoms {
		remap[i] = -1
		if keep[i] {
			remap[i] = len(out.Atoms)
			out.Atoms = append(out.Atoms, a)
		}
	}
	for _, b := range m.Bonds {
		if remap[b.Begin] < 0 || remap[b.End] < 0 {
			continue
		}
		b.Begin, b.End = remap[b.Begin], remap[b.End]
		out.Bonds = append(out.Bonds, b)
	}
	for _, c := range m.Conformers {
		nc := Conformer{ID: c.ID, Is3D: c.Is3D, Positions: make([]Point3D, 0, len(out.Atoms))}
		for i, p := range c.Positions {
			if i < len(remap) && remap[i] >= 0 {
				nc.Positions = append(nc.Positions, p)
			}
		}
		out.Conformers = append(out.Conformers, nc)
	}
	for _, sg := range m.SubstanceGroups {
		ns := SubstanceGroup{Type: sg.Type, Props: maps.Clone(sg.Props)}
		for _, idx := range sg.Atoms {
			if idx < len(remap) && remap[idx] >= 0 {
				ns.Atoms = append(ns.Atoms, remap[idx])
			}
		}
		if len(sg.Atoms) == 0 || len(ns.Atoms) > 0 {
			out.SubstanceGroups = append(out.SubstanceGroups, ns)
		}
	}
	return out
}
