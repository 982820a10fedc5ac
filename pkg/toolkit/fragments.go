package toolkit

import (
	"fmt"
	"slices"

	"molstd/pkg/model"
)

type fragment struct {
	atoms   []int
	organic bool
	heavy   int
	total   int
	mass    float64
}

// Fragments splits the molecule into connected components, each listed as
// ascending atom indices. Components are ordered by their lowest atom.
func Fragments(mol *model.Molecule) [][]int {
	adj := mol.Neighbors()
	seen := make([]bool, len(mol.Atoms))
	var out [][]int
	for start := range mol.Atoms {
		if seen[start] {
			continue
		}
		seen[start] = true
		var comp []int
		for queue := []int{start}; len(queue) > 0; queue = queue[1:] {
			u := queue[0]
			comp = append(comp, u)
			for _, bi := range adj[u] {
				v := mol.Bonds[bi].Other(u)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}
	return out
}

func describe(mol *model.Molecule, atoms []int) fragment {
	f := fragment{atoms: atoms}
	keep := make([]bool, len(mol.Atoms))
	for _, i := range atoms {
		a := mol.Atoms[i]
		keep[i] = true
		if a.Element == "C" {
			f.organic = true
		}
		if !a.IsHydrogen() {
			f.heavy++
		}
		f.total += 1 + a.TotalHs()
	}
	f.mass = mol.Subset(keep).AverageMass()
	return f
}

// better reports whether f should be preferred over g as the parent fragment.
// Ties fall through to the fragment whose first atom comes first.
func (f fragment) better(g fragment) bool {
	switch {
	case f.organic != g.organic:
		return f.organic
	case f.heavy != g.heavy:
		return f.heavy > g.heavy
	case f.total != g.total:
		return f.total > g.total
	case f.mass != g.mass:
		return f.mass > g.mass
	default:
		return f.atoms[0] < g.atoms[0]
	}
}

// FragmentParent sanitizes a copy of the molecule and keeps its largest
// fragment, preferring fragments that contain carbon.
func (b *Basic) FragmentParent(mol *model.Molecule) (*model.Molecule, error) {
	work := mol.Clone()
	if len(work.Atoms) == 0 {
		return nil, fmt.Errorf("fragment parent: %w", ErrEmptyMolecule)
	}
	if err := b.Sanitize(work); err != nil {
		return nil, fmt.Errorf("fragment parent: %w", err)
	}
	frags := Fragments(work)
	if len(frags) == 1 {
		return work, nil
	}
	best := describe(work, frags[0])
	for _, atoms := range frags[1:] {
		if f := describe(work, atoms); f.better(best) {
			best = f
		}
	}
	keep := make([]bool, len(work.Atoms))
	for _, i := range best.atoms {
		keep[i] = true
	}
	return work.Subset(keep), nil
}
