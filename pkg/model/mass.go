package model

// AverageMass returns the molecular weight including carried hydrogens.
// Atoms with an isotope label count at their mass number.
func (m *Molecule) AverageMass() float64 {
	h, _ := LookupElement("H")
	total := 0.0
	for _, a := range m.Atoms {
		if a.Isotope > 0 {
			total += float64(a.Isotope)
		} else if e, ok := LookupElement(a.Element); ok {
			total += e.Mass
		}
		total += float64(a.TotalHs()) * h.Mass
	}
	return total
}

// NetCharge sums the formal charges of all atoms.
func (m *Molecule) NetCharge() int {
	q := 0
	for _, a := range m.Atoms {
		q += a.FormalCharge
	}
	return q
}
