package model

type Element struct {
	Symbol       string
	AtomicNumber int
	Mass         float64
	// Valences lists the allowed neutral valences, ascending. Empty means the
	// element is not valence checked.
	Valences []int
}

var elements = []Element{
	{"H", 1, 1.008, []int{1}},
	{"He", 2, 4.003, []int{0}},
	{"Li", 3, 6.94, []int{1}},
	{"Be", 4, 9.012, []int{2}},
	{"B", 5, 10.81, []int{3}},
	{"C", 6, 12.011, []int{4}},
	{"N", 7, 14.007, []int{3}},
	{"O", 8, 15.999, []int{2}},
	{"F", 9, 18.998, []int{1}},
	{"Ne", 10, 20.180, []int{0}},
	{"Na", 11, 22.990, []int{1}},
	{"Mg", 12, 24.305, []int{2}},
	{"Al", 13, 26.982, []int{3}},
	{"Si", 14, 28.085, []int{4}},
	{"P", 15, 30.974, []int{3, 5}},
	{"S", 16, 32.06, []int{2, 4, 6}},
	{"Cl", 17, 35.45, []int{1}},
	{"Ar", 18, 39.948, []int{0}},
	{"K", 19, 39.098, []int{1}},
	{"Ca", 20, 40.078, []int{2}},
	{"Fe", 26, 55.845, nil},
	{"Co", 27, 58.933, nil},
	{"Ni", 28, 58.693, nil},
	{"Cu", 29, 63.546, nil},
	{"Zn", 30, 65.38, nil},
	{"As", 33, 74.922, []int{3, 5}},
	{"Se", 34, 78.971, []int{2, 4, 6}},
	{"Br", 35, 79.904, []int{1}},
	{"Kr", 36, 83.798, []int{0}},
	{"Pd", 46, 106.42, nil},
	{"Ag", 47, 107.868, nil},
	{"Sn", 50, 118.71, nil},
	{"I", 53, 126.904, []int{1, 3, 5}},
	{"Xe", 54, 131.293, []int{0}},
	{"Pt", 78, 195.084, nil},
	{"Au", 79, 196.967, nil},
	{"Hg", 80, 200.592, nil},
	{"*", 0, 0, nil},
}

var (
	bySymbol = map[string]*Element{}
	byNumber = map[int]*Element{}
)

func init() {
	for i := range elements {
		e := &elements[i]
		bySymbol[e.Symbol] = e
		byNumber[e.AtomicNumber] = e
	}
}

// LookupElement returns the element for a symbol, or false if it is unknown.
func LookupElement(symbol string) (Element, bool) {
	e, ok := bySymbol[symbol]
	if !ok {
		return Element{}, false
	}
	return *e, true
}

// AllowedValences returns the valences permitted for an element carrying a
// formal charge. Charged atoms take the valences of their isoelectronic
// neighbour (N+ behaves like C, O- like F), falling back to the neutral table.
func AllowedValences(symbol string, charge int) []int {
	e, ok := bySymbol[symbol]
	if !ok || e.Valences == nil {
		return nil
	}
	if charge == 0 {
		return e.Valences
	}
	if e.AtomicNumber-charge <= 0 {
		return []int{0}
	}
	if iso, ok := byNumber[e.AtomicNumber-charge]; ok && iso.Valences != nil && iso.AtomicNumber > 0 {
		return iso.Valences
	}
	return e.Valences
}
