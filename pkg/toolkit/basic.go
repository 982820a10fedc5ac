package toolkit

// Basic is a self-contained toolkit covering organic main-group chemistry.
// It keeps no state, so one value can serve any number of goroutines.
type Basic struct{}

func NewBasic() *Basic {
	return &Basic{}
}

var _ Toolkit = (*Basic)(nil)
