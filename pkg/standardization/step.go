package standardization

import (
	"fmt"

	"molstd/pkg/model"
)

// Standardization is one named step of a registration pipeline. Apply either
// returns a molecule or a *Rejection, never both.
type Standardization interface {
	Name() string
	Explanation() string
	Apply(mol *model.Molecule) (*model.Molecule, error)
}

type ApplyFunc func(mol *model.Molecule) (*model.Molecule, error)

// Step is a Standardization backed by a function. Errors returned by fn are
// wrapped into a Rejection carrying reason.
type Step struct {
	name        string
	explanation string
	reason      Reason
	fn          ApplyFunc
}

var _ Standardization = (*Step)(nil)

func NewStep(name, explanation string, reason Reason, fn ApplyFunc) *Step {
	if fn == nil {
		fn = identity
	}
	return &Step{
		name:        name,
		explanation: explanation,
		reason:      reason,
		fn:          fn,
	}
}

func (s *Step) Name() string {
	return s.name
}

func (s *Step) Explanation() string {
	return s.explanation
}

func (s *Step) Reason() Reason {
	return s.reason
}

func (s *Step) Apply(mol *model.Molecule) (out *model.Molecule, err error) {
	if mol == nil {
		return nil, s.reject(ReasonValidation, ErrNilMolecule)
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = s.reject(ReasonComputation, fmt.Errorf("panic: %v", r))
		}
	}()

	res, ferr := s.fn(mol)
	if ferr != nil {
		if rej, ok := AsRejection(ferr); ok {
			return nil, rej
		}
		return nil, s.reject(s.reason, ferr)
	}
	if res == nil {
		return nil, s.reject(ReasonComputation, ErrNoResult)
	}
	return res, nil
}

func (s *Step) String() string {
	return s.name
}

func (s *Step) reject(reason Reason, err error) *Rejection {
	return &Rejection{
		Step:        s.name,
		Explanation: s.explanation,
		Reason:      reason,
		Err:         err,
	}
}

func identity(mol *model.Molecule) (*model.Molecule, error) {
	return mol, nil
}
