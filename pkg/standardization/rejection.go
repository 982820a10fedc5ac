package standardization

import (
	"errors"
	"fmt"
)

// Reason tells a structural rejection apart from a failed computation.
// Callers that only care about accept/reject can ignore it.
type Reason string

const (
	ReasonValidation  Reason = "validation"
	ReasonComputation Reason = "computation"
)

var (
	ErrRejected         = errors.New("molecule rejected")
	ErrNilMolecule      = errors.New("molecule is nil")
	ErrOverlappingAtoms = errors.New("atoms closer than threshold distance")
	ErrPolymerInfo      = errors.New("polymer substance group present")
	ErrNoResult         = errors.New("step produced no molecule")
)

// Rejection is the only error a step returns.
type Rejection struct {
	Step        string `json:"step"`
	Explanation string `json:"explanation"`
	Reason      Reason `json:"reason"`
	Err         error  `json:"-"`
}

func (r *Rejection) Error() string {
	if r.Err == nil {
		return fmt.Sprintf("%s: rejected", r.Step)
	}
	return fmt.Sprintf("%s: rejected: %v", r.Step, r.Err)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

func (r *Rejection) Is(target error) bool {
	return target == ErrRejected
}

// Message is the cause as text, empty when there is none.
func (r *Rejection) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}
