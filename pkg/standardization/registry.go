package standardization

import (
	"errors"
	"fmt"
	"sync"

	"molstd/pkg/logger"
	"molstd/pkg/toolkit"
)

var ErrUnknownStandardization = errors.New("unknown standardization")

type UnknownStandardizationError struct {
	Name string
}

func (e *UnknownStandardizationError) Error() string {
	return fmt.Sprintf("unknown standardization: %q", e.Name)
}

func (e *UnknownStandardizationError) Is(target error) bool {
	return target == ErrUnknownStandardization
}

// Registry is a read-only name to step lookup. It keeps insertion order.
type Registry struct {
	steps  []Standardization
	byName map[string]Standardization
}

func NewRegistry(steps ...Standardization) (*Registry, error) {
	r := &Registry{
		steps:  make([]Standardization, 0, len(steps)),
		byName: make(map[string]Standardization, len(steps)),
	}
	for _, s := range steps {
		if s == nil {
			return nil, errors.New("registry: nil standardization")
		}
		if _, dup := r.byName[s.Name()]; dup {
			return nil, fmt.Errorf("registry: duplicate standardization %q", s.Name())
		}
		r.steps = append(r.steps, s)
		r.byName[s.Name()] = s
	}
	return r, nil
}

// NewBuiltinRegistry registers every built-in step over tk.
func NewBuiltinRegistry(tk toolkit.Toolkit) *Registry {
	r, err := NewRegistry(Builtins(tk)...)
	if err != nil {
		// builtin names are constants and unique
		panic(err)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewBuiltinRegistry(toolkit.NewBasic())
})

// Default returns the process-wide registry over the basic toolkit.
func Default() *Registry {
	return defaultRegistry()
}

func (r *Registry) Get(name string) (Standardization, bool) {
	s, ok := r.byName[name]
	return s, ok
}

func (r *Registry) List() []Standardization {
	return append([]Standardization(nil), r.steps...)
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.steps))
	for i, s := range r.steps {
		names[i] = s.Name()
	}
	return names
}

func (r *Registry) Len() int {
	return len(r.steps)
}

// Resolve maps names to steps, keeping their order. Repeats are allowed.
func (r *Registry) Resolve(names []string) ([]Standardization, error) {
	out := make([]Standardization, 0, len(names))
	for _, n := range names {
		s, ok := r.byName[n]
		if !ok {
			return nil, &UnknownStandardizationError{Name: n}
		}
		out = append(out, s)
	}
	return out, nil
}

// Pipeline resolves names into a pipeline logging through log.
func (r *Registry) Pipeline(log *logger.Logger, names ...string) (*Pipeline, error) {
	steps, err := r.Resolve(names)
	if err != nil {
		return nil, err
	}
	return NewPipeline(log, steps...), nil
}
