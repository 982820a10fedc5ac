package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"molstd/pkg/model"
)

const (
	tagAtomIndex     = "atom_index"
	tagPositionCount = "position_count"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

// MoleculeValidator checks a molecule is structurally usable before any step
// runs: field ranges from struct tags, and atom indices that point inside the
// atom list.
type MoleculeValidator struct {
	validate *validator.Validate
}

func NewMoleculeValidator() *MoleculeValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	v.RegisterStructValidation(moleculeIndexRules, model.Molecule{})

	return &MoleculeValidator{
		validate: v,
	}
}

func (v *MoleculeValidator) Validate(mol *model.Molecule) error {
	if mol == nil {
		return ValidationErrors{{Field: "molecule", Message: "is required"}}
	}

	if err := v.validate.Struct(mol); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

func moleculeIndexRules(sl validator.StructLevel) {
	mol := sl.Current().Interface().(model.Molecule)
	n := len(mol.Atoms)

	for i, b := range mol.Bonds {
		if b.Begin < 0 || b.Begin >= n {
			sl.ReportError(b.Begin, fmt.Sprintf("bonds[%d].begin", i), "Begin", tagAtomIndex, fmt.Sprint(n))
		}
		if b.End < 0 || b.End >= n {
			sl.ReportError(b.End, fmt.Sprintf("bonds[%d].end", i), "End", tagAtomIndex, fmt.Sprint(n))
		}
	}

	for i, c := range mol.Conformers {
		if len(c.Positions) != n {
			sl.ReportError(c.Positions, fmt.Sprintf("conformers[%d].positions", i), "Positions", tagPositionCount, fmt.Sprint(n))
		}
	}

	for i, sg := range mol.SubstanceGroups {
		for j, idx := range sg.Atoms {
			if idx >= n {
				sl.ReportError(idx, fmt.Sprintf("substance_groups[%d].atoms[%d]", i, j), "Atoms", tagAtomIndex, fmt.Sprint(n))
			}
		}
	}
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		out = append(out, ValidationError{
			Field:   fieldPath(err.Namespace()),
			Message: message(err),
		})
	}
	return out
}

// fieldPath drops the root struct name from a namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", err.Param())
		}
		return fmt.Sprintf("must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", err.Param())
	case "nefield":
		return "must differ from begin"
	case "alphanum":
		return "must be alphanumeric"
	case tagAtomIndex:
		return fmt.Sprintf("must reference an atom in [0, %s)", err.Param())
	case tagPositionCount:
		return fmt.Sprintf("must hold one position per atom (%s)", err.Param())
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
