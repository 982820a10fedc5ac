package service

import (
	"context"
	"errors"

	"molstd/internal/standardizer/validator"
	"molstd/pkg/config"
	"molstd/pkg/contracts"
	apperrors "molstd/pkg/errors"
	"molstd/pkg/model"
	"molstd/pkg/sanitizer"
	"molstd/pkg/standardization"
)

type standardizerService struct {
	registry  *standardization.Registry
	validator *validator.MoleculeValidator
	cfg       *config.Config
}

func NewStandardizerService(
	registry *standardization.Registry,
	validator *validator.MoleculeValidator,
	cfg *config.Config,
) contracts.Standardizer {
	return &standardizerService{
		registry:  registry,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *standardizerService) List() []contracts.StepInfo {
	steps := s.registry.List()
	out := make([]contracts.StepInfo, len(steps))
	for i, st := range steps {
		out[i] = info(st)
	}
	return out
}

func (s *standardizerService) Get(name string) (contracts.StepInfo, error) {
	if name == "" {
		return contracts.StepInfo{}, apperrors.InvalidInput("Standardization name cannot be empty")
	}

	st, ok := s.registry.Get(name)
	if !ok {
		return contracts.StepInfo{}, apperrors.NotFoundWithID("Standardization", name)
	}
	return info(st), nil
}

// Standardize runs steps, or the configured default pipeline when steps is
// empty. A rejected molecule is a successful call with a rejected outcome.
// The request molecule is normalized in place.
func (s *standardizerService) Standardize(ctx context.Context, mol *model.Molecule, steps []string) (*standardization.Outcome, error) {
	steps = sanitizer.NormalizeSteps(steps)
	sanitizer.SanitizeMolecule(mol)

	if len(steps) == 0 {
		steps = s.cfg.Standardizations
	}

	pipeline, err := s.registry.Pipeline(s.cfg.Log, steps...)
	if err != nil {
		var unknown *standardization.UnknownStandardizationError
		if errors.As(err, &unknown) {
			s.cfg.Log.Warn("Unknown standardization requested",
				"name", unknown.Name,
				"steps", steps,
			)
			return nil, apperrors.UnknownStandardization(unknown.Name, err)
		}
		return nil, apperrors.Internal("Failed to build standardization pipeline", err)
	}

	if err := s.validator.Validate(mol); err != nil {
		s.cfg.Log.Warn("Molecule validation failed",
			"steps", steps,
			"error", err,
		)
		return nil, apperrors.Validation("Molecule validation failed", map[string]any{
			"errors": err,
		})
	}

	out, err := pipeline.Run(ctx, mol)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, apperrors.Timeout("Standardization did not finish in time")
		}
		return nil, apperrors.Internal("Standardization failed", err)
	}

	if out.Accepted() {
		s.cfg.Log.Info("Molecule standardized",
			"run_id", out.RunID,
			"name", mol.Name,
			"applied", out.Applied,
			"atoms", out.Molecule.NumAtoms(),
			"net_charge", out.Molecule.NetCharge(),
			"mass", out.Molecule.AverageMass(),
		)
	}
	return out, nil
}

func info(s standardization.Standardization) contracts.StepInfo {
	return contracts.StepInfo{
		Name:        s.Name(),
		Explanation: s.Explanation(),
	}
}
