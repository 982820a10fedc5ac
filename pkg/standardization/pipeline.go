package standardization

import (
	"context"
	"time"

	"github.com/google/uuid"

	"molstd/pkg/logger"
	"molstd/pkg/model"
)

// Pipeline applies steps in order and stops at the first rejection.
type Pipeline struct {
	steps []Standardization
	log   *logger.Logger
}

type Outcome struct {
	RunID     string          `json:"run_id"`
	Molecule  *model.Molecule `json:"molecule,omitempty"`
	Applied   []string        `json:"applied"`
	Rejection *Rejection      `json:"rejection,omitempty"`
	Elapsed   time.Duration   `json:"-"`
}

func (o *Outcome) Accepted() bool {
	return o.Rejection == nil
}

// NewPipeline with no steps behaves as no_standardization.
func NewPipeline(log *logger.Logger, steps ...Standardization) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	if len(steps) == 0 {
		steps = []Standardization{NoStandardization()}
	}
	return &Pipeline{
		steps: append([]Standardization(nil), steps...),
		log:   log,
	}
}

func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Run returns an error only when ctx ends between steps. A rejection is
// reported through the outcome.
func (p *Pipeline) Run(ctx context.Context, mol *model.Molecule) (*Outcome, error) {
	start := time.Now()
	out := &Outcome{
		RunID:   uuid.New().String(),
		Applied: make([]string, 0, len(p.steps)),
	}
	log := p.log.With("run_id", out.RunID)

	cur := mol
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			log.Warn("Standardization run interrupted",
				"step", step.Name(),
				"applied", out.Applied,
				"error", err)
			return out, err
		}

		next, err := step.Apply(cur)
		if err == nil && next == nil {
			err = ErrNoResult
		}
		if err != nil {
			rej, ok := AsRejection(err)
			if !ok {
				rej = &Rejection{
					Step:        step.Name(),
					Explanation: step.Explanation(),
					Reason:      ReasonComputation,
					Err:         err,
				}
			}
			out.Rejection = rej
			out.Elapsed = time.Since(start)
			log.Info("Molecule rejected",
				"step", rej.Step,
				"reason", rej.Reason,
				"error", rej.Message(),
				"applied", out.Applied)
			return out, nil
		}

		cur = next
		out.Applied = append(out.Applied, step.Name())
	}

	out.Molecule = cur
	out.Elapsed = time.Since(start)
	log.Debug("Molecule standardized",
		"applied", out.Applied,
		"atoms", cur.NumAtoms(),
		"duration_ms", out.Elapsed.Milliseconds())
	return out, nil
}
