package contracts

import (
	"context"

	"github.com/julienschmidt/httprouter"

	"molstd/pkg/model"
	"molstd/pkg/standardization"
)

type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// Standardizer is what the HTTP and Kafka adapters need from the service.
type Standardizer interface {
	List() []StepInfo
	Get(name string) (StepInfo, error)
	Standardize(ctx context.Context, mol *model.Molecule, steps []string) (*standardization.Outcome, error)
}

type StepInfo struct {
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
}

type StandardizeRequest struct {
	Molecule *model.Molecule `json:"molecule"`
	Steps    []string        `json:"steps,omitempty"`
}

type RejectionInfo struct {
	Step        string `json:"step"`
	Explanation string `json:"explanation"`
	Reason      string `json:"reason"`
	Message     string `json:"message,omitempty"`
}

type StandardizeResult struct {
	RunID     string          `json:"run_id"`
	Accepted  bool            `json:"accepted"`
	Molecule  *model.Molecule `json:"molecule,omitempty"`
	Applied   []string        `json:"applied"`
	Rejection *RejectionInfo  `json:"rejection,omitempty"`
}

func NewStandardizeResult(out *standardization.Outcome) StandardizeResult {
	res := StandardizeResult{
		RunID:    out.RunID,
		Accepted: out.Accepted(),
		Molecule: out.Molecule,
		Applied:  out.Applied,
	}
	if rej := out.Rejection; rej != nil {
		res.Rejection = &RejectionInfo{
			Step:        rej.Step,
			Explanation: rej.Explanation,
			Reason:      string(rej.Reason),
			Message:     rej.Message(),
		}
	}
	return res
}
