// Package worker adapts the standardizer service to Kafka: one request
// message in, one outcome message out.
package worker

import (
	"context"

	"molstd/pkg/contracts"
	apperrors "molstd/pkg/errors"
	"molstd/pkg/kafka"
	"molstd/pkg/logger"
)

const (
	EventStandardizeRequested = "molecule.standardize.requested"
	EventStandardized         = "molecule.standardized"
	EventRejected             = "molecule.rejected"

	SchemaVersion = "1"
)

type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type StandardizeHandler struct {
	service   contracts.Standardizer
	publisher Publisher
	source    string
	log       *logger.Logger
}

func NewStandardizeHandler(service contracts.Standardizer, publisher Publisher, source string, log *logger.Logger) *StandardizeHandler {
	return &StandardizeHandler{
		service:   service,
		publisher: publisher,
		source:    source,
		log:       log,
	}
}

// Handle is a kafka.MessageHandler. Rejected molecules are published like
// accepted ones; only requests that can never succeed fail permanently.
// Messages carrying another event type are skipped.
func (h *StandardizeHandler) Handle(ctx context.Context, msg kafka.Message) error {
	if et := msg.GetEventType(); et != "" && et != EventStandardizeRequested {
		return kafka.NewBusinessError("unexpected event type "+et, nil)
	}

	var req contracts.StandardizeRequest
	if err := msg.DecodeValue(&req); err != nil {
		return kafka.NewPermanentError("decode standardize request", err).
			WithDetail("key", msg.Key)
	}

	out, err := h.service.Standardize(ctx, req.Molecule, req.Steps)
	if err != nil {
		return classify(err).WithDetail("key", msg.Key)
	}

	result := contracts.NewStandardizeResult(out)
	eventType := EventStandardized
	if !result.Accepted {
		eventType = EventRejected
	}

	key := msg.Key
	if key == "" {
		key = result.RunID
	}

	reply, err := kafka.NewMessage().
		WithKey(key).
		WithValue(result).
		WithEventType(eventType).
		WithCorrelationID(msg.GetCorrelationID()).
		WithSchemaVersion(SchemaVersion).
		WithSource(h.source).
		Build()
	if err != nil {
		return kafka.NewPermanentError("encode standardize result", err)
	}

	if err := h.publisher.Publish(ctx, reply); err != nil {
		return err
	}

	h.log.Debug("Standardize outcome published",
		"key", key,
		"run_id", result.RunID,
		"event_type", eventType,
		"applied", result.Applied,
	)
	return nil
}

func classify(err error) *kafka.KafkaError {
	appErr := apperrors.AsAppError(err)
	if appErr == nil {
		return kafka.NewPermanentError("standardize", err)
	}

	if appErr.Code == apperrors.CodeTimeout {
		return kafka.NewTransientError(appErr.Message, err)
	}
	return kafka.NewPermanentError(appErr.Message, err).WithDetail("code", appErr.Code)
}
