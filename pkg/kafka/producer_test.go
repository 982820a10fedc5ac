package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "out")

	var seenTopic string
	p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
		seenTopic = msg.Topic
		return next(ctx, msg)
	})

	msg, _ := NewMessage().WithKey("mol-1").WithRawValue([]byte(`{"accepted":true}`)).Build()
	if err := p.Publish(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenTopic != "out" {
		t.Errorf("expected middleware to see topic out, got %q", seenTopic)
	}
	written := w.messages()
	if len(written) != 1 || string(written[0].Key) != "mol-1" {
		t.Fatalf("unexpected written messages %v", written)
	}
	if header(written[0], HeaderEventID) == "" {
		t.Errorf("expected event id header to be written")
	}
}

func TestProducer_Validation(t *testing.T) {
	p := newProducer(&fakeWriter{}, "out")

	if err := p.Publish(context.Background(), Message{Value: []byte("{}")}); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey, got %v", err)
	}
	if err := p.Publish(context.Background(), Message{Key: "k"}); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("expected ErrEmptyValue, got %v", err)
	}

	_ = p.Close()
	if err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("{}")}); !errors.Is(err, ErrProducerClosed) {
		t.Errorf("expected ErrProducerClosed, got %v", err)
	}
}

func TestProducer_WriteFailureIsTransient(t *testing.T) {
	p := newProducer(&fakeWriter{writeErr: errors.New("broker down")}, "out")
	err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("{}")})
	if ClassifyError(err) != ErrorTypeTransient {
		t.Errorf("expected transient error, got %v", err)
	}
}

func TestWriterSettings(t *testing.T) {
	if compression("gzip") != compress.Gzip || compression("none") != compress.None || compression("") != compress.Snappy {
		t.Errorf("unexpected compression mapping")
	}
	if requiredAcks(0) != kafka.RequireNone || requiredAcks(1) != kafka.RequireOne || requiredAcks(-1) != kafka.RequireAll {
		t.Errorf("unexpected acks mapping")
	}
}
