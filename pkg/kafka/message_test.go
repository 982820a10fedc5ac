package kafka

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func TestMessageBuilder(t *testing.T) {
	msg, err := NewMessage().
		WithKey("mol-1").
		WithValue(map[string]string{"name": "benzene"}).
		WithEventType("standardize.result").
		WithCorrelationID("corr-1").
		WithSource("standardizer-worker").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Key != "mol-1" {
		t.Errorf("expected key mol-1, got %s", msg.Key)
	}
	if string(msg.Value) != `{"name":"benzene"}` {
		t.Errorf("unexpected value %s", msg.Value)
	}
	if _, err := uuid.Parse(msg.GetEventID()); err != nil {
		t.Errorf("expected generated uuid event id, got %q", msg.GetEventID())
	}
	if msg.GetCorrelationID() != "corr-1" {
		t.Errorf("expected correlation id corr-1, got %s", msg.GetCorrelationID())
	}
	if msg.GetEventType() != "standardize.result" {
		t.Errorf("expected event type, got %s", msg.GetEventType())
	}
	if _, err := time.Parse(time.RFC3339, msg.Headers[HeaderTimestamp]); err != nil {
		t.Errorf("expected RFC3339 timestamp header, got %q", msg.Headers[HeaderTimestamp])
	}
}

func TestMessageBuilder_EmptyCorrelationSkipped(t *testing.T) {
	msg, _ := NewMessage().WithKey("k").WithRawValue([]byte("{}")).WithCorrelationID("").Build()
	if _, ok := msg.GetHeader(HeaderCorrelationID); ok {
		t.Errorf("expected no correlation header")
	}
}

func TestMessageBuilder_EncodingError(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(math.Inf(1)).Build()
	if err == nil {
		t.Fatalf("expected encoding error")
	}
	if ClassifyError(err) != ErrorTypePermanent {
		t.Errorf("expected encoding error to be permanent")
	}
}

func TestMessage_RetryCount(t *testing.T) {
	msg := Message{}
	if msg.GetRetryCount() != 0 {
		t.Errorf("expected 0 retries on empty message")
	}
	for i := 0; i < 12; i++ {
		msg.IncrementRetryCount()
	}
	if got := msg.GetRetryCount(); got != 12 {
		t.Errorf("expected 12 retries, got %d", got)
	}
	if msg.Headers[HeaderRetryCount] != "12" {
		t.Errorf("expected header 12, got %q", msg.Headers[HeaderRetryCount])
	}

	msg.Headers[HeaderRetryCount] = "garbage"
	if msg.GetRetryCount() != 0 {
		t.Errorf("expected malformed header to read as 0")
	}
}

func TestMessage_DecodeValue(t *testing.T) {
	var out struct {
		Steps []string `json:"steps"`
	}
	msg := Message{Value: []byte(`{"steps":["remove_hs"]}`)}
	if err := msg.DecodeValue(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Steps) != 1 || out.Steps[0] != "remove_hs" {
		t.Errorf("unexpected decode %v", out.Steps)
	}

	empty := Message{}
	if err := empty.DecodeValue(&out); err != ErrEmptyValue {
		t.Errorf("expected ErrEmptyValue, got %v", err)
	}
}

func TestKafkaMessageConversion(t *testing.T) {
	km := kafka.Message{
		Topic:     "in",
		Partition: 2,
		Offset:    41,
		Key:       []byte("mol-7"),
		Value:     []byte("{}"),
		Headers:   []kafka.Header{{Key: HeaderCorrelationID, Value: []byte("c-7")}},
	}

	msg := fromKafkaMessage(km)
	if msg.Key != "mol-7" || msg.Topic != "in" || msg.Partition != 2 || msg.Offset != 41 {
		t.Errorf("unexpected conversion %+v", msg)
	}
	if msg.GetCorrelationID() != "c-7" {
		t.Errorf("expected correlation header, got %v", msg.Headers)
	}

	back := toKafkaMessage(msg)
	if string(back.Key) != "mol-7" || len(back.Headers) != 1 {
		t.Errorf("unexpected round trip %+v", back)
	}
	if back.Topic != "" {
		t.Errorf("expected topic to be left to the writer, got %s", back.Topic)
	}
}
