package kafka_config

import (
	"slices"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "")
	t.Setenv(EnvKafkaInputTopic, "")

	cfg := Load()
	if !slices.Equal(cfg.Brokers, []string{DefaultKafkaBrokers}) {
		t.Errorf("expected default broker, got %v", cfg.Brokers)
	}
	if cfg.InputTopic != DefaultInputTopic {
		t.Errorf("expected input topic %s, got %s", DefaultInputTopic, cfg.InputTopic)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Brokers(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "kafka-1:9092, kafka-2:9092,")
	cfg := Load()
	if want := []string{"kafka-1:9092", "kafka-2:9092"}; !slices.Equal(cfg.Brokers, want) {
		t.Errorf("expected %v, got %v", want, cfg.Brokers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "no brokers", mutate: func(c *Config) { c.Brokers = nil }, wantErr: "At least one Kafka broker"},
		{name: "same topics", mutate: func(c *Config) { c.OutputTopic = c.InputTopic }, wantErr: "OutputTopic must differ"},
		{name: "dlq loops", mutate: func(c *Config) { c.DLQTopic = c.InputTopic }, wantErr: "DLQTopic must differ"},
		{name: "no group", mutate: func(c *Config) { c.GroupID = "" }, wantErr: "GroupID cannot be empty"},
		{name: "compression", mutate: func(c *Config) { c.ProducerCompression = "brotli" }, wantErr: "ProducerCompression"},
		{name: "acks", mutate: func(c *Config) { c.ProducerRequireAcks = 2 }, wantErr: "ProducerRequireAcks"},
		{name: "offset", mutate: func(c *Config) { c.ConsumerStartOffset = 5 }, wantErr: "ConsumerStartOffset"},
		{name: "session", mutate: func(c *Config) { c.ConsumerSessionTimeout = c.ConsumerHeartbeatInterval }, wantErr: "ConsumerSessionTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected %q in %q", tt.wantErr, err.Error())
			}
		})
	}

	cfg := Load()
	cfg.DLQTopic = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected empty DLQ topic to be allowed, got %v", err)
	}
}
