package config

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{EnvPort, EnvStandardizations, EnvRequestTimeout, EnvLogFormat} {
		t.Setenv(key, "")
	}

	cfg := FromEnv("standardizer")
	if cfg.Port != DefaultPort {
		t.Errorf("expected port %s, got %s", DefaultPort, cfg.Port)
	}
	if !slices.Equal(cfg.Standardizations, DefaultStandardizations) {
		t.Errorf("expected %v, got %v", DefaultStandardizations, cfg.Standardizations)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("expected %s, got %s", DefaultRequestTimeout, cfg.RequestTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvStandardizations, " has_polymer_info, super_parent ,,")
	t.Setenv(EnvRequestTimeout, "5s")
	t.Setenv(EnvMaxRequestSize, "not-a-number")

	cfg := FromEnv("standardizer")
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if want := []string{"has_polymer_info", "super_parent"}; !slices.Equal(cfg.Standardizations, want) {
		t.Errorf("expected %v, got %v", want, cfg.Standardizations)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %s", cfg.RequestTimeout)
	}
	if cfg.MaxRequestSize != DefaultMaxRequestSize {
		t.Errorf("expected fallback for unparsable size, got %d", cfg.MaxRequestSize)
	}
}

func TestFromEnv_EmptyPipeline(t *testing.T) {
	t.Setenv(EnvStandardizations, "-")
	cfg := FromEnv("standardizer")
	if len(cfg.Standardizations) != 0 {
		t.Errorf("expected empty list, got %v", cfg.Standardizations)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:             "8080",
			LogFormat:        "json",
			Standardizations: []string{"fragment_parent"},
			RequestTimeout:   time.Second,
			MaxRequestSize:   1024,
			ReadTimeout:      time.Second,
			WriteTimeout:     time.Second,
			IdleTimeout:      time.Second,
			ShutdownTimeout:  time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantErr: []string{"Port must be between 1 and 65535"},
		},
		{
			name:    "unknown step",
			mutate:  func(c *Config) { c.Standardizations = []string{"remove_hs", "normalize"} },
			wantErr: []string{`unknown step "normalize"`},
		},
		{
			name: "several errors are numbered",
			mutate: func(c *Config) {
				c.RequestTimeout = 0
				c.MaxRequestSize = -1
				c.LogFormat = "xml"
			},
			wantErr: []string{"1. LogFormat", "2. RequestTimeout", "3. MaxRequestSize"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("expected %q in %q", want, err.Error())
				}
			}
		})
	}
}
