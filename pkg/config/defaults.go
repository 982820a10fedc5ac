package config

import (
	"time"

	"molstd/pkg/logger"
	"molstd/pkg/standardization"
)

const (
	DefaultPort = "8080"

	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.JSON

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

var DefaultStandardizations = []string{standardization.FragmentParentName}
