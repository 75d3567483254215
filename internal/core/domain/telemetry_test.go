package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dex/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(99), "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, l := range []domain.LogLevel{domain.LogLevelDebug, domain.LogLevelInfo, domain.LogLevelWarn, domain.LogLevelError} {
		parsed, ok := domain.ParseLogLevel(l.String())
		assert.True(t, ok)
		assert.Equal(t, l, parsed)
	}

	parsed, ok := domain.ParseLogLevel("TRACE")
	assert.False(t, ok)
	assert.Equal(t, domain.LogLevelInfo, parsed)
}
