package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/dex/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil)
	log := slog.New(h).With("pass", "index").WithGroup("dir")

	log.Info("written", "path", "com/acme")

	assert.Equal(t, "written dir.pass=index dir.path=com/acme\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, h.Enabled(t.Context(), logger.LevelSuccess))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := slog.New(logger.NewPrettyHandler(buf, nil))

	log.Info("indexing repository")
	log.Log(t.Context(), logger.LevelSuccess, "build finished")
	log.Warn("sidecar mismatch", "path", "org/lib/1.0/lib-1.0.pom.sha1", "expected", "3f2a")
	log.Error("failed to write file", "root", "/srv/repo", "path", "org/lib/1.0/lib-1.0.pom")

	g := goldie.New(t)
	g.Assert(t, "handler_levels", buf.Bytes())
}

func TestPrettyHandler_MultilineKeepsAttrsOnFirstLine(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := slog.New(logger.NewPrettyHandler(buf, nil))

	log.Error("Error: index generation failed\n\n  Caused by:\n    → permission denied", "path", "org")

	assert.Equal(t,
		"✗ Error: index generation failed (at org)\n\n  Caused by:\n    → permission denied\n",
		buf.String())
}
