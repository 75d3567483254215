package progrock

import (
	"bufio"
	"bytes"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
)

var _ progrock.Writer = (*LogSink)(nil)

// LogSink is a progrock.Writer that replays vertex log lines through a Logger.
// Lines below the sink's level are dropped. Warnings and errors are reported
// as warnings; a failed pass reaches the user through the returned error.
type LogSink struct {
	mu     sync.Mutex
	logger ports.Logger
	level  domain.LogLevel
}

// NewLogSink creates a sink that forwards lines at or above level to logger.
func NewLogSink(logger ports.Logger, level domain.LogLevel) *LogSink {
	return &LogSink{
		logger: logger,
		level:  level,
	}
}

// WriteStatus forwards the log lines carried by update.
func (s *LogSink) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range update.Logs {
		sc := bufio.NewScanner(bytes.NewReader(l.Data))
		for sc.Scan() {
			s.forward(sc.Text())
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (s *LogSink) Close() error {
	return nil
}

func (s *LogSink) forward(line string) {
	if line == "" {
		return
	}

	level, msg := parseLine(line)
	if level < s.level {
		return
	}
	if level >= domain.LogLevelWarn {
		s.logger.Warn(msg)
		return
	}
	s.logger.Info(msg)
}

// parseLine splits a line written by Vertex.Log into its level and message.
// Raw output without a level prefix is informational.
func parseLine(line string) (domain.LogLevel, string) {
	rest, ok := strings.CutPrefix(line, "[")
	if !ok {
		return domain.LogLevelInfo, line
	}
	name, msg, ok := strings.Cut(rest, "] ")
	if !ok {
		return domain.LogLevelInfo, line
	}
	level, ok := domain.ParseLogLevel(name)
	if !ok {
		return domain.LogLevelInfo, line
	}
	return level, msg
}
