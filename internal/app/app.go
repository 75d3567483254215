// Package app implements the application layer for dex.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/dex/internal/engine/index"
	"go.trai.ch/dex/internal/engine/pom"
	"go.trai.ch/dex/internal/engine/verify"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	synthesizer  *pom.Synthesizer
	generator    *index.Generator
	verifier     *verify.Verifier
	telemetry    ports.Telemetry
	metrics      ports.Metrics
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	synthesizer *pom.Synthesizer,
	generator *index.Generator,
	verifier *verify.Verifier,
	telemetry ports.Telemetry,
	metrics ports.Metrics,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		synthesizer:  synthesizer,
		generator:    generator,
		verifier:     verifier,
		telemetry:    telemetry,
		metrics:      metrics,
		logger:       log,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Root is the repository root. Empty means the working directory.
	Root string
	// ConfigPath overrides the settings file. Empty means <root>/dex.yaml if present.
	ConfigPath string
	// Jobs bounds concurrent hashing per directory. Zero means one per CPU.
	Jobs int
	// MetricsFile, when set, receives the run metrics in text exposition format.
	MetricsFile string
	// JSON switches the logger to structured output.
	JSON bool
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	Root       string
	ConfigPath string
	JSON       bool
}

// jsonLogger is implemented by loggers that support structured output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// Build synthesizes descriptors, then regenerates every listing page and manifest.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	a.setJSON(opts.JSON)

	root, settings, err := a.prepare(opts.Root, opts.ConfigPath)
	if err != nil {
		return err
	}
	defer a.closeTelemetry()

	synthesized, err := a.pass(ctx, pom.PassName, func(ctx context.Context) (*domain.PassReport, error) {
		return a.synthesizer.Run(ctx, root, settings)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSynthesisFailed.Error()), "root", root)
	}

	indexed, err := a.pass(ctx, index.PassName, func(ctx context.Context) (*domain.PassReport, error) {
		return a.generator.Run(ctx, root, settings, opts.Jobs)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexingFailed.Error()), "root", root)
	}

	a.logger.Info(fmt.Sprintf("%d descriptors written, %d package directories skipped",
		synthesized.Count(domain.ArtifactDescriptor), synthesized.Skipped))
	a.logger.Info(fmt.Sprintf("%d directories indexed, %d files hashed (%s)",
		indexed.Directories, indexed.FilesHashed, bytefmt.ByteSize(uint64(max(indexed.BytesHashed, 0)))))

	if opts.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(opts.MetricsFile); err != nil {
			return err
		}
	}

	a.logger.Success(fmt.Sprintf("build finished, %d files changed", synthesized.Changed()+indexed.Changed()))
	return nil
}

// Verify checks that every sidecar and manifest still matches the tree.
func (a *App) Verify(ctx context.Context, opts VerifyOptions) error {
	a.setJSON(opts.JSON)

	root, settings, err := a.prepare(opts.Root, opts.ConfigPath)
	if err != nil {
		return err
	}
	defer a.closeTelemetry()

	vctx, vertex := a.telemetry.Record(ctx, verify.PassName)
	start := time.Now()
	report, err := a.verifier.Run(vctx, root, settings)
	a.metrics.PassCompleted(verify.PassName, time.Since(start))
	vertex.Complete(err)
	if err != nil {
		return zerr.With(err, "root", root)
	}

	for _, m := range report.Mismatches {
		a.logger.Warn(fmt.Sprintf("%s: %s recorded %s, found %s", m.Subject, m.Artifact, m.Expected, m.Actual))
	}

	if !report.OK() {
		return zerr.With(
			zerr.Wrap(domain.ErrVerificationFailed, fmt.Sprintf("%d mismatches", len(report.Mismatches))),
			"root", root,
		)
	}

	a.logger.Success(fmt.Sprintf("%d sidecars and %d manifests verified",
		report.SidecarsChecked, report.ManifestsChecked))
	return nil
}

func (a *App) setJSON(enable bool) {
	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(enable)
	}
}

// prepare resolves the repository root and loads its settings.
func (a *App) prepare(root, configPath string) (string, *domain.Settings, error) {
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(err, domain.ErrRootNotDirectory.Error()), "root", abs)
	}
	if !info.IsDir() {
		return "", nil, zerr.With(domain.ErrRootNotDirectory, "root", abs)
	}

	settings, err := a.configLoader.Load(abs, configPath)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to load configuration")
	}

	return abs, settings, nil
}

// pass runs fn inside a telemetry vertex and records its duration.
func (a *App) pass(
	ctx context.Context,
	name string,
	fn func(context.Context) (*domain.PassReport, error),
) (*domain.PassReport, error) {
	pctx, vertex := a.telemetry.Record(ctx, name)
	start := time.Now()
	report, err := fn(pctx)
	a.metrics.PassCompleted(name, time.Since(start))
	vertex.Complete(err)
	return report, err
}

func (a *App) closeTelemetry() {
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}
}
