// Package verify checks generated sidecars and manifests against the tree.
package verify

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/dex/internal/engine/index"
	"go.trai.ch/zerr"
)

// PassName identifies the verification pass in telemetry and metrics.
const PassName = "verify"

// Missing is reported as the actual digest of a file that no longer exists.
const Missing = "missing"

// Verifier recomputes recorded digests.
type Verifier struct {
	reader   ports.TreeReader
	digester ports.Digester
	metrics  ports.Metrics
}

// NewVerifier creates a new Verifier.
func NewVerifier(reader ports.TreeReader, digester ports.Digester, metrics ports.Metrics) *Verifier {
	return &Verifier{
		reader:   reader,
		digester: digester,
		metrics:  metrics,
	}
}

// Run checks every sidecar and manifest below root. Mismatches are collected
// in the report; only I/O failures are returned as errors.
func (v *Verifier) Run(ctx context.Context, root string, settings *domain.Settings) (*domain.VerifyReport, error) {
	report := &domain.VerifyReport{}
	vertex := ports.VertexFromContext(ctx)

	for path, err := range v.reader.WalkFiles(root, settings.IsRootExcluded) {
		if err != nil {
			return report, err
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := filepath.Base(path)
		switch {
		case strings.HasSuffix(name, domain.DescriptorExtension+domain.SidecarExtension):
			if err := v.checkSidecar(root, path, report); err != nil {
				return report, err
			}
		case name == domain.ManifestFileName:
			if err := v.checkManifest(root, path, report); err != nil {
				return report, err
			}
		}
	}

	// Mismatches are reported to the user by the caller.
	for _, m := range report.Mismatches {
		vertex.Log(domain.LogLevelDebug, m.Subject+": expected "+m.Expected+", got "+m.Actual)
	}

	return report, nil
}

func (v *Verifier) checkSidecar(root, path string, report *domain.VerifyReport) error {
	data, err := v.reader.ReadFile(path)
	if err != nil {
		return err
	}
	report.SidecarsChecked++

	descriptor := strings.TrimSuffix(path, domain.SidecarExtension)
	expected := strings.TrimSpace(string(data))

	actual, err := v.digest(v.digester.SHA1File, descriptor)
	if err != nil {
		return err
	}
	if actual != expected {
		v.mismatch(report, root, path, descriptor, expected, actual)
	}
	return nil
}

func (v *Verifier) checkManifest(root, path string, report *domain.VerifyReport) error {
	data, err := v.reader.ReadFile(path)
	if err != nil {
		return err
	}
	manifest, err := index.ParseManifest(data)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	report.ManifestsChecked++

	dir := filepath.Dir(path)
	for _, f := range manifest.Files {
		subject := filepath.Join(dir, f.Name)
		actual, err := v.digest(v.digester.SHA256File, subject)
		if err != nil {
			return err
		}
		if actual != f.SHA256 {
			v.mismatch(report, root, path, subject, f.SHA256, actual)
		}
	}
	return nil
}

// digest returns the hex digest of path, or Missing when it does not exist.
func (v *Verifier) digest(hash func(string) (domain.Digest, error), path string) (string, error) {
	d, err := hash(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Missing, nil
		}
		return "", err
	}
	return d.Hex, nil
}

func (v *Verifier) mismatch(report *domain.VerifyReport, root, artifact, subject, expected, actual string) {
	report.Mismatches = append(report.Mismatches, domain.Mismatch{
		Artifact: relative(root, artifact),
		Subject:  relative(root, subject),
		Expected: expected,
		Actual:   actual,
	})
	v.metrics.MismatchFound()
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
