// Package pom synthesizes package descriptors and their checksum sidecars.
package pom

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/zerr"
)

// PassName identifies the descriptor pass in telemetry and metrics.
const PassName = "synthesize"

// Synthesizer writes a descriptor and a sidecar next to every package file
// deep enough in the tree to carry a coordinate.
type Synthesizer struct {
	reader   ports.TreeReader
	digester ports.Digester
	writer   ports.ArtifactWriter
	metrics  ports.Metrics
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(
	reader ports.TreeReader,
	digester ports.Digester,
	writer ports.ArtifactWriter,
	metrics ports.Metrics,
) *Synthesizer {
	return &Synthesizer{
		reader:   reader,
		digester: digester,
		writer:   writer,
		metrics:  metrics,
	}
}

// Run walks root and synthesizes descriptors. Root-excluded entries are not
// entered, matching the directories the index pass lists. It stops at the first error;
// artifacts written before the error stay in place.
func (s *Synthesizer) Run(ctx context.Context, root string, settings *domain.Settings) (*domain.PassReport, error) {
	report := domain.NewPassReport()
	vertex := ports.VertexFromContext(ctx)
	done := make(map[string]struct{})

	for path, err := range s.reader.WalkFiles(root, settings.IsRootExcluded) {
		if err != nil {
			return report, err
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if !settings.IsPackageFile(filepath.Base(path)) {
			continue
		}

		dir := filepath.Dir(path)
		if _, ok := done[dir]; ok {
			continue
		}

		rel, err := filepath.Rel(root, dir)
		if err != nil {
			return report, zerr.With(zerr.Wrap(err, domain.ErrFailedToResolveRelativePath.Error()), "path", dir)
		}

		coord, ok := domain.CoordinateFromDir(rel)
		if !ok {
			report.Skipped++
			s.metrics.DescriptorSkipped()
			vertex.Log(domain.LogLevelInfo, fmt.Sprintf("skipped %s: no coordinate", filepath.ToSlash(rel)))
			continue
		}

		if err := s.synthesize(dir, coord, report); err != nil {
			return report, err
		}
		done[dir] = struct{}{}
		report.Directories++
		vertex.Log(domain.LogLevelDebug, coord.String())
	}

	return report, nil
}

func (s *Synthesizer) synthesize(dir string, coord domain.Coordinate, report *domain.PassReport) error {
	data, err := RenderDescriptor(coord)
	if err != nil {
		return err
	}

	descriptorPath := filepath.Join(dir, coord.DescriptorName())
	if err := s.write(descriptorPath, domain.ArtifactDescriptor, data, report); err != nil {
		return err
	}

	// The sidecar covers the bytes on disk, not the rendered buffer.
	digest, err := s.digester.SHA1File(descriptorPath)
	if err != nil {
		return err
	}

	return s.write(descriptorPath+domain.SidecarExtension, domain.ArtifactSidecar, RenderSidecar(digest.Hex), report)
}

func (s *Synthesizer) write(path string, kind domain.ArtifactKind, data []byte, report *domain.PassReport) error {
	outcome, err := s.writer.Write(path, data)
	if err != nil {
		return err
	}
	report.RecordWrite(kind, outcome)
	s.metrics.ArtifactWritten(kind, outcome)
	return nil
}
