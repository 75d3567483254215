// Package index writes a listing page and a manifest into every directory of
// the repository tree.
package index

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PassName identifies the index pass in telemetry and metrics.
const PassName = "index"

// Generator walks the tree and regenerates every listing page and manifest.
type Generator struct {
	reader   ports.TreeReader
	digester ports.Digester
	writer   ports.ArtifactWriter
	metrics  ports.Metrics
}

// NewGenerator creates a new Generator.
func NewGenerator(
	reader ports.TreeReader,
	digester ports.Digester,
	writer ports.ArtifactWriter,
	metrics ports.Metrics,
) *Generator {
	return &Generator{
		reader:   reader,
		digester: digester,
		writer:   writer,
		metrics:  metrics,
	}
}

// runState holds what a single Run shares across directories.
type runState struct {
	root     string
	settings *domain.Settings
	renderer *PageRenderer
	jobs     int
	report   *domain.PassReport
	vertex   ports.Vertex
}

// Run indexes root and every non-hidden directory below it, root first, depth
// first in lexical order. Files of one directory are hashed by up to jobs
// workers; jobs below 1 means one worker per CPU. The first error ends the run.
func (g *Generator) Run(ctx context.Context, root string, settings *domain.Settings, jobs int) (*domain.PassReport, error) {
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	state := &runState{
		root:     root,
		settings: settings,
		renderer: NewPageRenderer(ThemeFromSite(settings.Site)),
		jobs:     jobs,
		report:   domain.NewPassReport(),
		vertex:   ports.VertexFromContext(ctx),
	}

	err := g.indexDir(ctx, state, root)
	return state.report, err
}

func (g *Generator) indexDir(ctx context.Context, state *runState, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var skip func(string) bool
	if dir == state.root {
		skip = state.settings.IsRootExcluded
	}
	entries, err := g.reader.ReadDir(dir, skip)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(state.root, dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFailedToResolveRelativePath.Error()), "path", dir)
	}

	listing := domain.Listing{
		Path:   filepath.ToSlash(rel),
		Parent: dir != state.root,
	}
	var descend []string
	for _, e := range entries {
		if !g.isListed(state, dir, e) {
			continue
		}
		if e.IsDir() {
			listing.Dirs = append(listing.Dirs, e.Name)
			// Symlinked directories are listed but not followed.
			if !e.Symlink {
				descend = append(descend, e.Name)
			}
			continue
		}
		listing.Files = append(listing.Files, e.Name)
	}

	manifest, err := g.buildManifest(ctx, state, dir, listing)
	if err != nil {
		return err
	}

	if err := g.writeArtifacts(state, dir, listing, manifest); err != nil {
		return err
	}

	state.report.Directories++
	state.vertex.Log(domain.LogLevelDebug,
		fmt.Sprintf("%s: %d files, %d dirs", listing.Path, len(listing.Files), len(listing.Dirs)))

	for _, name := range descend {
		if err := g.indexDir(ctx, state, filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) isListed(state *runState, dir string, e domain.Entry) bool {
	if e.IsHidden() {
		return false
	}
	if dir == state.root && state.settings.IsRootExcluded(e.Name) {
		return false
	}
	if !e.IsDir() && domain.IsGenerated(e.Name) {
		return false
	}
	return true
}

// buildManifest hashes the listed files concurrently and records the results
// in listing order.
func (g *Generator) buildManifest(
	ctx context.Context,
	state *runState,
	dir string,
	listing domain.Listing,
) (*domain.Manifest, error) {
	digests := make([]domain.Digest, len(listing.Files))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(state.jobs)
	for i, name := range listing.Files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			d, err := g.digester.SHA256File(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			digests[i] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	manifest := domain.NewManifest()
	for i, name := range listing.Files {
		manifest.Files = append(manifest.Files, domain.ManifestFile{Name: name, SHA256: digests[i].Hex})
		state.report.FilesHashed++
		state.report.BytesHashed += digests[i].Size
		g.metrics.FileHashed(digests[i].Size)
	}
	for _, name := range listing.Dirs {
		manifest.Dirs = append(manifest.Dirs, domain.ManifestDir{Name: name})
	}

	return manifest, nil
}

func (g *Generator) writeArtifacts(state *runState, dir string, listing domain.Listing, manifest *domain.Manifest) error {
	manifestData, err := RenderManifest(manifest)
	if err != nil {
		return zerr.With(err, "path", dir)
	}
	if err := g.write(state, filepath.Join(dir, domain.ManifestFileName), domain.ArtifactManifest, manifestData); err != nil {
		return err
	}

	page, err := state.renderer.Render(listing)
	if err != nil {
		return err
	}
	return g.write(state, filepath.Join(dir, domain.ListingFileName), domain.ArtifactListing, page)
}

func (g *Generator) write(state *runState, path string, kind domain.ArtifactKind, data []byte) error {
	outcome, err := g.writer.Write(path, data)
	if err != nil {
		return err
	}
	state.report.RecordWrite(kind, outcome)
	g.metrics.ArtifactWritten(kind, outcome)
	return nil
}
