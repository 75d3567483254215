package ports

import "go.trai.ch/dex/internal/core/domain"

// ArtifactWriter writes generated artifacts to disk.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ArtifactWriter interface {
	// Write replaces the file at path with data, even if the content is identical.
	// The outcome reports how the new content relates to what was there before.
	Write(path string, data []byte) (domain.WriteOutcome, error)
}
