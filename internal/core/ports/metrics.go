package ports

import (
	"time"

	"go.trai.ch/dex/internal/core/domain"
)

// Metrics collects counters about a run.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ArtifactWritten counts one generated file.
	ArtifactWritten(kind domain.ArtifactKind, outcome domain.WriteOutcome)

	// FileHashed counts one hashed file of the given size.
	FileHashed(size int64)

	// DescriptorSkipped counts a package file too shallow to carry a coordinate.
	DescriptorSkipped()

	// PassCompleted records the duration of a pass.
	PassCompleted(pass string, elapsed time.Duration)

	// MismatchFound counts one verification mismatch.
	MismatchFound()

	// WriteTextfile writes all collected metrics to path in the text exposition format.
	WriteTextfile(path string) error
}
