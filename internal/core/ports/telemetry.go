package ports

import (
	"context"
	"io"

	"go.trai.ch/dex/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of a run as a set of vertices.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents a single unit of work, such as one pass over the tree.
type Vertex interface {
	// Stdout returns a writer for the vertex's output stream.
	Stdout() io.Writer

	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, successfully if err is nil.
	Complete(err error)
}
