package ports

import (
	"context"
	"io"

	"go.trai.ch/dex/internal/core/domain"
)

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, or a vertex that discards
// everything when there is none.
func VertexFromContext(ctx context.Context) Vertex {
	if v, ok := ctx.Value(vertexKey{}).(Vertex); ok {
		return v
	}
	return discardVertex{}
}

type discardVertex struct{}

func (discardVertex) Stdout() io.Writer               { return io.Discard }
func (discardVertex) Log(_ domain.LogLevel, _ string) {}
func (discardVertex) Complete(_ error)                {}
