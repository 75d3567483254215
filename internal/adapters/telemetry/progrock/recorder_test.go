package progrock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dex/internal/adapters/telemetry/progrock"
	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/dex/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := progrock.New(mocks.NewMockLogger(ctrl))
	assert.NotNil(t, recorder)
}

func TestRecorder_Passes(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Info("org/lib/1.0/lib-1.0.pom"),
		log.EXPECT().Info("1 descriptor written"),
		log.EXPECT().Warn("failed to read directory"),
	)

	recorder := progrock.New(log)

	ctx, synth := recorder.Record(t.Context(), "synthesize descriptors")
	require.NotNil(t, ctx)

	_, err := synth.Stdout().Write([]byte("org/lib/1.0/lib-1.0.pom\n"))
	require.NoError(t, err)
	synth.Log(domain.LogLevelInfo, "1 descriptor written")
	synth.Log(domain.LogLevelDebug, "org:lib:1.0")
	synth.Complete(nil)

	_, index := recorder.Record(ctx, "generate indexes")
	index.Log(domain.LogLevelError, "failed to read directory")
	index.Complete(errors.New("failed to read directory"))

	assert.NoError(t, recorder.Close())
}

func TestRecorder_StoresVertexInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := progrock.New(mocks.NewMockLogger(ctrl))

	ctx, vertex := recorder.Record(t.Context(), "verify")
	assert.Same(t, vertex, ports.VertexFromContext(ctx))
	vertex.Complete(nil)
}
