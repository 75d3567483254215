package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dex/internal/adapters/fs"
	"go.trai.ch/dex/internal/app"
	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports/mocks"
	"go.trai.ch/dex/internal/engine/index"
	"go.trai.ch/dex/internal/engine/pom"
	"go.trai.ch/dex/internal/engine/verify"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app       *app.App
	loader    *mocks.MockConfigLoader
	telemetry *mocks.MockTelemetry
	metrics   *mocks.MockMetrics
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		metrics:   mocks.NewMockMetrics(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).Return(t.Context(), vertex).AnyTimes()
	f.telemetry.EXPECT().Close().Return(nil).AnyTimes()

	f.metrics.EXPECT().ArtifactWritten(gomock.Any(), gomock.Any()).AnyTimes()
	f.metrics.EXPECT().FileHashed(gomock.Any()).AnyTimes()
	f.metrics.EXPECT().DescriptorSkipped().AnyTimes()
	f.metrics.EXPECT().MismatchFound().AnyTimes()
	f.metrics.EXPECT().PassCompleted(gomock.Any(), gomock.Any()).AnyTimes()

	walker, digester, writer := fs.NewWalker(), fs.NewDigester(), fs.NewWriter()
	f.app = app.New(
		f.loader,
		pom.NewSynthesizer(walker, digester, writer, f.metrics),
		index.NewGenerator(walker, digester, writer, f.metrics),
		verify.NewVerifier(walker, digester, f.metrics),
		f.telemetry,
		f.metrics,
		f.logger,
	)
	return f
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestApp_Build(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"org/lib/1.0/lib-1.0.jar": "jar"})

	f := newFixture(t)
	f.loader.EXPECT().Load(root, "").Return(domain.DefaultSettings(), nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)
	f.logger.EXPECT().Success(gomock.Any())

	require.NoError(t, f.app.Build(t.Context(), app.BuildOptions{Root: root, Jobs: 2}))

	leaf := filepath.Join(root, "org", "lib", "1.0")
	assert.FileExists(t, filepath.Join(leaf, "lib-1.0.pom"))
	assert.FileExists(t, filepath.Join(leaf, "lib-1.0.pom.sha1"))
	assert.FileExists(t, filepath.Join(leaf, "info.json"))
	assert.FileExists(t, filepath.Join(root, "index.html"))

	m, err := index.ParseManifest(mustRead(t, filepath.Join(leaf, "info.json")))
	require.NoError(t, err)
	var listed []string
	for _, file := range m.Files {
		listed = append(listed, file.Name)
	}
	assert.Equal(t, []string{"lib-1.0.jar", "lib-1.0.pom", "lib-1.0.pom.sha1"}, listed)
}

func TestApp_Build_WritesMetrics(t *testing.T) {
	root := t.TempDir()
	metricsFile := filepath.Join(t.TempDir(), "dex.prom")

	f := newFixture(t)
	f.loader.EXPECT().Load(root, "custom.yaml").Return(domain.DefaultSettings(), nil)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Success(gomock.Any())
	f.metrics.EXPECT().WriteTextfile(metricsFile).Return(nil)

	require.NoError(t, f.app.Build(t.Context(), app.BuildOptions{
		Root:        root,
		ConfigPath:  "custom.yaml",
		MetricsFile: metricsFile,
	}))
}

func TestApp_Build_LoadError(t *testing.T) {
	root := t.TempDir()

	f := newFixture(t)
	f.loader.EXPECT().Load(root, "").Return(nil, errors.New("bad yaml"))

	err := f.app.Build(t.Context(), app.BuildOptions{Root: root})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), "bad yaml")
	assert.NoFileExists(t, filepath.Join(root, "index.html"))
}

func TestApp_Build_RootNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	f := newFixture(t)

	err := f.app.Build(t.Context(), app.BuildOptions{Root: file})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository root is not a directory")

	err = f.app.Build(t.Context(), app.BuildOptions{Root: filepath.Join(file, "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository root is not a directory")
}

func TestApp_Verify(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"org/lib/1.0/lib-1.0.jar": "jar"})

	f := newFixture(t)
	f.loader.EXPECT().Load(root, "").Return(domain.DefaultSettings(), nil).Times(3)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Success(gomock.Any()).Times(2)

	require.NoError(t, f.app.Build(t.Context(), app.BuildOptions{Root: root}))
	require.NoError(t, f.app.Verify(t.Context(), app.VerifyOptions{Root: root}))

	jar := filepath.Join(root, "org", "lib", "1.0", "lib-1.0.jar")
	require.NoError(t, os.WriteFile(jar, []byte("changed"), 0o600))

	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	err := f.app.Verify(t.Context(), app.VerifyOptions{Root: root})
	require.ErrorIs(t, err, domain.ErrVerificationFailed)
	assert.Contains(t, err.Error(), "1 mismatches")
}

func TestApp_SetsJSONMode(t *testing.T) {
	root := t.TempDir()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(root, "").Return(nil, errors.New("stop"))

	log := &jsonRecorder{MockLogger: mocks.NewMockLogger(ctrl)}
	a := app.New(loader, nil, nil, nil, mocks.NewMockTelemetry(ctrl), mocks.NewMockMetrics(ctrl), log)

	require.Error(t, a.Verify(t.Context(), app.VerifyOptions{Root: root, JSON: true}))
	assert.True(t, log.json)
}

type jsonRecorder struct {
	*mocks.MockLogger
	json bool
}

func (l *jsonRecorder) SetJSON(enable bool) {
	l.json = enable
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
