package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dex/cmd/dex/commands"
	"go.trai.ch/dex/internal/app"
	"go.trai.ch/dex/internal/build"
)

type mockApp struct {
	buildFunc  func(ctx context.Context, opts app.BuildOptions) error
	verifyFunc func(ctx context.Context, opts app.VerifyOptions) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Verify(ctx context.Context, opts app.VerifyOptions) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"build", "--root", "/srv/maven", "-c", "site.yaml", "-j", "4",
			"--metrics-file", "/var/lib/node_exporter/dex.prom", "--json",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.BuildOptions{
			Root:        "/srv/maven",
			ConfigPath:  "site.yaml",
			Jobs:        4,
			MetricsFile: "/var/lib/node_exporter/dex.prom",
			JSON:        true,
		}, captured)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.BuildOptions{}, captured)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				panic("should not be called")
			},
		})
		cli.SetArgs([]string{"build", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Verify(t *testing.T) {
	var captured app.VerifyOptions
	mock := &mockApp{
		verifyFunc: func(_ context.Context, opts app.VerifyOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"verify", "-r", "repo", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.VerifyOptions{Root: "repo", JSON: true}, captured)
}

func TestCommands_Version(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "subcommand", args: []string{"version"}},
		{name: "flag", args: []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := commands.New(&mockApp{})
			buf := new(bytes.Buffer)
			cli.SetOutput(buf, buf)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Contains(t, buf.String(), "dex version "+build.Version)
			assert.Contains(t, buf.String(), "commit: "+build.Commit)
		})
	}
}

func TestCommands_Version_JSON(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version", "--json"})

	require.NoError(t, cli.Execute(context.Background()))

	var info map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, build.Version, info["version"])
	assert.Equal(t, build.Commit, info["commit"])
	assert.Equal(t, runtime.Version(), info["go"])
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info["platform"])
}
