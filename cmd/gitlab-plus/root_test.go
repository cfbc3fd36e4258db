package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aviz92/gitlab-plus/errors"
)

func TestNewApp_CommandTree(t *testing.T) {
	t.Parallel()

	a := newApp()

	var names []string
	for _, cmd := range a.root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "project")
	assert.Contains(t, names, "file")
	assert.Contains(t, names, "branch")
	assert.Contains(t, names, "tag")
	assert.Contains(t, names, "mr")
}

func TestAppInit_Defaults(t *testing.T) {
	a := newApp()

	require.NoError(t, a.init())

	assert.Equal(t, backendSDK, a.cfg.Backend)
	assert.Equal(t, "info", a.cfg.LogLevel)
	assert.Equal(t, "console", a.cfg.LogFormat)
	assert.NotNil(t, a.logger)
}

func TestAppInit_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GITLAB_BACKEND", "cli")
	t.Setenv("GITLAB_PROJECT", "acme/widgets")
	t.Setenv("GITLAB_LOG_LEVEL", "debug")

	a := newApp()
	require.NoError(t, a.init())

	assert.Equal(t, "cli", a.cfg.Backend)
	assert.Equal(t, "acme/widgets", a.cfg.Project)
	assert.Equal(t, "debug", a.cfg.LogLevel)
}

func TestAppInit_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("GITLAB_LOG_LEVEL", "debug")

	a := newApp()
	require.NoError(t, a.root.PersistentFlags().Set("log-level", "warn"))
	require.NoError(t, a.init())

	assert.Equal(t, "warn", a.cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		format    string
		wantError bool
	}{
		{
			name:   "console info",
			level:  "info",
			format: "console",
		},
		{
			name:   "json debug",
			level:  "debug",
			format: "json",
		},
		{
			name:      "unsupported level",
			level:     "verbose",
			format:    "console",
			wantError: true,
		},
		{
			name:      "unsupported format",
			level:     "info",
			format:    "logfmt",
			wantError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, err := newLogger(tt.level, tt.format)

			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestAppBuildProvider(t *testing.T) {
	t.Parallel()

	t.Run("sdk backend", func(t *testing.T) {
		t.Parallel()

		a := &app{cfg: config{Backend: backendSDK, Token: "glpat-test"}}

		provider, err := a.buildProvider()

		require.NoError(t, err)
		assert.NotNil(t, provider)
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Parallel()

		a := &app{cfg: config{Backend: "soap"}}

		provider, err := a.buildProvider()

		require.Error(t, err)
		assert.Nil(t, provider)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestAppConnect_RequiresProject(t *testing.T) {
	t.Parallel()

	a := &app{cfg: config{Backend: backendSDK}, logger: zap.NewNop()}

	client, err := a.connect(context.Background())

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
