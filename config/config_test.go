package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teilomillet/apiproblem/problem"
)

func TestLoadValidConfig(t *testing.T) {
	yamlConfig := `
environment: development
include_stack_trace: true
`

	cfg, err := Load(strings.NewReader(yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.True(t, cfg.IncludeStackTrace)
	assert.True(t, cfg.ExposeTraces())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.False(t, cfg.IncludeStackTrace)
	assert.False(t, cfg.ExposeTraces())
}

func TestLoadInvalidEnvironment(t *testing.T) {
	_, err := Load(strings.NewReader("environment: qa"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("environment: [not, a, string"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	cfg, err := Load(strings.NewReader("environment: ${APP_ENV}"))
	require.NoError(t, err)
	assert.Equal(t, EnvStaging, cfg.Environment)
}

func TestLoadEnvVarDefault(t *testing.T) {
	t.Setenv("APP_ENV", "")

	cfg, err := Load(strings.NewReader("environment: ${APP_ENV:-production}"))
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Environment)
}

func TestExposeTraces(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{
			name: "production with flag off",
			cfg:  Config{Environment: EnvProduction},
			want: false,
		},
		{
			name: "production with flag on",
			cfg:  Config{Environment: EnvProduction, IncludeStackTrace: true},
			want: true,
		},
		{
			name: "development implies exposure",
			cfg:  Config{Environment: EnvDevelopment},
			want: true,
		},
		{
			name: "staging with flag off",
			cfg:  Config{Environment: EnvStaging},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ExposeTraces())
		})
	}
}

func TestApply(t *testing.T) {
	err := problem.WrapError(404, "not found", problem.NewError(0, "root"))

	dev := Config{Environment: EnvDevelopment}
	d := dev.Apply(problem.FromError(400, err))
	assert.NotEmpty(t, d.Chain(), "development policy should expose the chain")

	prod := Config{Environment: EnvProduction}
	d = prod.Apply(problem.FromError(400, err))
	assert.Empty(t, d.Chain(), "production policy should suppress the chain")

	// The client-facing payload is identical either way.
	assert.Equal(t, problem.Mapping{Status: 404, Errors: "not found"}, d.Mapping())
}
