package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/core/config"
)

type exportConfig struct {
	OutputDir string `env:"SITEKIT_TEST_OUTPUT_DIR" envDefault:"build"`
	DistDir   string `env:"SITEKIT_TEST_DIST_DIR" envDefault:"dist"`
}

type serverConfig struct {
	Addr    string        `env:"SITEKIT_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"SITEKIT_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Bucket string `env:"SITEKIT_TEST_REQUIRED_BUCKET,required"`
}

func TestLoad_DefaultsAndCaching(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("SITEKIT_TEST_DIST_DIR", "public")

	var first exportConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "build", first.OutputDir)
	assert.Equal(t, "public", first.DistDir)

	t.Setenv("SITEKIT_TEST_DIST_DIR", "changed")

	var second exportConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second, "value is cached per type")

	config.Reset()
	var third exportConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "changed", third.DistDir)
}

func TestLoad_TypesCachedIndependently(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("SITEKIT_TEST_TIMEOUT", "250ms")

	var srv serverConfig
	require.NoError(t, config.Load(&srv))
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 250*time.Millisecond, srv.Timeout)

	var exp exportConfig
	require.NoError(t, config.Load(&exp))
	assert.Equal(t, "build", exp.OutputDir)
}

func TestLoad_Errors(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredConfig
	assert.Error(t, config.Load(&cfg))
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	assert.ErrorIs(t, config.Load[exportConfig](nil), config.ErrNilConfig)
}
