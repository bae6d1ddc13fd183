package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/intrari-furnizori/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ServeAddress)
	assert.Equal(t, "http://localhost:8080/datasnap/rest/TServerMethods/IntrariFurnizori", cfg.Endpoint())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("INTRARI_HOST", "erp.local")
	t.Setenv("INTRARI_PORT", "211")
	t.Setenv("INTRARI_CONNECT_TIMEOUT", "1500ms")
	t.Setenv("INTRARI_LOG_LEVEL", "DEBUG")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "erp.local", cfg.Host)
	assert.Equal(t, 211, cfg.Port)
	assert.Equal(t, 1500*time.Millisecond, cfg.ConnectTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://erp.local:211/datasnap/rest/TServerMethods/IntrariFurnizori", cfg.Endpoint())
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	t.Setenv("INTRARI_HOST", "from-env")

	v := viper.New()
	v.Set(config.KeyHost, "from-flag")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Host)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intrari.env")
	require.NoError(t, os.WriteFile(path, []byte("HOST=10.0.0.5\nPORT=9090\n"), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_PrefixedEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intrari.env")
	body := "INTRARI_HOST=10.0.0.5\nINTRARI_PORT=9090\nINTRARI_CONNECT_TIMEOUT=3s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.ConnectTimeout)
}

func TestLoad_EnvFilePrefixedKeyWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intrari.env")
	require.NoError(t, os.WriteFile(path, []byte("HOST=bare.local\nINTRARI_HOST=prefixed.local\n"), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "prefixed.local", cfg.Host)
}

func TestLoad_PrefixedEnvFileLosesToEnvironmentAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intrari.env")
	require.NoError(t, os.WriteFile(path, []byte("INTRARI_HOST=file.local\nINTRARI_PORT=9090\n"), 0o600))
	t.Setenv("INTRARI_PORT", "211")

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.Set(config.KeyHost, "from-flag")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Host)
	assert.Equal(t, 211, cfg.Port)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.env"))

	_, err := config.Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]any{
		"port zero":        {config.KeyPort: 0},
		"port too large":   {config.KeyPort: 70000},
		"empty host":       {config.KeyHost: ""},
		"zero timeout":     {config.KeyConnectTimeout: "0s"},
		"negative timeout": {config.KeyConnectTimeout: "-1s"},
		"unknown level":    {config.KeyLogLevel: "verbose"},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			for k, val := range values {
				v.Set(k, val)
			}
			_, err := config.Load(v)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestLoad_BadDuration(t *testing.T) {
	v := viper.New()
	v.Set(config.KeyConnectTimeout, "soon")

	_, err := config.Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
