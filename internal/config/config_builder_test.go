package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns the smallest config that passes validation.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionSecret: "secret",
			SaltRounds:    10,
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/secrets"},
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because the work factor has no default.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidHasherConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, 10, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 4, cfg.Storage.DB.MaxIdleConns)
	assert.Equal(t, uint64(5), cfg.Storage.DB.ConnectRetries)
	assert.Equal(t, SessionBackendSQL, cfg.Storage.Sessions.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SessionSweepInterval)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{
			App:    App{SaltRounds: 12},
			Server: Server{HTTPAddress: "127.0.0.1:8080"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.App.SaltRounds)
	assert.Equal(t, "secret", cfg.App.SessionSecret)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
}

// TestBuild_Validation verifies each validation rule.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "salt rounds unset",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SaltRounds = 0 },
			wantErr: ErrInvalidHasherConfigs,
		},
		{
			name:    "salt rounds too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SaltRounds = 3 },
			wantErr: ErrInvalidHasherConfigs,
		},
		{
			name:    "salt rounds too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SaltRounds = 32 },
			wantErr: ErrInvalidHasherConfigs,
		},
		{
			name:    "negative hash concurrency",
			mutate:  func(cfg *StructuredConfig) { cfg.App.HashConcurrency = -1 },
			wantErr: ErrInvalidHasherConfigs,
		},
		{
			name:    "missing session secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative session ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionTTL = -time.Second },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown session backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Sessions.Backend = "memcached" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "redis backend without url",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Sessions.Backend = SessionBackendRedis },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative sweep interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SessionSweepInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			got, err := b.build()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SESSION_SECRET": "env-secret",
		"APP_SALT_ROUNDS":    "8",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.SessionSecret)
	assert.Equal(t, 8, b.configs[0].App.SaltRounds)
}

// TestWithEnv_SetsError_OnMalformedValue verifies that a value of the wrong
// type is reported instead of silently ignored.
func TestWithEnv_SetsError_OnMalformedValue(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_SALT_ROUNDS": "abc"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withLegacyEnv ─────────────────────────────────────────────────────────────

// TestWithLegacyEnv_IsOverriddenByPrefixedEnv verifies that prefixed
// variables take precedence over the legacy ones.
func TestWithLegacyEnv_IsOverriddenByPrefixedEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SECRET":             "legacy-secret",
		"SALT_ROUNDS":        "10",
		"PORT":               "4000",
		"PG_HOST":            "localhost",
		"PG_DB":              "secrets",
		"APP_SESSION_SECRET": "prefixed-secret",
	})

	cfg, err := newConfigBuilder().withLegacyEnv().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "prefixed-secret", cfg.App.SessionSecret)
	assert.Equal(t, 10, cfg.App.SaltRounds)
	assert.Equal(t, ":4000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/secrets?sslmode=disable", cfg.Storage.DB.DSN)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsError_OnBadFlag verifies that parse errors are kept.
func TestWithFlags_SetsError_OnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-salt-rounds", "many"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that a missing .env file is
// not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder()
	b.withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_ExportsVariables verifies that .env values reach the
// environment without overriding variables that are already set.
func TestWithDotEnv_ExportsVariables(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_SESSION_SECRET": "from-process"})
	t.Cleanup(func() { _ = os.Unsetenv("APP_SALT_ROUNDS") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"APP_SALT_ROUNDS=9\nAPP_SESSION_SECRET=from-file\n"), 0o600))

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 9, b.configs[0].App.SaltRounds)
	assert.Equal(t, "from-process", b.configs[0].App.SessionSecret)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.SessionSecret = "json-secret"
	payload.Storage.Sessions.Backend = SessionBackendMemory
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-secret", b.configs[1].App.SessionSecret)
	assert.Equal(t, SessionBackendMemory, b.configs[1].Storage.Sessions.Backend)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.SessionSecret = "first"
	last := StructuredJSONConfig{}
	last.App.SessionSecret = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.SessionSecret)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_AllSources verifies the full precedence chain:
// env < flags < JSON.
func TestGetStructuredConfig_AllSources(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.HTTPAddress = "127.0.0.1:9000"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_SESSION_SECRET":      "env-secret",
		"APP_SALT_ROUNDS":         "10",
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/secrets",
		"SERVER_ADDRESS":          "localhost:7000",
	})

	cfg, err := GetStructuredConfig([]string{
		"-salt-rounds", "11",
		"-a", "localhost:8000",
		"-c", path,
	})
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.SessionSecret)
	assert.Equal(t, 11, cfg.App.SaltRounds)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/secrets", cfg.Storage.DB.DSN)
}

// TestGetStructuredConfig_MissingSaltRounds verifies that startup fails when
// no work factor is configured anywhere.
func TestGetStructuredConfig_MissingSaltRounds(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SESSION_SECRET":      "env-secret",
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/secrets",
	})

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidHasherConfigs)
}
