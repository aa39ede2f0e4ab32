package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "DB_TYPE", "DB_DATABASE", "DB_PORT", "AUTHZ_URL", "AUTHZ_CLIENT_ID", "SEED_DEMO", "DB_CONNECTION_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "viewdb.sqlite", cfg.DBDatabase)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.False(t, cfg.SeedDemo)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadServerDatabase(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_TYPE", "MariaDB")
	t.Setenv("DB_DATABASE", "viewdb")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PORT", "")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("AUTHZ_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mariadb", cfg.DBType)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.True(t, cfg.SeedDemo)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"missing database", Config{DBType: "postgres", DBUser: "u", DBConnectionLimit: 1}, "DB_DATABASE is required"},
		{"missing user", Config{DBType: "mysql", DBDatabase: "d", DBConnectionLimit: 1}, "DB_USER is required"},
		{"unknown type", Config{DBType: "oracle", DBConnectionLimit: 1}, "unsupported DB_TYPE: oracle"},
		{"pool", Config{DBType: "sqlite", DBConnectionLimit: 0}, "DB_CONNECTION_LIMIT must be positive"},
		{"authz client", Config{DBType: "sqlite", DBConnectionLimit: 1, AuthzURL: "http://authz"}, "AUTHZ_CLIENT_ID is required when AUTHZ_URL is set"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			assert.EqualError(t, cfg.Validate(), tc.want)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("VIEWDB_TEST_INT", "nope")
	t.Setenv("VIEWDB_TEST_BOOL", "1")
	assert.Equal(t, 7, getEnvAsInt("VIEWDB_TEST_INT", 7))
	assert.True(t, getEnvAsBool("VIEWDB_TEST_BOOL", false))
	assert.Equal(t, "x", getEnv("VIEWDB_TEST_UNSET", "x"))
}
