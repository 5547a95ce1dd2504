package configs

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		env  ENV
		want string
	}{
		{
			name: "database url wins",
			env:  ENV{DBDriver: "mysql", DatabaseURL: "user:pw@tcp(db:3306)/catalog", DBHost: "ignored"},
			want: "user:pw@tcp(db:3306)/catalog",
		},
		{
			name: "mysql from parts",
			env:  ENV{DBDriver: "mysql", DBHost: "127.0.0.1", DBUser: "root", DBPassword: "secret", DBName: "catalog"},
			want: "root:secret@tcp(127.0.0.1:3306)/catalog?parseTime=true&charset=utf8mb4",
		},
		{
			name: "postgres from parts",
			env:  ENV{DBDriver: "postgres", DBHost: "localhost", DBPort: "6543", DBUser: "app", DBPassword: "pw", DBName: "catalog"},
			want: "host=localhost port=6543 user=app password=pw dbname=catalog sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DSN(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDSN_UnsupportedDriver(t *testing.T) {
	_, err := DSN(ENV{DBDriver: "sqlite"})
	assert.ErrorContains(t, err, `unsupported DB_DRIVER "sqlite"`)
}

func TestLoadEnv_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "APP_PORT", "WEB_PORT", "API_BASE_URL", "ALLOWED_ORIGIN", "LOG_LEVEL", "TEMPLATES_DIR", "APP_ENV"} {
		t.Setenv(key, "")
	}

	env := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "mysql", env.DBDriver)
	assert.Equal(t, ":8080", env.Port)
	assert.Equal(t, ":3000", env.WebPort)
	assert.Equal(t, "http://localhost:8080/api", env.APIBaseURL)
	assert.Equal(t, "http://localhost:3000", env.AllowedOrigin)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, "templates", env.TemplatesDir)
	assert.False(t, env.IsProduction())
}

func TestLoadEnv_FromFile(t *testing.T) {
	t.Setenv("ALLOWED_ORIGIN", "")
	os.Unsetenv("ALLOWED_ORIGIN")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ALLOWED_ORIGIN=https://shop.example\n"), 0o600))

	env := LoadEnv(path)

	assert.Equal(t, "https://shop.example", env.AllowedOrigin)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func TestNewLogger_JSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")
	logger.Debug("hidden")
	logger.Info("shown", "id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"id":7`)
}

func TestGenerateAndLoadSessionKeys(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "keys.env")

	require.NoError(t, GenerateSessionKeys(&out, path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(written))

	env := ENV{}
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		key, value, ok := strings.Cut(line, "=")
		require.True(t, ok)
		switch key {
		case "APP_AUTH_KEY":
			env.AppAuthKey = value
		case "APP_ENC_KEY":
			env.AppEncKey = value
		}
	}

	keys, err := LoadSessionKeys(env)
	require.NoError(t, err)
	assert.Len(t, keys.AuthKey, 64)
	assert.Len(t, keys.EncKey, 32)
}

func TestLoadSessionKeys_Invalid(t *testing.T) {
	validAuth := base64.URLEncoding.EncodeToString(make([]byte, 32))

	_, err := LoadSessionKeys(ENV{AppEncKey: validAuth})
	assert.ErrorContains(t, err, "APP_AUTH_KEY environment variable not set")

	_, err = LoadSessionKeys(ENV{AppAuthKey: validAuth})
	assert.ErrorContains(t, err, "APP_ENC_KEY environment variable not set")

	_, err = LoadSessionKeys(ENV{AppAuthKey: base64.URLEncoding.EncodeToString(make([]byte, 8)), AppEncKey: validAuth})
	assert.ErrorContains(t, err, "need at least 32")

	_, err = LoadSessionKeys(ENV{AppAuthKey: validAuth, AppEncKey: base64.URLEncoding.EncodeToString(make([]byte, 20))})
	assert.ErrorContains(t, err, "invalid length 20")

	_, err = LoadSessionKeys(ENV{AppAuthKey: "%%%", AppEncKey: validAuth})
	assert.ErrorContains(t, err, "failed to decode APP_AUTH_KEY")
}
