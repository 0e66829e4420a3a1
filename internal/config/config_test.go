package config

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("OTP_SECRET", "")

	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "courts"
user = "svc"

[booking]
timezone = "UTC"
allowed_email_domain = "example.edu"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "from-env", cfg.OTP.Secret, "otp secret falls back to jwt secret")
	assert.Equal(t, "example.edu", cfg.Booking.AllowedEmailDomain)
	assert.Equal(t, 6*time.Hour, cfg.Booking.SameDayLeadTime())
	assert.Equal(t, 60, cfg.OTP.CooldownSeconds)
	assert.Equal(t, 300, cfg.OTP.TTLSeconds)
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.Contains(t, cfg.Database.DSN(), "dbname=courts")

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("OTP_SECRET", "")

	_, err := Load(writeConfig(t, `[server]
http_port = 8080`))
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_BadTimezone(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")

	_, err := Load(writeConfig(t, `[booking]
timezone = "Mars/Olympus"`))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestParseTrustedProxies(t *testing.T) {
	nets, err := ParseTrustedProxies([]string{"10.0.0.0/8", "127.0.0.1", "::1"})
	require.NoError(t, err)
	require.Len(t, nets, 3)

	assert.True(t, nets[0].Contains(net.ParseIP("10.1.2.3")))
	assert.True(t, nets[1].Contains(net.ParseIP("127.0.0.1")))
	assert.False(t, nets[1].Contains(net.ParseIP("127.0.0.2")))
	assert.True(t, nets[2].Contains(net.ParseIP("::1")))

	_, err = ParseTrustedProxies([]string{"proxy.local"})
	assert.Error(t, err)
}

func TestLoad_InvalidTrustedProxy(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	path := writeConfig(t, `
[server]
trusted_proxies = ["10.0.0.0/33"]
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
