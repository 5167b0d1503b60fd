package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, 2*time.Second, cfg.Checkout.CardDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Checkout.CODDelay)
	assert.Equal(t, time.Second, cfg.Checkout.LoginDelay)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "glutivia_session", cfg.Session.CookieName)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glutivia.yaml")
	yaml := "server:\n  addr: \":9090\"\nstorage:\n  backend: memory\ncheckout:\n  card_delay: 10ms\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("GLUTIVIA_GEMINI_API_KEY", "k-123")
	t.Setenv("GLUTIVIA_CHECKOUT_COD_DELAY", "0s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 10*time.Millisecond, cfg.Checkout.CardDelay)
	assert.Equal(t, time.Duration(0), cfg.Checkout.CODDelay)
	assert.Equal(t, "k-123", cfg.Gemini.APIKey)
}

func TestLoad_Rejects(t *testing.T) {
	t.Setenv("GLUTIVIA_STORAGE_BACKEND", "sqlite")
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
