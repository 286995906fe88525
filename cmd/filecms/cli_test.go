package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	cms "github.com/goliatone/go-filecms"
	"github.com/goliatone/go-filecms/internal/credentials"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := newCLI()
	var out bytes.Buffer
	c.root.SetOut(&out)
	c.root.SetErr(&out)
	c.root.SetIn(strings.NewReader(stdin))
	c.root.SetArgs(args)
	err := c.root.Execute()
	return out.String(), err
}

func TestHashPasswordFromArgument(t *testing.T) {
	out, err := execute(t, "", "hash-password", "--cost", "4", "secret")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
}

func TestHashPasswordFromStdinWithUsername(t *testing.T) {
	out, err := execute(t, "hunter2\n", "hash-password", "-c", "4", "-u", "admin")
	require.NoError(t, err)

	var entries map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Contains(t, entries, "admin")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(entries["admin"]), []byte("hunter2")))
}

func TestHashPasswordRejectsBlankInput(t *testing.T) {
	_, err := execute(t, "\n", "hash-password")
	assert.ErrorIs(t, err, credentials.ErrPasswordRequired)
}

func TestHashPasswordRejectsCostOutOfRange(t *testing.T) {
	_, err := execute(t, "", "hash-password", "--cost", "99", "secret")
	assert.Error(t, err)
}

func TestLoadConfigAppliesFlagOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "filecms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9000\"\n"), 0o600))

	c := newCLI()
	c.configPath = path

	cfg, err := c.loadConfig(&serveOptions{})
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, cms.ModeProduction, cfg.Mode)

	cfg, err = c.loadConfig(&serveOptions{addr: "127.0.0.1:0", mode: cms.ModeTest})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", cfg.Server.Addr)
	assert.Equal(t, cms.ModeTest, cfg.Mode)
}

func TestServeRejectsInvalidMode(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, "", "serve", "--mode", "staging", "--addr", "127.0.0.1:0")
	assert.ErrorIs(t, err, cms.ErrModeInvalid)
}
