package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"go-portfolio-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "", "validate", "--name", "Jane", "--email", "jane@example.com", "--message", "Hello there, friend.")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	_, err = run(t, "", "validate", "--name", "Jane", "--email", "jane@example", "--message", "Hello there, friend.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter a valid email address")

	_, err = run(t, "  hi  ", "validate", "--name", "Jane", "--email", "jane@example.com", "--message-file", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message_too_short")
}

func TestTokenCmd(t *testing.T) {
	const secret = "0123456789abcdef0123456789abcdef"
	t.Setenv("ADMIN_JWT_SECRET", secret)

	out, err := run(t, "", "token", "--subject", "me")
	require.NoError(t, err)

	claims, err := auth.ParseAdminToken(secret, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "me", claims.Subject)
}

func TestProfileCmd(t *testing.T) {
	out, err := run(t, "", "profile", "--file", filepath.Join("..", "..", "configs", "profile.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "OK: "))

	_, err = run(t, "", "profile", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
