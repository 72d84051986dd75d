package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenfmt/tokenfmt/pkg/tokenfmt"
)

func TestBuildSource(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.json")
	require.NoError(t, os.WriteFile(base, []byte(`{"user": {"name": "Ada", "role": "admin"}}`), 0o644))
	override := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(override, []byte("user:\n  name: Grace\n"), 0o644))

	source, err := buildSource([]string{base, override}, []string{"user.id=7"})
	require.NoError(t, err)

	got, err := tokenfmt.Format("{user.name} ({user.role}, #{user.id})", source)
	require.NoError(t, err)
	assert.Equal(t, "Grace (admin, #7)", got)
}

func TestBuildSourceErrors(t *testing.T) {
	_, err := buildSource([]string{filepath.Join(t.TempDir(), "missing.json")}, nil)
	assert.Error(t, err)

	_, err = buildSource(nil, []string{"notapair"})
	assert.Error(t, err)
}

func TestBuildOptions(t *testing.T) {
	opts, err := buildOptions(true, true, "en-US")
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	opts, err = buildOptions(false, false, "")
	require.NoError(t, err)
	assert.Empty(t, opts)

	_, err = buildOptions(false, false, "!bad tag!")
	assert.Error(t, err)
}

func TestFormatCommand(t *testing.T) {
	out := runCommand(t, "format", "Hello {user.name}!", "--set", "user.name=Ada")
	assert.Equal(t, "Hello Ada!\n", out)
}

func TestCheckCommand(t *testing.T) {
	out := runCommand(t, "check", "ok {a.b}", "--list")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "{a.b}")
}
