package main

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the full command tree and returns captured output.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

// newCLITestApp redirects storage into a temp directory and returns a
// unique application name.
func newCLITestApp(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("test redirects storage via XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return "persist-cli-test-" + uuid.NewString()
}

func TestCLISetPathGet(t *testing.T) {
	app := newCLITestApp(t)

	runCLI(t, "set", app, "42")

	path := strings.TrimSpace(runCLI(t, "path", app))
	assert.Equal(t, "persist.json", filepath.Base(path))
	assert.FileExists(t, path)

	got := runCLI(t, "get", app)
	assert.True(t, strings.HasSuffix(got, "\t42\n"), "get output %q should end with the stored state", got)
}

func TestCLIGetMissingStateFallsBack(t *testing.T) {
	app := newCLITestApp(t)

	got := runCLI(t, "get", app)
	assert.True(t, strings.HasSuffix(got, "\tnull\n"), "get output %q should report the null state", got)

	path := strings.TrimSpace(runCLI(t, "path", app))
	assert.NoFileExists(t, path)
}

func TestCLIVersion(t *testing.T) {
	got := runCLI(t, "version")
	assert.Contains(t, got, "persist")
}

func TestEnvOverridesFillUnsetFlags(t *testing.T) {
	t.Cleanup(func() { flags = rootFlags{} })
	t.Setenv("PERSIST_QUALIFIER", "com")
	t.Setenv("PERSIST_ORGANIZATION", "mesh")

	applyEnvOverrides()

	assert.Equal(t, "com", flags.qualifier)
	assert.Equal(t, "mesh", flags.organization)
}

func TestFlagsWinOverEnv(t *testing.T) {
	pf := rootCmd.PersistentFlags()
	t.Cleanup(func() {
		flags = rootFlags{}
		pf.Lookup("qualifier").Changed = false
	})
	require.NoError(t, pf.Set("qualifier", "flag-qual"))
	t.Setenv("PERSIST_QUALIFIER", "env-qual")

	applyEnvOverrides()

	assert.Equal(t, "flag-qual", flags.qualifier)
}
