// Package cmd provides CLI command implementations.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobals clears package-level flag state between tests.
func resetGlobals(t *testing.T) {
	t.Helper()
	pathFlag = ""
	configFlag = ""
	authorFlag = ""
	verboseFlag = false
	timestampsFlag = true
	scaffoldConfig = nil

	// Keep the real user config out of tests
	t.Setenv("SCAFFOLD_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("SCAFFOLD_AUTHOR", "")
	t.Setenv("SCAFFOLD_BASE_PATH", "")
}

func TestNewDataProjectCmd(t *testing.T) {
	cmd := NewDataProjectCmd()

	assert.Equal(t, "create-data-project <project-name>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("path"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("author"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestDataProject_RequiresArgs(t *testing.T) {
	resetGlobals(t)

	cmd := NewDataProjectCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.Error(t, err)
	// Cobra's ExactArgs(1) returns "accepts 1 arg(s), received 0"
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestDataProject_CreatesTree(t *testing.T) {
	resetGlobals(t)
	tmpDir := t.TempDir()

	cmd := NewDataProjectCmd()
	cmd.SetArgs([]string{"demo", "--path", tmpDir})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	root := filepath.Join(tmpDir, "demo")
	for _, sub := range []string{"data", "output", "logs", "bash"} {
		assert.DirExists(t, filepath.Join(root, sub))
	}
	for _, f := range []string{"config.py", "helpers.py", ".gitignore", "LICENSE", "README.md", "run.bash"} {
		assert.FileExists(t, filepath.Join(root, f))
	}

	info, err := os.Stat(filepath.Join(root, "run.bash"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100)
}

func TestDataProject_RerunSucceeds(t *testing.T) {
	resetGlobals(t)
	tmpDir := t.TempDir()

	for i := 0; i < 2; i++ {
		cmd := NewDataProjectCmd()
		cmd.SetArgs([]string{"demo", "--path", tmpDir})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		require.NoError(t, cmd.Execute())
	}

	assert.FileExists(t, filepath.Join(tmpDir, "demo", "run.bash"))
}

func TestDataProject_AuthorFlag(t *testing.T) {
	resetGlobals(t)
	tmpDir := t.TempDir()

	cmd := NewDataProjectCmd()
	cmd.SetArgs([]string{"demo", "--path", tmpDir, "--author", "Robin"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, "demo", "LICENSE"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Robin")
}

func TestDataProject_NameCollidesWithFile(t *testing.T) {
	resetGlobals(t)
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "demo"), []byte("x"), 0o644))

	cmd := NewDataProjectCmd()
	cmd.SetArgs([]string{"demo", "--path", tmpDir})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFileSystemError, ExitCodeFromError(err))
}

func TestResolveAuthor_Precedence(t *testing.T) {
	resetGlobals(t)

	assert.Equal(t, "Jeremy", resolveAuthor())

	scaffoldConfig = nil
	authorFlag = "Robin"
	assert.Equal(t, "Robin", resolveAuthor())
}

func TestResolveBasePath_DefaultsToCwd(t *testing.T) {
	resetGlobals(t)

	got, err := resolveBasePath()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}
