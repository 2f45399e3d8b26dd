package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootMissingArgument(t *testing.T) {
	_, err := execute(t)
	assert.ErrorIs(t, err, errUsage)
}

func TestRootTooManyArguments(t *testing.T) {
	_, err := execute(t, "a", "b")
	assert.ErrorIs(t, err, errUsage)
}

func TestRootDirectoryNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := execute(t, missing, "--log-level", "error")
	require.Error(t, err)
	assert.Equal(t, "directory '"+missing+"' not found", err.Error())
}

func TestRootNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := execute(t, file, "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestRootEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(t.TempDir(), "kb.md")

	out, err := execute(t, dir, "--output", output, "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "No transcript files found in: "+dir)
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootBuildsKnowledgeBase(t *testing.T) {
	dir := t.TempDir()
	body := "Video ID: 123\nURL: http://x\n" + strings.Repeat("=", 40) + "\nprocurement procurement vendor"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte(body), 0644))
	output := filepath.Join(t.TempDir(), "kb.md")

	out, err := execute(t, dir, "--output", output, "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Analyzed 1 of 1 transcripts (0 failed)")
	assert.Contains(t, out, "Wrote "+output)

	md, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(md), "## Procurement")

	_, err = os.Stat(filepath.Join(filepath.Dir(output), "kb_index.txt"))
	assert.NoError(t, err)
}

func TestRootBadConfig(t *testing.T) {
	_, err := execute(t, t.TempDir(), "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
