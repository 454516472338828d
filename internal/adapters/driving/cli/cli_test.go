package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// newBookFixture lays out a small book on disk and returns its root.
func newBookFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "book.toml"), []byte(`[book]
title = "Fixture Book"
`), 0o644))

	srcDir := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))

	files := map[string]string{
		"SUMMARY.md": "- [First](./first.md)\n    - [Deep](./deep.md)\n- [Second](./second.md)\n",
		"first.md":   "# First\n",
		"deep.md":    "# Deep\n",
		"second.md":  "# Second\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, name), []byte(content), 0o644))
	}

	return dir
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "tome version")
}

func TestTocCommand(t *testing.T) {
	dir := newBookFixture(t)

	out, err := execute(t, "toc", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Fixture Book")
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "1.1.")
	assert.Contains(t, out, "Deep")
	assert.Contains(t, out, "2.")
}

func TestTocCommand_MissingChapter(t *testing.T) {
	dir := newBookFixture(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "src", "deep.md")))

	_, err := execute(t, "toc", dir)

	assert.Error(t, err)
}

func TestBuildCommand(t *testing.T) {
	dir := newBookFixture(t)

	out, err := execute(t, "build", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "3 chapters")

	toc, err := os.ReadFile(filepath.Join(dir, "book", "TOC.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(toc), "1. First")
	assert.Contains(t, string(toc), "  1.1. Deep")
	assert.Contains(t, string(toc), "2. Second")
}

func TestInitCommand_Scaffold(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init", dir, "--title", "My Book")

	require.NoError(t, err)
	assert.Contains(t, out, "Created new book")

	summary, err := os.ReadFile(filepath.Join(dir, "src", "SUMMARY.md"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "[Chapter 1](./chapter_1.md)")

	chapter, err := os.ReadFile(filepath.Join(dir, "src", "chapter_1.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Chapter 1\n", string(chapter))

	cfg, err := os.ReadFile(filepath.Join(dir, "book.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "My Book")

	ignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(ignore), "book")
}

func TestInitCommand_DoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "SUMMARY.md"), []byte("- [Mine](./mine.md)\n"), 0o644))

	_, err := execute(t, "init", dir)

	require.NoError(t, err)
	summary, readErr := os.ReadFile(filepath.Join(srcDir, "SUMMARY.md"))
	require.NoError(t, readErr)
	assert.Equal(t, "- [Mine](./mine.md)\n", string(summary))
}

func TestInitThenBuild(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "init", dir, "--title", "Round Trip")
	require.NoError(t, err)

	out, err := execute(t, "build", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 chapters")
}
