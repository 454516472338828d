package billyfs

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Read(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "chapter_1.md", []byte("# Chapter 1\n"), 0o644))
	source := New(fs)

	content, err := source.Read("chapter_1.md")

	require.NoError(t, err)
	assert.Equal(t, "# Chapter 1\n", content)
}

func TestSource_Read_Missing(t *testing.T) {
	source := New(memfs.New())

	_, err := source.Read("missing.md")

	assert.Error(t, err)
}

func TestSource_Read_Directory(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("nested", 0o755))
	require.NoError(t, util.WriteFile(fs, "nested/a.md", []byte("a"), 0o644))
	source := New(fs)

	_, err := source.Read("nested")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestSource_Exists(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "intro.md", []byte("hi"), 0o644))
	source := New(fs)

	exists, err := source.Exists("intro.md")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = source.Exists("nope.md")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSource_Create_WithParentDirs(t *testing.T) {
	source := New(memfs.New())

	err := source.Create("deep/nested/chapter.md", "# Deep\n")

	require.NoError(t, err)
	content, err := source.Read("deep/nested/chapter.md")
	require.NoError(t, err)
	assert.Equal(t, "# Deep\n", content)
}

func TestSource_Create_NeverOverwrites(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "keep.md", []byte("original"), 0o644))
	source := New(fs)

	err := source.Create("keep.md", "replacement")

	require.Error(t, err)
	content, readErr := source.Read("keep.md")
	require.NoError(t, readErr)
	assert.Equal(t, "original", content)
}
