package preview

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathvana/pathvana/internal/perrors"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestBuild_PlainText(t *testing.T) {
	path := writeFile(t, []byte("alpha\nbeta\ngamma\n"))

	p, err := Build(path, 0, "")
	require.NoError(t, err)
	assert.Equal(t, PlainText, p.Kind)
	assert.Equal(t, "alpha\nbeta\ngamma", p.Text)
}

func TestBuild_Markdown(t *testing.T) {
	path := writeFile(t, []byte("package main\n"))

	p, err := Build(path, 0, "go")
	require.NoError(t, err)
	assert.Equal(t, Markdown, p.Kind)
	assert.Equal(t, "```go\npackage main\n```", p.Text)
}

func TestBuild_BinaryFile(t *testing.T) {
	path := writeFile(t, []byte{'E', 'L', 'F', 0, 1, 2})

	p, err := Build(path, 0, "go")
	require.NoError(t, err)
	assert.Equal(t, PlainText, p.Kind)
	assert.Equal(t, "binary file", p.Text)
}

func TestBuild_MaxLines(t *testing.T) {
	content := "1\n2\n3\n4\n5\n"
	path := writeFile(t, []byte(content))

	p, err := Build(path, 2, "")
	require.NoError(t, err)
	assert.Equal(t, "1\n2", p.Text)
}

func TestBuild_DropsEmptyLines(t *testing.T) {
	path := writeFile(t, []byte("a\r\n\r\n\nb\rc"))

	p, err := Build(path, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc", p.Text)
}

func TestBuild_HeadLimit(t *testing.T) {
	// One long line; only the first KiB is read.
	content := strings.Repeat("x", 4096)
	path := writeFile(t, []byte(content))

	p, err := Build(path, 0, "")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 1024), p.Text)
}

func TestBuild_EmptyFile(t *testing.T) {
	path := writeFile(t, nil)

	p, err := Build(path, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "", p.Text)
}

func TestBuild_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")

	p, err := Build(path, 0, "")
	require.Error(t, err)
	assert.Nil(t, p)

	var previewErr *perrors.PreviewError
	require.True(t, errors.As(err, &previewErr))
	assert.Equal(t, path, previewErr.Path)
}
