package host

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_BeforeCursor(t *testing.T) {
	req := &Request{Line: "cd /usr/lo", Cursor: 8}
	assert.Equal(t, "cd /usr/", req.BeforeCursor())

	req.Cursor = 0
	assert.Equal(t, "", req.BeforeCursor())

	// An out-of-range cursor falls back to the whole line.
	req.Cursor = -1
	assert.Equal(t, "cd /usr/lo", req.BeforeCursor())
	req.Cursor = 100
	assert.Equal(t, "cd /usr/lo", req.BeforeCursor())
}

func TestOS_Filetype(t *testing.T) {
	h := NewOS()
	assert.Equal(t, "go", h.Filetype("main.go"))
	assert.Equal(t, "python", h.Filetype("/a/b/script.PY"))
	assert.Equal(t, "", h.Filetype("README"))
	assert.Equal(t, "", h.Filetype("archive.zip"))
}

func TestOS_CommentString(t *testing.T) {
	h := NewOS()
	assert.Equal(t, "//", h.CommentString("main.go"))
	assert.Equal(t, "#", h.CommentString("setup.py"))
	assert.Equal(t, "--", h.CommentString("init.lua"))
	assert.Equal(t, "", h.CommentString("notes.txt"))
}

func TestOS_Getenv(t *testing.T) {
	h := NewOS()
	t.Setenv("PATHVANA_TEST_VAR", "/x/y")

	v, ok := h.Getenv("PATHVANA_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "/x/y", v)

	_, ok = h.Getenv("PATHVANA_TEST_UNDEFINED")
	assert.False(t, ok)
}

func TestOS_Cwd(t *testing.T) {
	h := NewOS()
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := h.Cwd()
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}
