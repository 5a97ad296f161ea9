package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathvana/pathvana/internal/perrors"
)

func defaultOpts() Options {
	return Options{TrailingSlash: true, LabelTrailingSlash: true, Separator: "/"}
}

func names(candidates []Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Name)
	}
	return out
}

func find(t *testing.T, candidates []Candidate, name string) Candidate {
	t.Helper()
	for _, c := range candidates {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("candidate %q not found", name)
	return Candidate{}
}

func TestScan_FilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	candidates, err := Scan(dir, false, defaultOpts())
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	f := find(t, candidates, "file.txt")
	assert.Equal(t, KindFile, f.Kind)
	assert.Equal(t, "file.txt", f.Label)
	assert.Equal(t, "file.txt", f.InsertText)
	assert.Equal(t, "", f.Word)
	assert.Equal(t, filepath.Join(dir, "file.txt"), f.Meta.Path)
	require.NotNil(t, f.Meta.Stat)

	d := find(t, candidates, "sub")
	assert.Equal(t, KindDirectory, d.Kind)
	assert.Equal(t, "sub/", d.Label)
	assert.Equal(t, "sub/", d.InsertText)
	assert.Equal(t, "", d.Word)
}

func TestScan_HiddenExcludedByDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shown"), nil, 0o644))

	candidates, err := Scan(dir, false, defaultOpts())
	require.NoError(t, err)
	assert.Equal(t, []string{"shown"}, names(candidates))

	candidates, err = Scan(dir, true, defaultOpts())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".hidden", "shown"}, names(candidates))
}

func TestScan_BrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))

	candidates, err := Scan(dir, false, defaultOpts())
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "dangling", c.Name)
	assert.Equal(t, KindFile, c.Kind)
	assert.Nil(t, c.Meta.Stat)
	require.NotNil(t, c.Meta.LStat)
}

func TestScan_SymlinkToDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	candidates, err := Scan(dir, false, defaultOpts())
	require.NoError(t, err)

	c := find(t, candidates, "link")
	assert.Equal(t, KindDirectory, c.Kind)
	assert.Equal(t, "link/", c.InsertText)
}

func TestScan_TrailingSlashDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	opts := Options{TrailingSlash: false, LabelTrailingSlash: true, Separator: "/"}
	candidates, err := Scan(dir, false, opts)
	require.NoError(t, err)

	c := find(t, candidates, "sub")
	assert.Equal(t, "sub/", c.Label)
	assert.Equal(t, "sub", c.Word)
}

func TestScan_LabelTrailingSlashDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	opts := Options{TrailingSlash: true, LabelTrailingSlash: false, Separator: "/"}
	candidates, err := Scan(dir, false, opts)
	require.NoError(t, err)

	c := find(t, candidates, "sub")
	assert.Equal(t, "sub", c.Label)
	assert.Equal(t, "sub/", c.InsertText)
}

func TestScan_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")

	candidates, err := Scan(dir, false, defaultOpts())
	require.Error(t, err)
	assert.Nil(t, candidates)

	var scanErr *perrors.ScanError
	require.True(t, errors.As(err, &scanErr))
	assert.Equal(t, dir, scanErr.Dir)
	assert.Equal(t, "SCAN_ERROR", scanErr.Code())
}

func TestScan_DefaultSeparator(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	candidates, err := Scan(dir, false, Options{TrailingSlash: true, LabelTrailingSlash: true})
	require.NoError(t, err)

	c := find(t, candidates, "sub")
	assert.Equal(t, "sub"+string(filepath.Separator), c.InsertText)
}
