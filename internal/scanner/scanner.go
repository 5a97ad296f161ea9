// Package scanner lists a resolved directory's entries and builds completion
// candidates from them.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pathvana/pathvana/internal/perrors"
	"github.com/pathvana/pathvana/internal/preview"
)

// Kind classifies a candidate's filesystem entry.
type Kind int

const (
	// KindFile is a plain file, including broken symlinks.
	KindFile Kind = iota
	// KindDirectory is a directory or a symlink to one.
	KindDirectory
)

// Metadata describes the on-disk entry behind a candidate.
type Metadata struct {
	// Path is the absolute path of the entry.
	Path string
	// Stat is the target-following status, when available.
	Stat fs.FileInfo
	// LStat is the link status, set only for broken symlinks.
	LStat fs.FileInfo
}

// Candidate is one completion candidate. Candidates are built fresh per
// request and never cached.
type Candidate struct {
	Name       string
	Label      string
	InsertText string
	// Word is the bare name, attached only when trailing-slash insertion
	// is disabled so the host can still match against the name alone.
	Word string
	Kind Kind
	Meta Metadata
	// Documentation is a lazily built preview, attached on resolve.
	Documentation *preview.Preview
}

// Options controls candidate construction.
type Options struct {
	// TrailingSlash appends the separator when a directory is inserted.
	TrailingSlash bool
	// LabelTrailingSlash shows the separator on directory labels.
	LabelTrailingSlash bool
	// Separator is the platform separator character.
	Separator string
}

// Scan lists dir and returns its candidates in enumeration order. Hidden
// entries (dot-prefixed) are excluded unless includeHidden is set. The
// returned error is a ScanError; callers treat it as zero candidates.
func Scan(dir string, includeHidden bool, opts Options) ([]Candidate, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, perrors.NewScanError(dir, "failed to open directory", err)
	}
	defer func() { _ = f.Close() }()

	// ReadDir on the handle keeps the filesystem's enumeration order;
	// ranking is the host's concern.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, perrors.NewScanError(dir, "failed to read directory", err)
	}

	if opts.Separator == "" {
		opts.Separator = string(filepath.Separator)
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(dir, name)

		info, statErr := os.Stat(full)
		if statErr != nil {
			// A stat failure on a symlink marker means the link target
			// is gone; represent the entry via its link status.
			if entry.Type()&fs.ModeSymlink == 0 {
				continue
			}
			linfo, lerr := os.Lstat(full)
			if lerr != nil {
				continue
			}
			candidates = append(candidates, newCandidate(name, full, KindFile, Metadata{
				Path:  full,
				LStat: linfo,
			}, opts))
			continue
		}

		kind := KindFile
		if info.IsDir() {
			kind = KindDirectory
		}
		candidates = append(candidates, newCandidate(name, full, kind, Metadata{
			Path: full,
			Stat: info,
		}, opts))
	}

	return candidates, nil
}

func newCandidate(name, full string, kind Kind, meta Metadata, opts Options) Candidate {
	c := Candidate{
		Name:       name,
		Label:      name,
		InsertText: name,
		Kind:       kind,
		Meta:       meta,
	}
	if kind == KindDirectory {
		if opts.LabelTrailingSlash {
			c.Label = name + opts.Separator
		}
		c.InsertText = name + opts.Separator
		if !opts.TrailingSlash {
			c.Word = name
		}
	}
	return c
}
