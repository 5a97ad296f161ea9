package cli

import (
	"fmt"
	"os"

	"github.com/pathvana/pathvana/internal/config"
	"github.com/pathvana/pathvana/internal/host"
	"github.com/pathvana/pathvana/internal/logger"
	"github.com/pathvana/pathvana/internal/pattern"
	"github.com/pathvana/pathvana/internal/scanner"
	"github.com/pathvana/pathvana/internal/source"
)

// CompleteParams holds parameters for the Complete command
type CompleteParams struct {
	LogLevel   string
	Line       string
	Cursor     int
	Buffer     string
	CmdLine    bool
	ConfigPath string
}

// Complete runs one completion request against the local filesystem and
// prints the merged candidates.
func Complete(params CompleteParams) error {
	log := logger.New(params.LogLevel, os.Stderr)

	cfg, err := resolveConfig(params.ConfigPath)
	if err != nil {
		return err
	}

	cursor := params.Cursor
	if cursor < 0 || cursor > len(params.Line) {
		cursor = len(params.Line)
	}

	req := &host.Request{
		Line:    params.Line,
		Cursor:  cursor,
		Buffer:  params.Buffer,
		CmdLine: params.CmdLine,
		Config:  cfg,
	}

	src := source.New(host.NewOS(), pattern.Current, log)

	var merged []scanner.Candidate
	src.Complete(req, func(candidates []scanner.Candidate) {
		merged = candidates
	})

	fmt.Print(RenderCandidates(merged))
	return nil
}

// resolveConfig loads the given config file, or discovers one in the
// current directory, falling back to the defaults.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	if found := config.FindConfig(cwd); found != "" {
		return config.Load(found)
	}
	return config.Default(), nil
}
