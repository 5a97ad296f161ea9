// Package host defines the capabilities Pathvana consumes from the editor
// or shell embedding it. The engine depends on this boundary abstractly so
// integrations can supply their own environment, filetype and working
// directory lookups.
package host

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pathvana/pathvana/internal/config"
)

// Host exposes the environment of the embedding editor or shell.
type Host interface {
	// Cwd returns the process working directory.
	Cwd() (string, error)
	// Home returns the user's home directory.
	Home() (string, error)
	// Getenv looks up an environment variable. An undefined variable is
	// reported via ok=false, not an error.
	Getenv(name string) (value string, ok bool)
	// Filetype returns a content-type hint for a file path, or "" when
	// the host cannot associate one. Best effort.
	Filetype(path string) string
	// CommentString returns the line-comment leader for the language of
	// the given buffer, or "" when unknown.
	CommentString(buffer string) string
}

// Request carries one completion request from the host.
type Request struct {
	// Line is the text of the current line.
	Line string
	// Cursor is the byte offset of the cursor within Line.
	Cursor int
	// Buffer identifies the originating buffer, typically its file path.
	Buffer string
	// CmdLine is set when the request originates from a command-line
	// input mode rather than a buffer.
	CmdLine bool
	// CmdLineCwd is the shell current directory used for relative forms
	// in command-line mode.
	CmdLineCwd string
	// Config is the merged per-request configuration.
	Config *config.Config
}

// BeforeCursor returns the portion of Line preceding the cursor.
func (r *Request) BeforeCursor() string {
	if r.Cursor >= 0 && r.Cursor <= len(r.Line) {
		return r.Line[:r.Cursor]
	}
	return r.Line
}

// OS is the default Host backed by the operating system.
type OS struct{}

// NewOS creates a Host backed by the operating system.
func NewOS() *OS {
	return &OS{}
}

// Cwd returns the process working directory.
func (*OS) Cwd() (string, error) {
	return os.Getwd()
}

// Home returns the user's home directory.
func (*OS) Home() (string, error) {
	return os.UserHomeDir()
}

// Getenv looks up an environment variable.
func (*OS) Getenv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// filetypes maps file extensions to content-type hints used for preview
// code fences.
var filetypes = map[string]string{
	".c":    "c",
	".cpp":  "cpp",
	".css":  "css",
	".go":   "go",
	".h":    "c",
	".html": "html",
	".java": "java",
	".js":   "javascript",
	".json": "json",
	".lua":  "lua",
	".md":   "markdown",
	".py":   "python",
	".rb":   "ruby",
	".rs":   "rust",
	".sh":   "bash",
	".sql":  "sql",
	".toml": "toml",
	".ts":   "typescript",
	".xml":  "xml",
	".yaml": "yaml",
	".yml":  "yaml",
}

// Filetype returns a content-type hint derived from the file extension.
func (*OS) Filetype(path string) string {
	return filetypes[strings.ToLower(filepath.Ext(path))]
}

// commentLeaders maps content-type hints to their line-comment leader.
var commentLeaders = map[string]string{
	"bash":       "#",
	"c":          "//",
	"cpp":        "//",
	"go":         "//",
	"java":       "//",
	"javascript": "//",
	"lua":        "--",
	"python":     "#",
	"ruby":       "#",
	"rust":       "//",
	"sql":        "--",
	"toml":       "#",
	"typescript": "//",
	"yaml":       "#",
}

// CommentString returns the line-comment leader for the buffer's language.
func (o *OS) CommentString(buffer string) string {
	return commentLeaders[o.Filetype(buffer)]
}
