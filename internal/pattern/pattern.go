// Package pattern locates the trailing filesystem-path run in a line of text.
//
// A path run is a sequence of separator-delimited segments ending in a
// separator, optionally followed by a partial name still being typed. The
// matcher answers where the directory prefix ends and the partial name
// begins; it does not resolve the path itself.
package pattern

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// Platform selects the separator semantics used when matching paths.
type Platform int

const (
	// POSIX accepts '/' as the only separator.
	POSIX Platform = iota
	// Windows accepts both '/' and '\' and drive-letter prefixes.
	Windows
)

// Current is the platform detected once at startup.
var Current = detect(runtime.GOOS)

func detect(goos string) Platform {
	if goos == "windows" {
		return Windows
	}
	return POSIX
}

// nameClass matches a single path-name character. Reserved characters
// can never appear inside an entry name.
const nameClass = "[^/\\\\:*?<>'\"`|]"

// termClass matches the final character of a complete segment. A segment
// must not end in '@', space, '.' or '~' directly before the next separator
// (those runs are ambiguous with mail addresses, sentences and home refs);
// '..' is special-cased as a parent reference.
const termClass = "[^/\\\\:*?<>'\"`|@ .~]"

// Matcher finds the trailing path run for one platform's separator set.
type Matcher struct {
	platform Platform
	re       *regexp.Regexp
	seps     string
}

// New creates a matcher for the given platform.
func New(p Platform) *Matcher {
	sep := "/"
	sepClass := "/"
	if p == Windows {
		sep = "/\\"
		sepClass = "[/\\\\]"
	}
	expr := fmt.Sprintf(`((?:%[1]s(?:%[2]s*%[3]s|\.\.))*%[1]s)%[2]s*$`, sepClass, nameClass, termClass)
	return &Matcher{
		platform: p,
		re:       regexp.MustCompile(expr),
		seps:     sep,
	}
}

// Platform returns the platform this matcher was built for.
func (m *Matcher) Platform() Platform {
	return m.platform
}

// Separators returns the set of separator characters accepted by this
// matcher, usable with strings.IndexAny.
func (m *Matcher) Separators() string {
	return m.seps
}

// Separator returns the canonical separator character for insert text.
func (m *Matcher) Separator() string {
	if m.platform == Windows {
		return "\\"
	}
	return "/"
}

// Match finds the trailing path run in line. start is the offset of the
// run's first separator, end is the offset just past its final separator;
// line[end:] is the partial name being typed. ok is false when the line
// does not end in a path run.
func (m *Matcher) Match(line string) (start, end int, ok bool) {
	idx := m.re.FindStringSubmatchIndex(line)
	if idx == nil {
		return 0, 0, false
	}
	return idx[2], idx[3], true
}

// TriggerCharacters returns the characters that should prompt the host to
// request completion.
func (m *Matcher) TriggerCharacters() []string {
	if m.platform == Windows {
		return []string{"/", ".", "\\"}
	}
	return []string{"/", "."}
}

// KeywordPattern returns the pattern for a completable token: zero or more
// name characters.
func (m *Matcher) KeywordPattern() string {
	return nameClass + "*"
}

// IsSeparator reports whether c is a separator on this platform.
func (m *Matcher) IsSeparator(c byte) bool {
	return strings.IndexByte(m.seps, c) >= 0
}
