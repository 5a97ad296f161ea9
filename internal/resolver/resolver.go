// Package resolver classifies the text before a matched path run and
// computes the absolute directory to complete from.
//
// Classification is an ordered cascade of strategies evaluated
// first-match-wins; the order is the tie-break for prefixes that satisfy
// several textual patterns (such as "~/../").
package resolver

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pathvana/pathvana/internal/config"
	"github.com/pathvana/pathvana/internal/host"
	"github.com/pathvana/pathvana/internal/logger"
	"github.com/pathvana/pathvana/internal/pattern"
)

// Kind identifies the resolution strategy that classified a prefix.
type Kind int

const (
	// KindParent resolves "../" against the base directory.
	KindParent Kind = iota
	// KindCurrent resolves "./" and quote-anchored runs against the base
	// directory.
	KindCurrent
	// KindHome resolves "~/" against the user's home directory.
	KindHome
	// KindEnv resolves "$NAME/", "${NAME}/" and "%NAME%/" against the
	// variable's value.
	KindEnv
	// KindDrive resolves "X:/" against a Windows drive root.
	KindDrive
	// KindRoot resolves a bare "/" against the filesystem root.
	KindRoot
)

// String returns the strategy name.
func (k Kind) String() string {
	switch k {
	case KindParent:
		return "parent"
	case KindCurrent:
		return "current"
	case KindHome:
		return "home"
	case KindEnv:
		return "env"
	case KindDrive:
		return "drive"
	case KindRoot:
		return "root"
	}
	return "unknown"
}

// Result is a successfully resolved path context.
type Result struct {
	// Dir is the canonical absolute directory to scan.
	Dir string
	// Partial is the trailing partial name being typed.
	Partial string
	// Kind is the strategy that won.
	Kind Kind
}

// Resolver resolves prefixes for one platform.
type Resolver struct {
	matcher    *pattern.Matcher
	host       host.Host
	log        *logger.Logger
	strategies []strategy
}

// resolveContext carries per-request state through the cascade.
type resolveContext struct {
	req     *host.Request
	base    string
	baseOK  bool
	aliased bool
}

// strategy is one (predicate, resolver) pair of the cascade.
type strategy struct {
	kind    Kind
	matches func(r *Resolver, rc *resolveContext, prefix string) bool
	base    func(r *Resolver, rc *resolveContext, prefix string) (string, bool)
}

// New creates a resolver using the given matcher and host.
func New(m *pattern.Matcher, h host.Host, log *logger.Logger) *Resolver {
	r := &Resolver{matcher: m, host: h, log: log}
	windows := m.Platform() == pattern.Windows

	r.strategies = []strategy{
		{
			kind: KindParent,
			matches: func(_ *Resolver, _ *resolveContext, prefix string) bool {
				return strings.HasSuffix(prefix, "../") || (windows && strings.HasSuffix(prefix, "..\\"))
			},
			base: func(_ *Resolver, rc *resolveContext, _ string) (string, bool) {
				if !rc.baseOK {
					return "", false
				}
				return joinPath(rc.base, ".."), true
			},
		},
		{
			kind: KindCurrent,
			matches: func(_ *Resolver, _ *resolveContext, prefix string) bool {
				if strings.HasSuffix(prefix, "./") || (windows && strings.HasSuffix(prefix, ".\\")) {
					return true
				}
				return quoteBeforeSeparator(prefix)
			},
			base: func(_ *Resolver, rc *resolveContext, _ string) (string, bool) {
				// An alias-substituted run already carries its absolute
				// target, so the separator that opened the run is the
				// target's own leading separator.
				if rc.aliased {
					return "/", true
				}
				if !rc.baseOK {
					return "", false
				}
				return rc.base, true
			},
		},
		{
			kind: KindHome,
			matches: func(_ *Resolver, _ *resolveContext, prefix string) bool {
				return strings.HasSuffix(prefix, "~/") || (windows && strings.HasSuffix(prefix, "~\\"))
			},
			base: func(r *Resolver, _ *resolveContext, _ string) (string, bool) {
				home, err := r.host.Home()
				if err != nil {
					return "", false
				}
				return home, true
			},
		},
		{
			kind: KindEnv,
			matches: func(r *Resolver, rc *resolveContext, prefix string) bool {
				if rc.req.CmdLine {
					return false
				}
				name := envName(prefix, windows)
				if name == "" {
					return false
				}
				_, ok := r.host.Getenv(name)
				return ok
			},
			base: func(r *Resolver, _ *resolveContext, prefix string) (string, bool) {
				value, ok := r.host.Getenv(envName(prefix, windows))
				if !ok {
					return "", false
				}
				// An empty variable expands to the root, as in the shell.
				if value == "" {
					value = "/"
				}
				return value, true
			},
		},
		{
			kind: KindDrive,
			matches: func(_ *Resolver, rc *resolveContext, prefix string) bool {
				return windows && !rc.req.CmdLine && driveRe.MatchString(prefix)
			},
			base: func(_ *Resolver, _ *resolveContext, prefix string) (string, bool) {
				m := driveRe.FindStringSubmatch(prefix)
				return m[1] + ":/", true
			},
		},
		{
			kind: KindRoot,
			matches: func(r *Resolver, rc *resolveContext, prefix string) bool {
				return r.acceptRoot(rc, prefix)
			},
			base: func(_ *Resolver, _ *resolveContext, _ string) (string, bool) {
				return "/", true
			},
		},
	}

	return r
}

var (
	envDollarRe  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)[/\\]$`)
	envBracedRe  = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}[/\\]$`)
	envPercentRe = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%[/\\]$`)
	driveRe      = regexp.MustCompile(`([A-Za-z]):[/\\]$`)
	schemeRe     = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.\-]*://?$`)
	divisionRe   = regexp.MustCompile(`[0-9)][ \t]*[/\\]$`)
)

// Resolve classifies the request's line and returns the directory to
// complete from, or ok=false when the text is not a path context. A
// non-empty alias substitutes its target into the line before matching;
// a line that does not reference the alias resolves like the un-aliased
// case and is collapsed by the caller's dedup.
func (r *Resolver) Resolve(req *host.Request, alias, target string) (*Result, bool) {
	line := req.BeforeCursor()
	aliased := false
	if alias != "" {
		substituted := substituteAlias(line, alias, target)
		aliased = substituted != line
		line = substituted
	}

	start, end, ok := r.matcher.Match(line)
	if !ok {
		return nil, false
	}

	prefix := line[:start+1]
	dirname := strings.TrimRight(line[start+1:end], r.matcher.Separators())
	partial := line[end:]

	rc := &resolveContext{req: req, aliased: aliased}
	rc.base, rc.baseOK = r.baseDir(req)

	for _, st := range r.strategies {
		if !st.matches(r, rc, prefix) {
			continue
		}
		base, ok := st.base(r, rc, prefix)
		if !ok {
			return nil, false
		}
		dir := r.canonical(joinPath(base, dirname))
		if r.log != nil {
			r.log.Debug().
				Str("strategy", st.kind.String()).
				Str("dir", dir).
				Str("partial", partial).
				Msg("resolved path context")
		}
		return &Result{Dir: dir, Partial: partial, Kind: st.kind}, true
	}

	return nil, false
}

// baseDir computes the directory relative prefixes resolve against:
// the shell current directory in command-line mode, the configured
// provider otherwise.
func (r *Resolver) baseDir(req *host.Request) (string, bool) {
	if req.CmdLine {
		if req.CmdLineCwd != "" {
			return req.CmdLineCwd, true
		}
		cwd, err := r.host.Cwd()
		return cwd, err == nil
	}

	provider := config.BufferRelativeCwd
	if req.Config != nil && req.Config.Cwd != nil {
		provider = req.Config.Cwd
	}
	if dir, err := provider(req.Buffer); err == nil {
		return dir, true
	}
	cwd, err := r.host.Cwd()
	return cwd, err == nil
}

// acceptRoot applies the bare-root false-positive heuristics. They are
// best effort: URL, HTML, arithmetic and comment shapes that merely look
// like an absolute path are rejected.
func (r *Resolver) acceptRoot(rc *resolveContext, prefix string) bool {
	// "a/" is a relative name, not the root.
	if len(prefix) >= 2 && isLetter(prefix[len(prefix)-2]) {
		return false
	}
	// "scheme:/" and "scheme://"
	if schemeRe.MatchString(prefix) {
		return false
	}
	// "</" closes an HTML tag.
	if strings.HasSuffix(prefix, "</") {
		return false
	}
	// "8/" and ")/" are division, not paths.
	if divisionRe.MatchString(prefix) {
		return false
	}
	// A lone "/" at the start of a line in a slash-commented language is
	// an unfinished comment.
	if strings.Trim(prefix, " \t/\\") == "" {
		if cs := r.host.CommentString(rc.req.Buffer); strings.Contains(cs, "/") {
			return false
		}
	}
	return true
}

// canonical normalizes a joined path: "." and ".." segments collapse and
// symlink components resolve when the path exists. The result is always
// absolute; a relative base (a relative buffer path, for example) must not
// leak into candidate metadata or defeat the cross-mapping dedup.
func (r *Resolver) canonical(p string) string {
	if r.matcher.Platform() == pattern.Windows {
		p = strings.ReplaceAll(p, "\\", "/")
	}
	p = path.Clean(p)
	if r.matcher.Platform() == pattern.Windows && driveOnlyRe.MatchString(p) {
		p += "/"
	}
	if !strings.HasPrefix(p, "/") && !driveAbsRe.MatchString(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = filepath.ToSlash(abs)
		}
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p
}

var (
	driveOnlyRe = regexp.MustCompile(`^[A-Za-z]:$`)
	driveAbsRe  = regexp.MustCompile(`^[A-Za-z]:/`)
)

func joinPath(base, dirname string) string {
	if dirname == "" {
		return base
	}
	return strings.TrimRight(base, "/\\") + "/" + dirname
}

func substituteAlias(line, alias, target string) string {
	line = strings.ReplaceAll(line, "'"+alias, "'"+target)
	line = strings.ReplaceAll(line, `"`+alias, `"`+target)
	return line
}

func quoteBeforeSeparator(prefix string) bool {
	if len(prefix) < 2 {
		return false
	}
	c := prefix[len(prefix)-2]
	return c == '\'' || c == '"'
}

func envName(prefix string, windows bool) string {
	if m := envDollarRe.FindStringSubmatch(prefix); m != nil {
		return m[1]
	}
	if m := envBracedRe.FindStringSubmatch(prefix); m != nil {
		return m[1]
	}
	if windows {
		if m := envPercentRe.FindStringSubmatch(prefix); m != nil {
			return m[1]
		}
	}
	return ""
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
