// Package source implements the completion source: it fans a request out
// across all configured path mappings, merges the resulting candidates and
// delivers them through the host's single-shot callback.
package source

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pathvana/pathvana/internal/config"
	"github.com/pathvana/pathvana/internal/host"
	"github.com/pathvana/pathvana/internal/logger"
	"github.com/pathvana/pathvana/internal/pattern"
	"github.com/pathvana/pathvana/internal/perrors"
	"github.com/pathvana/pathvana/internal/preview"
	"github.com/pathvana/pathvana/internal/resolver"
	"github.com/pathvana/pathvana/internal/scanner"
	"github.com/pathvana/pathvana/internal/timing"
)

// Source is the completion source engine.
type Source struct {
	host     host.Host
	matcher  *pattern.Matcher
	resolver *resolver.Resolver
	log      *logger.Logger
}

// New creates a Source for the given host and platform.
func New(h host.Host, platform pattern.Platform, log *logger.Logger) *Source {
	m := pattern.New(platform)
	return &Source{
		host:     h,
		matcher:  m,
		resolver: resolver.New(m, h, log),
		log:      log,
	}
}

// TriggerCharacters returns the characters the host should register as
// completion triggers.
func (s *Source) TriggerCharacters() []string {
	return s.matcher.TriggerCharacters()
}

// KeywordPattern returns the pattern for a completable token.
func (s *Source) KeywordPattern() string {
	return s.matcher.KeywordPattern()
}

// delivery guards the host callback so it fires exactly once per request.
type delivery struct {
	once sync.Once
	fn   func([]scanner.Candidate)
}

func (d *delivery) deliver(candidates []scanner.Candidate) {
	d.once.Do(func() {
		if d.fn != nil {
			d.fn(candidates)
		}
	})
}

// mapping is one fan-out entry; the zero value is the implicit un-aliased
// case.
type mapping struct {
	alias  string
	target string
}

// Complete runs one completion request and invokes callback exactly once
// with the merged candidate list. Failures of individual mappings degrade
// to fewer candidates, never to an unanswered request.
func (s *Source) Complete(req *host.Request, callback func([]scanner.Candidate)) {
	d := &delivery{fn: callback}
	// Backstop: every request is answered, even on an early exit.
	defer d.deliver([]scanner.Candidate{})

	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}

	timer := timing.NewTimer()
	mappings := s.expandMappings(cfg)
	timer.Mark("mappings")

	opts := scanner.Options{
		TrailingSlash:      cfg.TrailingSlash,
		LabelTrailingSlash: cfg.LabelTrailingSlash,
		Separator:          s.matcher.Separator(),
	}

	merged := []scanner.Candidate{}
	seen := map[string]struct{}{}
	for _, m := range mappings {
		res, ok := s.resolver.Resolve(req, m.alias, m.target)
		if !ok {
			continue
		}
		includeHidden := strings.HasPrefix(res.Partial, ".")
		candidates, err := scanner.Scan(res.Dir, includeHidden, opts)
		if err != nil {
			if s.log != nil {
				s.log.Debug().Err(err).Str("dir", res.Dir).Msg("scan failed")
			}
			continue
		}
		// Two aliases can reach the same entry; report it once.
		for _, c := range candidates {
			if _, dup := seen[c.Meta.Path]; dup {
				continue
			}
			seen[c.Meta.Path] = struct{}{}
			merged = append(merged, c)
		}
	}
	timer.Mark("scan")

	if s.log != nil {
		s.log.Debug().
			Int("candidates", len(merged)).
			Str("timing", timer.Summary()).
			Msg("completion request done")
	}

	d.deliver(merged)
}

// expandMappings returns the implicit un-aliased entry plus every
// configured mapping whose expanded target is an existing directory.
// Aliases with missing targets are skipped, not failed.
func (s *Source) expandMappings(cfg *config.Config) []mapping {
	mappings := []mapping{{}}
	if len(cfg.PathMappings) == 0 {
		return mappings
	}

	cwd, _ := s.host.Cwd()
	home, _ := s.host.Home()

	aliases := make([]string, 0, len(cfg.PathMappings))
	for alias := range cfg.PathMappings {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		target, err := config.ExpandTarget(cfg.PathMappings[alias], cwd, home)
		if err != nil {
			if s.log != nil {
				s.log.Debug().Err(err).Str("alias", alias).Msg("mapping target expansion failed")
			}
			continue
		}
		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			if s.log != nil {
				mapErr := perrors.NewMappingError(alias, "target is not a directory", err)
				s.log.Debug().Err(mapErr).Str("target", target).Msg("mapping skipped")
			}
			continue
		}
		mappings = append(mappings, mapping{alias: alias, target: target})
	}
	return mappings
}

// Resolve enriches a single candidate with a preview. Only file candidates
// are previewed; preview failures leave the candidate unchanged. The
// callback is invoked exactly once.
func (s *Source) Resolve(c scanner.Candidate, callback func(scanner.Candidate)) {
	var once sync.Once
	deliver := func(out scanner.Candidate) {
		once.Do(func() {
			if callback != nil {
				callback(out)
			}
		})
	}

	if c.Kind == scanner.KindFile {
		pv, err := preview.Build(c.Meta.Path, preview.DefaultMaxLines, s.host.Filetype(c.Meta.Path))
		if err != nil {
			if s.log != nil {
				s.log.Debug().Err(err).Str("path", c.Meta.Path).Msg("preview failed")
			}
		} else {
			c.Documentation = pv
		}
	}

	deliver(c)
}
