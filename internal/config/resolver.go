package config

import (
	"strings"

	oerrors "github.com/create-zk-app/cza/internal/errors"
)

// Source indicates where a resolved value came from.
type Source string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag Source = "flag"
	// SourceConfig indicates the value came from the config file.
	SourceConfig Source = "config"
	// SourceVCS indicates the value came from the git identity.
	SourceVCS Source = "vcs"
	// SourceDefault indicates the value is the built-in default.
	SourceDefault Source = "default"
)

// Resolved is a resolved value together with its source.
type Resolved struct {
	Value  string
	Source Source
}

// Candidate is one entry of a precedence chain: a source label and a
// lazily-evaluated producer. An empty produced value means "absent".
type Candidate struct {
	Source Source
	Lookup func() string
}

// ResolveFirst evaluates candidates in order and returns the first
// non-empty value. Later candidates are never evaluated once a value is
// found, which keeps expensive lookups (like spawning git) lazy.
func ResolveFirst(chain []Candidate) (Resolved, bool) {
	for _, c := range chain {
		if v := c.Lookup(); v != "" {
			return Resolved{Value: v, Source: c.Source}, true
		}
	}
	return Resolved{}, false
}

// DefaultAuthor is the terminal fallback of the author chain.
const DefaultAuthor = "Developer"

// ResolveAuthor determines the author identity: flag value, configured
// default, git identity (trimmed), then the literal fallback. It always
// yields a value. The vcsLookup is only invoked when both the flag and
// the config are absent.
func ResolveAuthor(flagValue, configValue string, vcsLookup func() string) Resolved {
	resolved, ok := ResolveFirst([]Candidate{
		{Source: SourceFlag, Lookup: func() string { return flagValue }},
		{Source: SourceConfig, Lookup: func() string { return configValue }},
		{Source: SourceVCS, Lookup: func() string { return strings.TrimSpace(vcsLookup()) }},
	})
	if !ok {
		return Resolved{Value: DefaultAuthor, Source: SourceDefault}
	}
	return resolved
}

// ResolveTemplateKey determines the template key: flag value, then the
// configured default. No terminal fallback exists, so an empty chain is a
// resolution error telling the user both ways to provide one.
func ResolveTemplateKey(flagValue, configValue string) (Resolved, error) {
	resolved, ok := ResolveFirst([]Candidate{
		{Source: SourceFlag, Lookup: func() string { return flagValue }},
		{Source: SourceConfig, Lookup: func() string { return configValue }},
	})
	if !ok {
		return Resolved{}, oerrors.NewValidationError(
			"no template specified",
			"Pass one with --template <key>, or set a persistent default with 'cza config set user.default_template <key>'.",
		)
	}
	return resolved, nil
}
