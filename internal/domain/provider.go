package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Template placeholders substituted by Provider.Link.
const (
	PlaceholderHost = "{host}"
	PlaceholderUser = "{user}"
	PlaceholderRepo = "{repo}"
	PlaceholderHash = "{hash}"
)

// RemoteParts are the pieces captured from a remote URL.
type RemoteParts struct {
	Host string
	User string
	Repo string
}

// Provider turns a repository remote and a revision into a permalink
// for one hosting provider.
type Provider struct {
	Name     string
	Template string
	Patterns []*regexp.Regexp
}

// NewProvider compiles the match patterns of a provider.
// Every pattern must capture host, user and repo in its first three groups.
func NewProvider(name, template string, patterns ...string) (Provider, error) {
	p := Provider{Name: name, Template: template}
	if template == "" {
		return Provider{}, fmt.Errorf("%w: %s: empty template", ErrInvalidProvider, name)
	}
	for _, expr := range patterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return Provider{}, fmt.Errorf("%w: %s: %w", ErrInvalidProvider, name, err)
		}
		if re.NumSubexp() < 3 {
			return Provider{}, fmt.Errorf("%w: %s: pattern %q needs 3 capture groups", ErrInvalidProvider, name, expr)
		}
		p.Patterns = append(p.Patterns, re)
	}
	return p, nil
}

// Match tries each pattern in order and returns the parts of the first match.
func (p Provider) Match(remote string) (RemoteParts, bool) {
	for _, re := range p.Patterns {
		m := re.FindStringSubmatch(remote)
		if m == nil {
			continue
		}
		return RemoteParts{Host: m[1], User: m[2], Repo: m[3]}, true
	}
	return RemoteParts{}, false
}

// Link renders the provider template.
func (p Provider) Link(parts RemoteParts, hash string) string {
	return strings.NewReplacer(
		PlaceholderHost, parts.Host,
		PlaceholderUser, parts.User,
		PlaceholderRepo, parts.Repo,
		PlaceholderHash, hash,
	).Replace(p.Template)
}

// ResolveLink builds a permalink for revision from the first provider whose
// pattern matches remote. Provider order is significant.
func ResolveLink(remote, revision string, providers []Provider) (string, bool) {
	hash := StripBoundary(NormalizeRevision(revision))
	if !IsCommitted(hash) {
		return "", false
	}
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return "", false
	}
	for _, p := range providers {
		if parts, ok := p.Match(remote); ok {
			return p.Link(parts, hash), true
		}
	}
	return "", false
}
