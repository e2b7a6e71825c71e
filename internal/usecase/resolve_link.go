package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// ResolveLinkInput contains the parameters for resolving a commit permalink.
type ResolveLinkInput struct {
	FilePath string
	Revision string // may carry a boundary marker
}

// ResolveLinkOutput contains the resolved permalink.
type ResolveLinkOutput struct {
	URL    string
	Remote string
}

// ResolveLink is the use case that builds a web link for a revision from the
// repository's origin remote.
type ResolveLink struct {
	vcs       domain.VCS
	providers []domain.Provider
}

// NewResolveLink creates a new ResolveLink use case.
// Providers are tried in the given order.
func NewResolveLink(vcs domain.VCS, providers []domain.Provider) *ResolveLink {
	return &ResolveLink{
		vcs:       vcs,
		providers: providers,
	}
}

// Execute resolves the permalink.
// Returns domain.ErrUncommitted for working-tree revisions and
// domain.ErrNoLink when no provider matches the remote.
func (uc *ResolveLink) Execute(ctx context.Context, in ResolveLinkInput) (*ResolveLinkOutput, error) {
	hash := domain.StripBoundary(domain.NormalizeRevision(in.Revision))
	if !domain.IsCommitted(hash) {
		return nil, domain.ErrUncommitted
	}

	remote, err := uc.vcs.ReadConfig(ctx, in.FilePath, domain.RemoteConfigKey)
	if err != nil {
		return nil, fmt.Errorf("read remote: %w", err)
	}

	link, ok := domain.ResolveLink(remote, hash, uc.providers)
	if !ok {
		return nil, fmt.Errorf("%w for remote %s", domain.ErrNoLink, remote)
	}
	return &ResolveLinkOutput{URL: link, Remote: remote}, nil
}
