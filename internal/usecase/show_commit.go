package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// ShowCommitInput contains the parameters for showing commit detail.
type ShowCommitInput struct {
	FilePath string
	Revision string
}

// ShowCommitOutput contains the commit detail.
type ShowCommitOutput struct {
	Detail   *domain.CommitDetail
	Revision string // revision without boundary marker
}

// ShowCommit is the use case for looking up commit detail through the shared store.
type ShowCommit struct {
	details domain.CommitDetails
}

// NewShowCommit creates a new ShowCommit use case.
func NewShowCommit(details domain.CommitDetails) *ShowCommit {
	return &ShowCommit{details: details}
}

// Execute returns the detail of a committed revision.
func (uc *ShowCommit) Execute(ctx context.Context, in ShowCommitInput) (*ShowCommitOutput, error) {
	rev := domain.StripBoundary(domain.NormalizeRevision(in.Revision))
	detail, err := uc.details.GetDetail(ctx, in.FilePath, rev)
	if err != nil {
		return nil, fmt.Errorf("get commit %s: %w", rev, err)
	}
	return &ShowCommitOutput{Detail: detail, Revision: rev}, nil
}
