package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// FetchBlameInput contains the parameters for fetching blame.
type FetchBlameInput struct {
	FilePath string
}

// FetchBlameOutput contains the normalized blame. Blame is empty when no
// data is available.
type FetchBlameOutput struct {
	Blame domain.Blame
}

// FetchBlame is the use case that turns raw blame records into a
// line-index keyed Blame.
type FetchBlame struct {
	vcs    domain.VCS
	logger domain.Logger
}

// NewFetchBlame creates a new FetchBlame use case.
func NewFetchBlame(vcs domain.VCS, logger domain.Logger) *FetchBlame {
	return &FetchBlame{
		vcs:    vcs,
		logger: logger,
	}
}

// Execute fetches blame for a file.
// Processing:
//   - Query the VCS for per-line records
//   - Convert 1-based line numbers to 0-based indices
//   - Strip trailing annotation noise from revision ids
//
// Failures of the VCS are not returned: the output is simply empty.
// Only a cancelled context produces an error.
func (uc *FetchBlame) Execute(ctx context.Context, in FetchBlameInput) (*FetchBlameOutput, error) {
	records, err := uc.vcs.Blame(ctx, in.FilePath)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		uc.logger.Debug("blame", fmt.Sprintf("no blame for %s: %v", in.FilePath, err))
		return &FetchBlameOutput{Blame: domain.Blame{}}, nil
	}
	return &FetchBlameOutput{Blame: domain.NewBlame(records)}, nil
}
