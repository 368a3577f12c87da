package autosave

import (
	"errors"

	"github.com/tavo0132/nexo-backend-api/internal/common/git"
)

// StageAll stages every pending change, then re-queries the staged set to
// confirm it is non-empty. An empty set after a non-empty detection is an
// inconsistency and fails the run rather than being silently ignored.
func StageAll(executor git.GitExecutor) (*StagingResult, error) {
	if err := executor.AddAll(); err != nil {
		return nil, errors.Join(ErrStagingFailed, err)
	}

	staged, err := executor.DiffCachedNames()
	if err != nil {
		return nil, errors.Join(ErrStagingFailed, err)
	}

	if len(staged) == 0 {
		return nil, ErrNoStagedChanges
	}

	return &StagingResult{Staged: staged}, nil
}
