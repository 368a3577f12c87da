package autosave

import (
	"errors"
	"fmt"

	"github.com/tavo0132/nexo-backend-api/internal/common/git"
)

var (
	// ErrNotARepository is returned when the working directory has no .git entry
	ErrNotARepository = errors.New("not a git repository")
	// ErrMissingProjectMarker is returned when the expected project directory is absent
	ErrMissingProjectMarker = errors.New("project marker directory not found")
	// ErrStagingFailed is returned when the add or staged-set query fails
	ErrStagingFailed = errors.New("staging failed")
	// ErrNoStagedChanges is returned when add produced an empty staging area
	// despite pending changes having been detected
	ErrNoStagedChanges = errors.New("no staged changes after add")
	// ErrCommitFailed is returned when the commit is rejected
	ErrCommitFailed = errors.New("commit failed")
)

// PreflightError reports a failed project-root validation with a
// remediation hint.
type PreflightError struct {
	Dir    string
	Reason error
	Hint   string
}

func (e *PreflightError) Error() string {
	return fmt.Sprintf("%v: %s\n\nSuggestion: %s", e.Reason, e.Dir, e.Hint)
}

func (e *PreflightError) Unwrap() error {
	return e.Reason
}

// RemediationHint maps a fatal pipeline error to a likely-cause hint for
// the final error message. Preflight errors carry their own hint.
func RemediationHint(err error) string {
	switch {
	case errors.Is(err, git.ErrStatusParse):
		return "the installed git produced unexpected status output; check 'git status --porcelain' by hand"
	case errors.Is(err, ErrNoStagedChanges):
		return "changes were detected but nothing reached the staging area; check .gitignore rules and 'git status'"
	case errors.Is(err, ErrStagingFailed):
		return "run 'git add -A' manually to see the underlying failure"
	case errors.Is(err, ErrCommitFailed):
		return "check that user.name and user.email are set in git config and that the staged changes are valid"
	default:
		return ""
	}
}
