package autosave

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateProjectRoot checks that dir is a git repository containing the
// expected project marker subdirectory. Read-only filesystem probes only.
func ValidateProjectRoot(dir, marker string) error {
	// A .git directory, or a .git file for worktrees and submodules
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return &PreflightError{
			Dir:    dir,
			Reason: ErrNotARepository,
			Hint:   "run autosave from the project root (the directory containing .git), or initialize the repository first",
		}
	}

	info, err := os.Stat(filepath.Join(dir, marker))
	if err != nil || !info.IsDir() {
		return &PreflightError{
			Dir:    dir,
			Reason: ErrMissingProjectMarker,
			Hint:   fmt.Sprintf("expected a %s/ directory here; check that you are in the right project", marker),
		}
	}

	return nil
}
