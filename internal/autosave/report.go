package autosave

import (
	"github.com/tavo0132/nexo-backend-api/internal/common/output"
)

// Derived status labels for the final summary
const (
	StatusSynchronized = "synchronized"
	StatusLocalOnly    = "local only"
)

// SyncStatus returns the derived status label: synchronized when the push
// succeeded, local only when it was skipped or failed.
func (s *RunSummary) SyncStatus() string {
	if s.Publish.Succeeded {
		return StatusSynchronized
	}
	return StatusLocalOnly
}

// Render prints the final run summary
func Render(s *RunSummary) {
	if s.NoOp {
		output.PrintInfo("Nothing to do - working tree is clean.")
		return
	}

	lines := []string{
		"Commit:  " + output.FormatHash(s.Commit.Hash),
		"Branch:  " + s.Branch,
		"Time:    " + s.Commit.Timestamp.Format(timestampLayout),
		"Message: " + s.Commit.Message,
		"Status:  " + s.SyncStatus(),
	}
	if s.Publish.Attempted && !s.Publish.Succeeded {
		lines = append(lines, "Push:    "+output.Sprint(output.Warning, s.Publish.Reason))
	}

	output.Box("Auto-save complete", lines...)

	if s.Publish.Succeeded {
		output.PrintSuccess("Changes committed and pushed.")
	} else if s.Publish.Attempted {
		output.PrintWarning("Changes committed locally; push failed.")
	} else {
		output.PrintInfo("Changes committed locally; push skipped.")
	}
}
