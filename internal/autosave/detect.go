package autosave

import (
	"github.com/tavo0132/nexo-backend-api/internal/common/git"
)

// statusLabelMap maps git status codes to human-readable labels
var statusLabelMap = map[string]string{
	"A":  "Added",
	"M":  "Modified",
	"D":  "Deleted",
	"R":  "Renamed",
	"??": "Untracked",
	"AM": "Added",
	"MM": "Modified",
	"AD": "Added",
}

// StatusLabel returns a human-readable label for a git status code
func StatusLabel(code string) string {
	if label, ok := statusLabelMap[code]; ok {
		return label
	}
	// Handle combined status codes (e.g., "RM", "DU")
	if len(code) >= 1 {
		firstChar := string(code[0])
		if label, ok := statusLabelMap[firstChar]; ok {
			return label
		}
	}
	return "Unknown"
}

// DetectChanges queries the working-tree status. An empty result means the
// tree is clean and the pipeline short-circuits to a no-op summary.
func DetectChanges(executor git.GitExecutor) ([]git.StatusEntry, error) {
	return executor.Status()
}
