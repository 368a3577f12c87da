package autosave

import (
	"strings"

	"github.com/tavo0132/nexo-backend-api/internal/common/git"
)

// Publish pushes the target branch to the remote. Failures are captured in
// the result and never returned as errors: the local commit already exists
// and must not be invalidated by a network, auth, or non-fast-forward
// condition.
func Publish(executor git.GitExecutor, remote, branch string, skip bool) PublishResult {
	if skip {
		return PublishResult{Attempted: false}
	}

	if err := executor.Push(remote, branch); err != nil {
		// git reports an already-synchronized remote on stderr
		errStr := err.Error()
		if strings.Contains(errStr, "Everything up-to-date") ||
			strings.Contains(errStr, "up to date") {
			return PublishResult{Attempted: true, Succeeded: true, Reason: "already up-to-date"}
		}
		return PublishResult{Attempted: true, Succeeded: false, Reason: strings.TrimSpace(errStr)}
	}

	return PublishResult{Attempted: true, Succeeded: true}
}
