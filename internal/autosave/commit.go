package autosave

import (
	"errors"
	"time"

	"github.com/tavo0132/nexo-backend-api/internal/common/git"
)

// AutoMessagePrefix leads every auto-generated commit message
const AutoMessagePrefix = "Auto-save: Update project files - "

// timestampLayout is the local-time format embedded in auto-generated
// messages and shown in the final summary
const timestampLayout = "2006-01-02 15:04:05"

// ComposeMessage returns the explicit message verbatim when set, otherwise
// an auto-generated message embedding the given local time.
func ComposeMessage(explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	return AutoMessagePrefix + now.Format(timestampLayout)
}

// CreateCommit composes the final message and creates exactly one commit,
// returning the short hash of the new HEAD.
func CreateCommit(executor git.GitExecutor, cfg RunConfig) (*CommitResult, error) {
	timestamp := cfg.now()
	message := ComposeMessage(cfg.CommitMessage, timestamp)

	if err := executor.Commit(message); err != nil {
		return nil, errors.Join(ErrCommitFailed, err)
	}

	hash, err := executor.RevParseShort()
	if err != nil {
		return nil, errors.Join(ErrCommitFailed, err)
	}

	return &CommitResult{
		Hash:      hash,
		Message:   message,
		Timestamp: timestamp,
	}, nil
}
