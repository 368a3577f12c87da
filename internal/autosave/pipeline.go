package autosave

import (
	"github.com/tavo0132/nexo-backend-api/internal/common/git"
	"github.com/tavo0132/nexo-backend-api/internal/common/logger"
	"github.com/tavo0132/nexo-backend-api/internal/common/output"
)

// Run executes the capture pipeline against the given git executor:
// validate the project root, detect pending changes, stage them, commit,
// and publish. Any failure through the commit stage aborts the run; a
// publish failure is recorded in the summary instead.
func Run(cfg RunConfig, executor git.GitExecutor) (*RunSummary, error) {
	if err := ValidateProjectRoot(executor.WorkDir(), cfg.Marker); err != nil {
		return nil, err
	}

	entries, err := DetectChanges(executor)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		logger.Debug("working tree clean, nothing to capture")
		return &RunSummary{NoOp: true, Branch: cfg.Branch}, nil
	}

	if cfg.Verbose {
		logger.Debug("detected %d pending changes:", len(entries))
		for _, entry := range entries {
			logger.Debug("  %s %s", output.FormatStatus(StatusLabel(entry.Status)), entry.FilePath)
		}
	}

	staging, err := StageAll(executor)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		logger.Debug("staged %d files:", len(staging.Staged))
		for _, path := range staging.Staged {
			logger.Debug("  %s", path)
		}
	}

	commit, err := CreateCommit(executor, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("created commit %s: %s", commit.Hash, commit.Message)

	publish := Publish(executor, cfg.Remote, cfg.Branch, cfg.SkipPush)
	if publish.Attempted && !publish.Succeeded {
		logger.Warn("push to %s/%s failed: %s", cfg.Remote, cfg.Branch, publish.Reason)
		logger.Warn("the commit exists locally; push again once the remote is reachable")
	}

	return &RunSummary{
		Commit:  *commit,
		Publish: publish,
		Branch:  cfg.Branch,
	}, nil
}
