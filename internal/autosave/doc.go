// Package autosave implements the change-capture pipeline: validate the
// project root, detect pending working-tree changes, stage them, create a
// commit, and optionally push the result to the configured remote.
//
// The pipeline is strictly linear and fail-fast through the commit stage.
// Push failures are the one exception: a commit that already exists locally
// is never invalidated by a network or authentication problem, so the push
// outcome is captured in the run summary instead of aborting the run.
//
// Usage:
//
//	runner := git.NewGitRunner(projectRoot)
//	summary, err := autosave.Run(cfg, runner)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	autosave.Render(summary)
package autosave
