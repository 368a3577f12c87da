package autosave

import "time"

// RunConfig holds the per-invocation settings. Immutable once built from
// the command line and config files.
type RunConfig struct {
	// CommitMessage is used verbatim when set; empty triggers auto-generation
	CommitMessage string
	// SkipPush disables the publish stage entirely
	SkipPush bool
	// Verbose echoes intermediate stage detail as it occurs
	Verbose bool
	// Remote is the push target remote name
	Remote string
	// Branch is the fixed target branch for this run
	Branch string
	// Marker is the project subdirectory required by preflight
	Marker string
	// Now supplies the commit timestamp; nil means time.Now
	Now func() time.Time
}

func (c RunConfig) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// StagingResult holds the staged paths confirmed after add
type StagingResult struct {
	Staged []string
}

// CommitResult describes the single commit created by a run
type CommitResult struct {
	Hash      string
	Message   string
	Timestamp time.Time
}

// PublishResult describes the outcome of the push stage.
// Attempted is false iff the run was invoked with skip-push.
type PublishResult struct {
	Attempted bool
	Succeeded bool
	Reason    string
}

// RunSummary is the sole externally observable output of a run
// besides the process exit status.
type RunSummary struct {
	NoOp    bool
	Commit  CommitResult
	Publish PublishResult
	Branch  string
}
