package git

// GitExecutor defines the interface for git operations.
// This interface allows for mocking git operations in tests.
type GitExecutor interface {
	// Status returns the current git status as a list of StatusEntry
	Status() ([]StatusEntry, error)

	// AddAll stages every pending change in the working tree
	AddAll() error

	// DiffCachedNames returns the paths currently held in the staging area
	DiffCachedNames() ([]string, error)

	// Commit creates a git commit with the specified message
	Commit(message string) error

	// Push pushes the given branch to the named remote
	Push(remote, branch string) error

	// RevParseShort returns the abbreviated hash of HEAD
	RevParseShort() (string, error)

	// WorkDir returns the working directory of the git repository
	WorkDir() string
}
