package git

// MockGitRunner implements GitExecutor for testing.
// Each method can be configured with a custom function to control behavior.
type MockGitRunner struct {
	StatusFunc          func() ([]StatusEntry, error)
	AddAllFunc          func() error
	DiffCachedNamesFunc func() ([]string, error)
	CommitFunc          func(message string) error
	PushFunc            func(remote, branch string) error
	RevParseShortFunc   func() (string, error)
	workDir             string
}

// NewMockGitRunner creates a new MockGitRunner with the specified working directory
func NewMockGitRunner(workDir string) *MockGitRunner {
	return &MockGitRunner{
		workDir: workDir,
	}
}

// Status returns the current git status as a list of StatusEntry
func (m *MockGitRunner) Status() ([]StatusEntry, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return nil, nil
}

// AddAll stages every pending change in the working tree
func (m *MockGitRunner) AddAll() error {
	if m.AddAllFunc != nil {
		return m.AddAllFunc()
	}
	return nil
}

// DiffCachedNames returns the paths currently held in the staging area
func (m *MockGitRunner) DiffCachedNames() ([]string, error) {
	if m.DiffCachedNamesFunc != nil {
		return m.DiffCachedNamesFunc()
	}
	return nil, nil
}

// Commit creates a git commit with the specified message
func (m *MockGitRunner) Commit(message string) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(message)
	}
	return nil
}

// Push pushes the given branch to the named remote
func (m *MockGitRunner) Push(remote, branch string) error {
	if m.PushFunc != nil {
		return m.PushFunc(remote, branch)
	}
	return nil
}

// RevParseShort returns the abbreviated hash of HEAD
func (m *MockGitRunner) RevParseShort() (string, error) {
	if m.RevParseShortFunc != nil {
		return m.RevParseShortFunc()
	}
	return "", nil
}

// WorkDir returns the working directory of the git repository
func (m *MockGitRunner) WorkDir() string {
	return m.workDir
}

// Ensure MockGitRunner implements GitExecutor interface
var _ GitExecutor = (*MockGitRunner)(nil)
