package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	ErrGitCommand  = errors.New("git command failed")
	ErrStatusParse = errors.New("unparseable git status output")
)

// GitRunner executes git commands in a specific working directory
type GitRunner struct {
	workDir string
}

// NewGitRunner creates a new GitRunner for the specified working directory
func NewGitRunner(workDir string) *GitRunner {
	return &GitRunner{
		workDir: workDir,
	}
}

// WorkDir returns the working directory of the GitRunner
func (g *GitRunner) WorkDir() string {
	return g.workDir
}

// runCommand executes a git command and returns stdout, stderr, and any error
func (g *GitRunner) runCommand(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.workDir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if err != nil {
		// Wrap the error with stderr for context
		if stderr != "" {
			err = errors.Join(ErrGitCommand, errors.New(strings.TrimSpace(stderr)))
		}
	}

	return stdout, stderr, err
}

// StatusEntry represents a single entry from git status --porcelain
type StatusEntry struct {
	Status   string // A, M, D, R, ??
	FilePath string
}

// Status returns the current git status as a list of StatusEntry
func (g *GitRunner) Status() ([]StatusEntry, error) {
	stdout, _, err := g.runCommand("status", "--porcelain")
	if err != nil {
		return nil, err
	}

	return ParseStatusOutput(stdout)
}

// ParseStatusOutput parses git status --porcelain output into StatusEntry slice.
// Lines that are non-empty but too short to carry the "XY path" shape are a
// parse error rather than silently dropped.
func ParseStatusOutput(output string) ([]StatusEntry, error) {
	var entries []StatusEntry

	lines := strings.Split(output, "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if len(line) < 4 {
			return nil, fmt.Errorf("%w: %q", ErrStatusParse, line)
		}

		// Git status --porcelain format: XY filename
		// X = index status, Y = worktree status
		status := strings.TrimSpace(line[:2])
		filePath := line[3:]

		// Handle renamed files: R  old -> new
		if strings.HasPrefix(status, "R") {
			parts := strings.Split(filePath, " -> ")
			if len(parts) == 2 {
				filePath = parts[1]
			}
		}

		if filePath == "" {
			return nil, fmt.Errorf("%w: %q", ErrStatusParse, line)
		}

		entries = append(entries, StatusEntry{
			Status:   status,
			FilePath: filePath,
		})
	}

	return entries, nil
}

// AddAll stages every pending change in the working tree
func (g *GitRunner) AddAll() error {
	_, _, err := g.runCommand("add", "-A")
	return err
}

// DiffCachedNames returns the paths currently held in the staging area
func (g *GitRunner) DiffCachedNames() ([]string, error) {
	stdout, _, err := g.runCommand("diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// Commit creates a git commit with the specified message
func (g *GitRunner) Commit(message string) error {
	_, _, err := g.runCommand("commit", "-m", message)
	return err
}

// Push pushes the given branch to the named remote
func (g *GitRunner) Push(remote, branch string) error {
	_, _, err := g.runCommand("push", remote, branch)
	return err
}

// RevParseShort returns the abbreviated hash of HEAD
func (g *GitRunner) RevParseShort() (string, error) {
	stdout, _, err := g.runCommand("rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}

// Ensure GitRunner implements GitExecutor interface
var _ GitExecutor = (*GitRunner)(nil)
