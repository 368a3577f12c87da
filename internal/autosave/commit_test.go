package autosave

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/tavo0132/nexo-backend-api/internal/common/git"
)

var autoMessagePattern = regexp.MustCompile(`^Auto-save: Update project files - \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func TestComposeMessage(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)

	t.Run("explicit message is used verbatim", func(t *testing.T) {
		got := ComposeMessage("fix: X", now)
		if got != "fix: X" {
			t.Errorf("ComposeMessage() = %q, want %q", got, "fix: X")
		}
	})

	t.Run("empty message triggers auto-generation", func(t *testing.T) {
		got := ComposeMessage("", now)
		want := "Auto-save: Update project files - 2025-03-14 09:26:53"
		if got != want {
			t.Errorf("ComposeMessage() = %q, want %q", got, want)
		}
		if !autoMessagePattern.MatchString(got) {
			t.Errorf("auto message %q does not match expected pattern", got)
		}
	})
}

// Property: any explicit message survives verbatim, timestamp or not
func TestComposeMessageExplicitVerbatim(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("explicit message passes through unchanged", prop.ForAll(
		func(message string, unix int64) bool {
			if message == "" {
				return true // empty means unset, auto-generation applies
			}
			now := time.Unix(unix, 0)
			return ComposeMessage(message, now) == message
		},
		gen.AnyString(),
		gen.Int64Range(0, 4102444800), // through 2100
	))

	properties.Property("auto message always matches the documented pattern", prop.ForAll(
		func(unix int64) bool {
			now := time.Unix(unix, 0)
			return autoMessagePattern.MatchString(ComposeMessage("", now))
		},
		gen.Int64Range(0, 4102444800),
	))

	properties.TestingRun(t)
}

func TestCreateCommit(t *testing.T) {
	t.Run("successful commit captures hash and message", func(t *testing.T) {
		var committedMessage string
		mock := git.NewMockGitRunner("/project")
		mock.CommitFunc = func(message string) error {
			committedMessage = message
			return nil
		}
		mock.RevParseShortFunc = func() (string, error) {
			return "a1b2c3d", nil
		}

		cfg := RunConfig{CommitMessage: "feat: add search"}
		result, err := CreateCommit(mock, cfg)
		if err != nil {
			t.Fatalf("CreateCommit() error = %v, want nil", err)
		}

		if committedMessage != "feat: add search" {
			t.Errorf("committed message = %q, want %q", committedMessage, "feat: add search")
		}
		if result.Hash != "a1b2c3d" {
			t.Errorf("Hash = %q, want %q", result.Hash, "a1b2c3d")
		}
		if result.Message != "feat: add search" {
			t.Errorf("Message = %q, want %q", result.Message, "feat: add search")
		}
	})

	t.Run("auto message uses injected clock", func(t *testing.T) {
		fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
		mock := git.NewMockGitRunner("/project")

		cfg := RunConfig{Now: func() time.Time { return fixed }}
		result, err := CreateCommit(mock, cfg)
		if err != nil {
			t.Fatalf("CreateCommit() error = %v, want nil", err)
		}

		want := "Auto-save: Update project files - 2025-01-02 03:04:05"
		if result.Message != want {
			t.Errorf("Message = %q, want %q", result.Message, want)
		}
		if !result.Timestamp.Equal(fixed) {
			t.Errorf("Timestamp = %v, want %v", result.Timestamp, fixed)
		}
	})

	t.Run("rejected commit is fatal", func(t *testing.T) {
		mock := git.NewMockGitRunner("/project")
		mock.CommitFunc = func(message string) error {
			return errors.New("gpg failed to sign the data")
		}

		_, err := CreateCommit(mock, RunConfig{CommitMessage: "x"})
		if !errors.Is(err, ErrCommitFailed) {
			t.Errorf("CreateCommit() error = %v, want ErrCommitFailed", err)
		}
	})

	t.Run("rev-parse failure is reported as commit failure", func(t *testing.T) {
		mock := git.NewMockGitRunner("/project")
		mock.RevParseShortFunc = func() (string, error) {
			return "", errors.New("ambiguous argument 'HEAD'")
		}

		_, err := CreateCommit(mock, RunConfig{CommitMessage: "x"})
		if !errors.Is(err, ErrCommitFailed) {
			t.Errorf("CreateCommit() error = %v, want ErrCommitFailed", err)
		}
	})
}
