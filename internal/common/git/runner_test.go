package git

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseStatusOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []StatusEntry
	}{
		{
			name:     "empty output",
			input:    "",
			expected: nil,
		},
		{
			name:  "single added file",
			input: "A  app/routes/users.py\n",
			expected: []StatusEntry{
				{Status: "A", FilePath: "app/routes/users.py"},
			},
		},
		{
			name:  "single modified file",
			input: "M  app/models/user.py\n",
			expected: []StatusEntry{
				{Status: "M", FilePath: "app/models/user.py"},
			},
		},
		{
			name:  "worktree-only modification",
			input: " M config.py\n",
			expected: []StatusEntry{
				{Status: "M", FilePath: "config.py"},
			},
		},
		{
			name:  "single deleted file",
			input: "D  app/security.py\n",
			expected: []StatusEntry{
				{Status: "D", FilePath: "app/security.py"},
			},
		},
		{
			name:  "untracked file",
			input: "?? app/routes/search.py\n",
			expected: []StatusEntry{
				{Status: "??", FilePath: "app/routes/search.py"},
			},
		},
		{
			name:  "renamed file",
			input: "R  old-name.py -> new-name.py\n",
			expected: []StatusEntry{
				{Status: "R", FilePath: "new-name.py"},
			},
		},
		{
			name: "multiple files preserve order",
			input: `A  app/routes/friends.py
M  app/models/friendship.py
D  wsgi.py
?? notes.txt
`,
			expected: []StatusEntry{
				{Status: "A", FilePath: "app/routes/friends.py"},
				{Status: "M", FilePath: "app/models/friendship.py"},
				{Status: "D", FilePath: "wsgi.py"},
				{Status: "??", FilePath: "notes.txt"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseStatusOutput(tt.input)
			if err != nil {
				t.Fatalf("ParseStatusOutput() error = %v, want nil", err)
			}

			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d entries, got %d", len(tt.expected), len(result))
			}

			for i, entry := range result {
				if entry != tt.expected[i] {
					t.Errorf("entry %d = %+v, want %+v", i, entry, tt.expected[i])
				}
			}
		})
	}
}

func TestParseStatusOutputErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "truncated line", input: "M\n"},
		{name: "status without path", input: "M  \n"},
		{name: "garbage fragment", input: "xy\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatusOutput(tt.input)
			if !errors.Is(err, ErrStatusParse) {
				t.Errorf("ParseStatusOutput(%q) error = %v, want ErrStatusParse", tt.input, err)
			}
		})
	}
}

// Property: any well-formed porcelain line parses back to its status and path
func TestParseStatusOutputProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genPath := gen.RegexMatch(`^[a-z][a-z0-9_/.-]{0,40}[a-z0-9]$`)
	genStatus := gen.OneConstOf("A ", "M ", "D ", " M", " D", "??", "AM", "MM")

	properties.Property("well-formed lines round-trip", prop.ForAll(
		func(status, path string) bool {
			line := status + " " + path + "\n"
			entries, err := ParseStatusOutput(line)
			if err != nil || len(entries) != 1 {
				return false
			}
			return entries[0].Status == strings.TrimSpace(status) && entries[0].FilePath == path
		},
		genStatus,
		genPath,
	))

	properties.TestingRun(t)
}
