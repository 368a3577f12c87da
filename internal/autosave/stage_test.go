package autosave

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tavo0132/nexo-backend-api/internal/common/git"
)

func TestStageAll(t *testing.T) {
	t.Run("stages and re-verifies the staged set", func(t *testing.T) {
		addCalled := false
		mock := git.NewMockGitRunner("/project")
		mock.AddAllFunc = func() error {
			addCalled = true
			return nil
		}
		mock.DiffCachedNamesFunc = func() ([]string, error) {
			return []string{"app/routes/users.py", "config.py"}, nil
		}

		result, err := StageAll(mock)
		if err != nil {
			t.Fatalf("StageAll() error = %v, want nil", err)
		}
		if !addCalled {
			t.Error("AddAll() was not called on mock")
		}
		want := []string{"app/routes/users.py", "config.py"}
		if !reflect.DeepEqual(result.Staged, want) {
			t.Errorf("Staged = %v, want %v", result.Staged, want)
		}
	})

	t.Run("add failure is fatal", func(t *testing.T) {
		mock := git.NewMockGitRunner("/project")
		mock.AddAllFunc = func() error {
			return errors.New("unable to create index.lock")
		}

		_, err := StageAll(mock)
		if !errors.Is(err, ErrStagingFailed) {
			t.Errorf("StageAll() error = %v, want ErrStagingFailed", err)
		}
	})

	t.Run("staged-set query failure is fatal", func(t *testing.T) {
		mock := git.NewMockGitRunner("/project")
		mock.DiffCachedNamesFunc = func() ([]string, error) {
			return nil, errors.New("bad revision")
		}

		_, err := StageAll(mock)
		if !errors.Is(err, ErrStagingFailed) {
			t.Errorf("StageAll() error = %v, want ErrStagingFailed", err)
		}
	})

	t.Run("empty staged set after add is an inconsistency", func(t *testing.T) {
		mock := git.NewMockGitRunner("/project")
		mock.DiffCachedNamesFunc = func() ([]string, error) {
			return nil, nil
		}

		_, err := StageAll(mock)
		if !errors.Is(err, ErrNoStagedChanges) {
			t.Errorf("StageAll() error = %v, want ErrNoStagedChanges", err)
		}
	})
}
