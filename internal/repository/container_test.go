package repository_test

import (
	"errors"
	"testing"

	"github.com/linskybing/apply-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReposExecTx_WithoutDatabase(t *testing.T) {
	repos := repository.NewMemoryRepositories()

	// Without a database handle ExecTx runs the function against the same
	// container, so transactional callers work unchanged over the in-memory
	// store.
	var seen *repository.Repos
	err := repos.ExecTx(func(r *repository.Repos) error {
		seen = r
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, repos, seen)
}

func TestReposExecTx_PropagatesError(t *testing.T) {
	repos := repository.NewMemoryRepositories()

	want := errors.New("replace failed")
	err := repos.ExecTx(func(r *repository.Repos) error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestMemApplyRepo_WithTxReturnsSameStore(t *testing.T) {
	repo := repository.NewMemApplyRepo()
	assert.Same(t, repo, repo.WithTx(nil))
}
