package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Apply ApplyRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Apply: NewApplyRepo(db),
		db:    db,
	}
}

// NewMemoryRepositories wires the in-memory store, used by tests and local
// runs without Postgres.
func NewMemoryRepositories() *Repos {
	return &Repos{
		Apply: NewMemApplyRepo(),
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Apply: r.Apply.WithTx(tx),
		db:    tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
