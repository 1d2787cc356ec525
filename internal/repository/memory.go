package repository

import (
	"encoding/json"
	"sync"

	"github.com/linskybing/apply-service/internal/domain/apply"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MemApplyRepo is a mutex-guarded in-memory ApplyRepo for tests and local
// runs without a database. It mirrors the keyed-miss and status-patch
// semantics of the Postgres implementation.
type MemApplyRepo struct {
	mu   sync.RWMutex
	apps map[string]apply.Application
}

func NewMemApplyRepo() *MemApplyRepo {
	return &MemApplyRepo{apps: make(map[string]apply.Application)}
}

func (r *MemApplyRepo) Create(a *apply.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[a.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.apps[a.ID] = *a
	return nil
}

func (r *MemApplyRepo) FindByID(id string) (apply.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.apps[id]
	if !ok {
		return apply.Application{}, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *MemApplyRepo) FindAll() ([]apply.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	apps := make([]apply.Application, 0, len(r.apps))
	for _, a := range r.apps {
		apps = append(apps, a)
	}
	return apps, nil
}

func (r *MemApplyRepo) FindByApplicant(account string) ([]apply.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	apps := []apply.Application{}
	for _, a := range r.apps {
		var base struct {
			ApplicantAccount string `json:"applicant_account"`
		}
		if err := json.Unmarshal(a.BaseForm, &base); err != nil {
			continue
		}
		if base.ApplicantAccount == account {
			apps = append(apps, a)
		}
	}
	return apps, nil
}

func (r *MemApplyRepo) Replace(id string, base, extra datatypes.JSON) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.BaseForm = base
	a.ExtraForm = extra
	r.apps[id] = a
	return nil
}

func (r *MemApplyRepo) UpdateStatus(id string, status apply.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	var base map[string]interface{}
	if err := json.Unmarshal(a.BaseForm, &base); err != nil {
		return err
	}
	base["status"] = string(status)
	patched, err := json.Marshal(base)
	if err != nil {
		return err
	}
	a.BaseForm = patched
	r.apps[id] = a
	return nil
}

func (r *MemApplyRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.apps, id)
	return nil
}

// WithTx is a no-op: the in-memory store has no transactions.
func (r *MemApplyRepo) WithTx(tx *gorm.DB) ApplyRepo {
	return r
}
