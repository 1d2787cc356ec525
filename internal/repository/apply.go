package repository

import (
	"github.com/linskybing/apply-service/internal/domain/apply"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=apply.go -destination=mock/apply.go -package=mock

type ApplyRepo interface {
	Create(a *apply.Application) error
	FindByID(id string) (apply.Application, error)
	FindAll() ([]apply.Application, error)
	FindByApplicant(account string) ([]apply.Application, error)
	Replace(id string, base, extra datatypes.JSON) error
	UpdateStatus(id string, status apply.ApplicationStatus) error
	Delete(id string) error
	WithTx(tx *gorm.DB) ApplyRepo
}

type DBApplyRepo struct {
	db *gorm.DB
}

func NewApplyRepo(db *gorm.DB) *DBApplyRepo {
	return &DBApplyRepo{db: db}
}

func (r *DBApplyRepo) Create(a *apply.Application) error {
	return r.db.Create(a).Error
}

func (r *DBApplyRepo) FindByID(id string) (apply.Application, error) {
	var a apply.Application
	err := r.db.First(&a, "id = ?", id).Error
	return a, err
}

func (r *DBApplyRepo) FindAll() ([]apply.Application, error) {
	var apps []apply.Application
	err := r.db.Find(&apps).Error
	return apps, err
}

// FindByApplicant matches on the applicant_account key embedded in the
// base_form document. This is a full scan; applications volume is small and
// no secondary index is maintained.
func (r *DBApplyRepo) FindByApplicant(account string) ([]apply.Application, error) {
	var apps []apply.Application
	err := r.db.Where("base_form ->> 'applicant_account' = ?", account).Find(&apps).Error
	return apps, err
}

// Replace overwrites both form documents. ID and type tag are never touched.
func (r *DBApplyRepo) Replace(id string, base, extra datatypes.JSON) error {
	res := r.db.Model(&apply.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"base_form": base, "extra_form": extra})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus rewrites only the status key inside the stored base_form,
// leaving every other field as persisted.
func (r *DBApplyRepo) UpdateStatus(id string, status apply.ApplicationStatus) error {
	res := r.db.Model(&apply.Application{}).
		Where("id = ?", id).
		UpdateColumn("base_form", gorm.Expr("jsonb_set(base_form, '{status}', to_jsonb(?::text))", string(status)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBApplyRepo) Delete(id string) error {
	res := r.db.Delete(&apply.Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBApplyRepo) WithTx(tx *gorm.DB) ApplyRepo {
	return &DBApplyRepo{db: tx}
}
