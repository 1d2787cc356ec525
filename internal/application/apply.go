package application

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/linskybing/apply-service/internal/domain/apply"
	"github.com/linskybing/apply-service/internal/repository"
	"gorm.io/datatypes"
)

// ApplyService composes extension-form validation and the record store. It
// holds no state of its own; every call is a single storage round trip.
type ApplyService struct {
	Repos *repository.Repos
}

func NewApplyService(repos *repository.Repos) *ApplyService {
	return &ApplyService{Repos: repos}
}

// validateRequest normalizes the base form and coerces the extension payload,
// returning both serialized for storage. No storage call happens before this
// succeeds.
func validateRequest(req apply.GeneralApplicationRequest) (base, extra datatypes.JSON, err error) {
	if req.BaseForm.Status == "" {
		req.BaseForm.Status = apply.StatusPending
	}
	if !req.BaseForm.Status.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", apply.ErrInvalidStatus, req.BaseForm.Status)
	}

	extraForm, err := apply.ValidateExtension(req.ApplicationType, req.AdditionForm)
	if err != nil {
		return nil, nil, err
	}

	baseBytes, err := json.Marshal(req.BaseForm)
	if err != nil {
		return nil, nil, err
	}
	extraBytes, err := json.Marshal(extraForm)
	if err != nil {
		return nil, nil, err
	}
	return datatypes.JSON(baseBytes), datatypes.JSON(extraBytes), nil
}

// CreateApplication validates the request and persists a new record under a
// freshly generated identifier.
func (s *ApplyService) CreateApplication(req apply.GeneralApplicationRequest) (*apply.Application, error) {
	base, extra, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	a := &apply.Application{
		ID:        uuid.NewString(),
		Type:      req.ApplicationType,
		BaseForm:  base,
		ExtraForm: extra,
	}
	if err := s.Repos.Apply.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ApplyService) GetApplication(id string) (apply.Application, error) {
	return s.Repos.Apply.FindByID(id)
}

func (s *ApplyService) ListApplications() ([]apply.Application, error) {
	return s.Repos.Apply.FindAll()
}

func (s *ApplyService) ListByApplicant(account string) ([]apply.Application, error) {
	return s.Repos.Apply.FindByApplicant(account)
}

// UpdateApplication replaces both form documents of an existing record after
// re-validating the payload. The record's identifier and type tag are kept.
// The replace runs inside a transaction so both documents change together or
// not at all.
func (s *ApplyService) UpdateApplication(id string, req apply.GeneralApplicationRequest) error {
	base, extra, err := validateRequest(req)
	if err != nil {
		return err
	}
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		return r.Apply.Replace(id, base, extra)
	})
}

// UpdateStatus patches only the status field of the stored base form. The
// current status is deliberately not inspected first: any status may be set
// from any other.
func (s *ApplyService) UpdateStatus(id string, status apply.ApplicationStatus) error {
	return s.Repos.Apply.UpdateStatus(id, status)
}

func (s *ApplyService) DeleteApplication(id string) error {
	return s.Repos.Apply.Delete(id)
}
