package application

import "github.com/linskybing/apply-service/internal/repository"

type Services struct {
	Apply *ApplyService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Apply: NewApplyService(repos),
	}
}
