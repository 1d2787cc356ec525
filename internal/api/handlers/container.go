package handlers

import (
	"github.com/linskybing/apply-service/internal/application"
)

type Handlers struct {
	Apply *ApplyHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Apply: NewApplyHandler(svc.Apply),
	}
}
