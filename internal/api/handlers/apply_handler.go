package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/apply-service/internal/application"
	"github.com/linskybing/apply-service/internal/domain/apply"
	"github.com/linskybing/apply-service/pkg/response"
	"gorm.io/gorm"
)

type ApplyHandler struct {
	service *application.ApplyService
}

func NewApplyHandler(service *application.ApplyService) *ApplyHandler {
	return &ApplyHandler{service: service}
}

// respondError maps service failures onto the HTTP error contract.
func respondError(c *gin.Context, err error) {
	var vErr *apply.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Detail: fmt.Sprintf("Invalid %s form: missing or malformed fields: %s", vErr.Type, strings.Join(vErr.Fields, ", ")),
		})
	case errors.Is(err, apply.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Detail: "Unsupported application type"})
	case errors.Is(err, apply.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Detail: "Application not found"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Detail: "Database error: " + err.Error()})
	}
}

func (h *ApplyHandler) CreateApplication(c *gin.Context) {
	var req apply.GeneralApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Detail: err.Error()})
		return
	}

	a, err := h.service.CreateApplication(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apply.ApplicationResponse{
		ApplicationID: a.ID,
		Message:       fmt.Sprintf("Thanks for your %s apply!", a.Type),
	})
}

func (h *ApplyHandler) GetAllApplications(c *gin.Context) {
	apps, err := h.service.ListApplications()
	if err != nil {
		respondError(c, err)
		return
	}

	out := make(map[string]apply.ApplicationView, len(apps))
	for _, a := range apps {
		out[a.ID] = apply.NewApplicationView(a)
	}
	c.JSON(http.StatusOK, out)
}

// GetMyApplications lists the records whose base form names the caller as
// applicant. The identity comes from the X-User-Id header supplied by the
// gateway; there is no token check here.
func (h *ApplyHandler) GetMyApplications(c *gin.Context) {
	account := c.GetHeader("X-User-Id")
	if account == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Detail: "Missing X-User-Id header"})
		return
	}

	apps, err := h.service.ListByApplicant(account)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]apply.UserApplicationView, 0, len(apps))
	for _, a := range apps {
		out = append(out, apply.NewUserApplicationView(a))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ApplyHandler) GetApplication(c *gin.Context) {
	a, err := h.service.GetApplication(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apply.NewApplicationView(a))
}

func (h *ApplyHandler) UpdateApplication(c *gin.Context) {
	id := c.Param("id")

	var req apply.GeneralApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Detail: err.Error()})
		return
	}

	if err := h.service.UpdateApplication(id, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apply.ApplicationResponse{
		ApplicationID: id,
		Message:       "Application updated successfully",
	})
}

// updateStatus backs the cancel/approved/rejected shortcuts. The record's
// current status is not checked before the transition.
func (h *ApplyHandler) updateStatus(c *gin.Context, status apply.ApplicationStatus, verb string) {
	id := c.Param("id")

	if err := h.service.UpdateStatus(id, status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apply.ApplicationResponse{
		ApplicationID: id,
		Message:       fmt.Sprintf("Application %s successfully", verb),
	})
}

func (h *ApplyHandler) CancelApplication(c *gin.Context) {
	h.updateStatus(c, apply.StatusCanceled, "canceled")
}

func (h *ApplyHandler) ApproveApplication(c *gin.Context) {
	h.updateStatus(c, apply.StatusApproved, "approved")
}

func (h *ApplyHandler) RejectApplication(c *gin.Context) {
	h.updateStatus(c, apply.StatusRejected, "rejected")
}

func (h *ApplyHandler) DeleteApplication(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteApplication(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apply.ApplicationResponse{
		ApplicationID: id,
		Message:       "Application deleted successfully",
	})
}
