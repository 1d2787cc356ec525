package apply

import (
	"gorm.io/datatypes"
)

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "Pending"
	StatusUnderReview ApplicationStatus = "Under Review"
	StatusApproved    ApplicationStatus = "Approved"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusCompleted   ApplicationStatus = "Completed"
	StatusCanceled    ApplicationStatus = "Canceled"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type ApplicationType string

const (
	TypeDNS ApplicationType = "DNS"
	// TypeOffice is declared but has no extension schema registered; create and
	// update requests of this type are rejected as unsupported.
	TypeOffice ApplicationType = "Office"
)

// Application is the persisted unit. The base and extension forms are stored
// as JSON sub-documents so differently shaped extension payloads share one
// table. The ID is assigned once at creation and never reused.
type Application struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Type      ApplicationType `json:"type" gorm:"type:varchar(16);not null"`
	BaseForm  datatypes.JSON  `json:"base_form" gorm:"type:jsonb;not null"`
	ExtraForm datatypes.JSON  `json:"extra_form" gorm:"type:jsonb"`
}

func (Application) TableName() string {
	return "applications"
}
