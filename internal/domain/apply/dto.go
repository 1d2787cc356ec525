package apply

import "encoding/json"

// GeneralApplicationRequest is the create/update payload: a common base form
// plus a type-tagged extension payload validated per registered schema.
type GeneralApplicationRequest struct {
	ApplicationType ApplicationType        `json:"application_type" binding:"required"`
	BaseForm        ApplicationForm        `json:"baseForm" binding:"required"`
	AdditionForm    map[string]interface{} `json:"additionForm" binding:"required"`
}

type ApplicationResponse struct {
	ApplicationID string `json:"application_id"`
	Message       string `json:"message"`
}

// ApplicationView is the read shape for a single record.
type ApplicationView struct {
	Type  ApplicationType `json:"type"`
	Base  json.RawMessage `json:"base"`
	Extra json.RawMessage `json:"extra"`
}

// UserApplicationView is the read shape for submitter-scoped listings.
type UserApplicationView struct {
	ApplicationID string          `json:"application_id"`
	Type          ApplicationType `json:"type"`
	Base          json.RawMessage `json:"base"`
	Extra         json.RawMessage `json:"extra"`
}

func NewApplicationView(a Application) ApplicationView {
	return ApplicationView{
		Type:  a.Type,
		Base:  json.RawMessage(a.BaseForm),
		Extra: json.RawMessage(a.ExtraForm),
	}
}

func NewUserApplicationView(a Application) UserApplicationView {
	return UserApplicationView{
		ApplicationID: a.ID,
		Type:          a.Type,
		Base:          json.RawMessage(a.BaseForm),
		Extra:         json.RawMessage(a.ExtraForm),
	}
}
