package apply

// ApplicationForm holds the fields common to every application type.
// Email fields are checked syntactically at bind time.
type ApplicationForm struct {
	Department       string `json:"department" binding:"required"`
	ApplicantAccount string `json:"applicant_account" binding:"required"`
	ApplicantName    string `json:"applicant_name" binding:"required"`
	ApplicantPhone   string `json:"applicant_phone" binding:"required"`
	ApplicantEmail   string `json:"applicant_email" binding:"required,email"`

	TechContactName  string `json:"tech_contact_name" binding:"required"`
	TechContactPhone string `json:"tech_contact_phone" binding:"required"`
	TechContactEmail string `json:"tech_contact_email" binding:"required,email"`

	SupervisorName  string `json:"supervisor_name" binding:"required"`
	SupervisorID    string `json:"supervisor_id" binding:"required"`
	SupervisorEmail string `json:"supervisor_email" binding:"required,email"`

	ApplyDate string            `json:"apply_date" binding:"required"`
	Status    ApplicationStatus `json:"status"`
}

// DNSApplicationForm is the extension payload for DNS domain applications.
type DNSApplicationForm struct {
	ApplicantUnit      string `json:"applicant_unit"`
	DomainName         string `json:"domain_name"`
	ApplicationProject string `json:"application_project"`
	DNSManageAccount   string `json:"dns_manage_account"`
	Reason             string `json:"reason"`
}
