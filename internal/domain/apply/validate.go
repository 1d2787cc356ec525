package apply

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedType is returned when no extension schema is registered for
// the requested application type.
var ErrUnsupportedType = errors.New("unsupported application type")

// ErrInvalidStatus is returned when a base form carries a status outside the
// lifecycle enumeration.
var ErrInvalidStatus = errors.New("invalid application status")

// ValidationError reports the fields of an extension payload that are missing
// or not plain text.
type ValidationError struct {
	Type   ApplicationType
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s form: %s", e.Type, strings.Join(e.Fields, ", "))
}

// ExtensionValidator coerces a raw additionForm payload into the strongly
// shaped extension form for one application type.
type ExtensionValidator func(payload map[string]interface{}) (interface{}, error)

// extensionValidators maps each supported application type to its schema.
// Office is deliberately absent: the type exists in the enumeration but no
// extension schema was ever defined for it.
var extensionValidators = map[ApplicationType]ExtensionValidator{
	TypeDNS: validateDNSForm,
}

// ValidateExtension validates payload against the schema registered for typ.
// It is pure: no side effects, no storage access.
func ValidateExtension(typ ApplicationType, payload map[string]interface{}) (interface{}, error) {
	validator, ok := extensionValidators[typ]
	if !ok {
		return nil, ErrUnsupportedType
	}
	return validator(payload)
}

var dnsFields = []string{
	"applicant_unit",
	"domain_name",
	"application_project",
	"dns_manage_account",
	"reason",
}

// validateDNSForm requires the five DNS text fields to be present, non-empty
// strings. Extra keys are ignored.
func validateDNSForm(payload map[string]interface{}) (interface{}, error) {
	values := make(map[string]string, len(dnsFields))
	var bad []string
	for _, field := range dnsFields {
		raw, ok := payload[field]
		if !ok {
			bad = append(bad, field)
			continue
		}
		s, ok := raw.(string)
		if !ok || s == "" {
			bad = append(bad, field)
			continue
		}
		values[field] = s
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, &ValidationError{Type: TypeDNS, Fields: bad}
	}
	return DNSApplicationForm{
		ApplicantUnit:      values["applicant_unit"],
		DomainName:         values["domain_name"],
		ApplicationProject: values["application_project"],
		DNSManageAccount:   values["dns_manage_account"],
		Reason:             values["reason"],
	}, nil
}
