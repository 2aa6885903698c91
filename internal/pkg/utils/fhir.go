package utils

import (
	"fmt"
	"strings"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

// BuildPatientDetailsResponse projects the wire resource onto the view
// model. Fields the store left empty stay empty.
func BuildPatientDetailsResponse(patient *fhir_dto.Patient) responses.PatientDetails {
	details := responses.PatientDetails{
		ID:         patient.ID,
		Identifier: IdentifierValue(patient.Identifier, constvars.FhirSystemSvnr),
		BirthDate:  patient.BirthDate,
		Gender:     patient.Gender,
	}
	if len(patient.Name) > 0 {
		name := patient.Name[0]
		if len(name.Given) > 0 {
			details.FirstName = name.Given[0]
		}
		details.LastName = name.Family
	}
	return details
}

// ReferenceID extracts the bare id from a "ResourceType/id" literal
// reference. Blank or malformed references yield an empty string.
func ReferenceID(reference string) string {
	if reference == "" {
		return ""
	}
	parts := strings.SplitN(reference, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return ""
	}
	return parts[1]
}

func BuildReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}

func GetFullName(names []fhir_dto.HumanName) string {
	if len(names) == 0 {
		return ""
	}
	name := names[0]
	parts := make([]string, 0, len(name.Given)+1)
	parts = append(parts, name.Given...)
	if name.Family != "" {
		parts = append(parts, name.Family)
	}
	if len(parts) == 0 {
		return name.Text
	}
	return strings.Join(parts, " ")
}

func GetPhoneAndEmail(telecoms []fhir_dto.ContactPoint) (phone string, email string) {
	for _, telecom := range telecoms {
		switch telecom.System {
		case fhir_dto.ContactPointSystemPhone:
			if phone == "" {
				phone = telecom.Value
			}
		case fhir_dto.ContactPointSystemEmail:
			if email == "" {
				email = telecom.Value
			}
		}
	}
	return phone, email
}

func FormatAddress(address fhir_dto.Address) string {
	if address.Text != "" {
		return address.Text
	}
	parts := make([]string, 0, len(address.Line)+3)
	parts = append(parts, address.Line...)
	if address.City != "" {
		parts = append(parts, address.City)
	}
	if address.PostalCode != "" {
		parts = append(parts, address.PostalCode)
	}
	if address.Country != "" {
		parts = append(parts, address.Country)
	}
	return strings.Join(parts, ", ")
}

// ConceptCode returns the code of the first coding, falling back to
// the concept text when no coding carries one.
func ConceptCode(concept *fhir_dto.CodeableConcept) string {
	if concept == nil {
		return ""
	}
	for _, coding := range concept.Coding {
		if coding.Code != "" {
			return coding.Code
		}
	}
	return concept.Text
}

func ConceptText(concept *fhir_dto.CodeableConcept) string {
	if concept == nil {
		return ""
	}
	if concept.Text != "" {
		return concept.Text
	}
	for _, coding := range concept.Coding {
		if coding.Display != "" {
			return coding.Display
		}
	}
	return ""
}

func IdentifierValue(identifiers []fhir_dto.Identifier, system string) string {
	for _, identifier := range identifiers {
		if identifier.System == system {
			return identifier.Value
		}
	}
	return ""
}
