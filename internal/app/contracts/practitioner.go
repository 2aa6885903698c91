package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type PractitionerFhirClient interface {
	FindPractitionerByID(ctx context.Context, practitionerID string) (*fhir_dto.Practitioner, error)
	FindPractitionersByIdentifier(ctx context.Context, system, value string) ([]fhir_dto.Practitioner, error)
	CreatePractitioner(ctx context.Context, practitioner *fhir_dto.Practitioner) (*fhir_dto.Practitioner, error)
}
