package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type RelatedPersonFhirClient interface {
	FindRelatedPersonByID(ctx context.Context, relatedPersonID string) (*fhir_dto.RelatedPerson, error)
	FindRelatedPersonsByPatient(ctx context.Context, patientID string) ([]fhir_dto.RelatedPerson, error)
	CreateRelatedPerson(ctx context.Context, relatedPerson *fhir_dto.RelatedPerson) (*fhir_dto.RelatedPerson, error)
	UpdateRelatedPerson(ctx context.Context, relatedPerson *fhir_dto.RelatedPerson) (*fhir_dto.RelatedPerson, error)
}
