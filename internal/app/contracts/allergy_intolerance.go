package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type AllergyIntoleranceFhirClient interface {
	FindAllergiesByPatient(ctx context.Context, patientID string) ([]fhir_dto.AllergyIntolerance, error)
}
