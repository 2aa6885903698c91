package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type ImmunizationRecommendationFhirClient interface {
	FindRecommendationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.ImmunizationRecommendation, error)
	CreateRecommendation(ctx context.Context, recommendation *fhir_dto.ImmunizationRecommendation) (*fhir_dto.ImmunizationRecommendation, error)
}
