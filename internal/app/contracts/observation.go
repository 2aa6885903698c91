package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type ObservationFhirClient interface {
	FindObservationsByEncounter(ctx context.Context, encounterID string) ([]fhir_dto.Observation, error)
	CreateObservation(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error)
	UpdateObservation(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error)
}
