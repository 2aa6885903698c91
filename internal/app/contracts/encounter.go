package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type EncounterFhirClient interface {
	FindEncountersByPatient(ctx context.Context, patientID string) ([]fhir_dto.Encounter, error)
	UpdateEncounter(ctx context.Context, encounter *fhir_dto.Encounter) (*fhir_dto.Encounter, error)
}
