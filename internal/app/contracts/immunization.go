package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type ImmunizationFhirClient interface {
	FindImmunizationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error)
	CreateImmunization(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error)
	UpdateImmunization(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error)
}
