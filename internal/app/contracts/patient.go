package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type PatientFhirClient interface {
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	FindPatientsByGeneralPractitioner(ctx context.Context, practitionerRef string) ([]fhir_dto.Patient, error)
	FindPatientsByGeneralPractitionerAndIdentifier(ctx context.Context, practitionerRef, system, value string) ([]fhir_dto.Patient, error)
	CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error)
	UpdatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error)
}
