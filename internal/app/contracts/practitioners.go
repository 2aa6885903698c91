package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type PractitionerUsecase interface {
	CurrentPractitioner(ctx context.Context, identityToken string) (*fhir_dto.Practitioner, error)
	MyPatients(ctx context.Context, identityToken string) ([]responses.PatientDetails, error)
	SearchBySvnr(ctx context.Context, identityToken, svnr string) ([]responses.PatientDetails, error)
	RegisterPatient(ctx context.Context, identityToken string, request *requests.CreatePatient) (*responses.PatientDetails, error)
	UpdatePatient(ctx context.Context, identityToken, patientID string, request *requests.UpdatePatient) (*responses.PatientDetails, error)
}
