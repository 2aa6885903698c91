package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type AdverseEventFhirClient interface {
	FindAdverseEventsByPatient(ctx context.Context, patientID string) ([]fhir_dto.AdverseEvent, error)
	CreateAdverseEvent(ctx context.Context, adverseEvent *fhir_dto.AdverseEvent) (*fhir_dto.AdverseEvent, error)
}
