package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type LocationFhirClient interface {
	FindLocationByID(ctx context.Context, locationID string) (*fhir_dto.Location, error)
}
