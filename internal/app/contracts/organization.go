package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type OrganizationFhirClient interface {
	FindOrganizationByID(ctx context.Context, organizationID string) (*fhir_dto.Organization, error)
}
