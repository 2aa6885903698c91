package organizations

import (
	"context"
	"sync"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/app/services/fhir_spark/rest"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

var (
	organizationFhirClientInstance contracts.OrganizationFhirClient
	onceOrganizationFhirClient     sync.Once
)

type organizationFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewOrganizationFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.OrganizationFhirClient {
	onceOrganizationFhirClient.Do(func() {
		organizationFhirClientInstance = &organizationFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return organizationFhirClientInstance
}

func (c *organizationFhirClient) FindOrganizationByID(ctx context.Context, organizationID string) (*fhir_dto.Organization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("organizationFhirClient.FindOrganizationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, organizationID),
	)

	organizationFhir := new(fhir_dto.Organization)
	if err := c.Rest.Read(ctx, constvars.ResourceOrganization, organizationID, organizationFhir); err != nil {
		return nil, err
	}
	return organizationFhir, nil
}
