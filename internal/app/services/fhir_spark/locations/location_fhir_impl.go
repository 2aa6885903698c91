package locations

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
	locationFhirClientInstance contracts.LocationFhirClient
	onceLocationFhirClient     sync.Once
)

type locationFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewLocationFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.LocationFhirClient {
	onceLocationFhirClient.Do(func() {
		locationFhirClientInstance = &locationFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return locationFhirClientInstance
}

func (c *locationFhirClient) FindLocationByID(ctx context.Context, locationID string) (*fhir_dto.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("locationFhirClient.FindLocationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, locationID),
	)

	locationFhir := new(fhir_dto.Location)
	if err := c.Rest.Read(ctx, constvars.ResourceLocation, locationID, locationFhir); err != nil {
		return nil, err
	}
	return locationFhir, nil
}
