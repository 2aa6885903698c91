package practitioners

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/app/services/fhir_spark/rest"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

var (
	practitionerFhirClientInstance contracts.PractitionerFhirClient
	oncePractitionerFhirClient     sync.Once
)

type practitionerFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewPractitionerFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.PractitionerFhirClient {
	oncePractitionerFhirClient.Do(func() {
		practitionerFhirClientInstance = &practitionerFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return practitionerFhirClientInstance
}

func (c *practitionerFhirClient) FindPractitionerByID(ctx context.Context, practitionerID string) (*fhir_dto.Practitioner, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("practitionerFhirClient.FindPractitionerByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
	)

	practitionerFhir := new(fhir_dto.Practitioner)
	if err := c.Rest.Read(ctx, constvars.ResourcePractitioner, practitionerID, practitionerFhir); err != nil {
		return nil, err
	}
	return practitionerFhir, nil
}

func (c *practitionerFhirClient) FindPractitionersByIdentifier(ctx context.Context, system, value string) ([]fhir_dto.Practitioner, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("practitionerFhirClient.FindPractitionersByIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamIdentifier, system+"|"+value)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourcePractitioner, params)
	if err != nil {
		return nil, err
	}

	practitioners := make([]fhir_dto.Practitioner, 0, len(rawResources))
	for _, raw := range rawResources {
		var practitioner fhir_dto.Practitioner
		if err := json.Unmarshal(raw, &practitioner); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePractitioner)
		}
		practitioners = append(practitioners, practitioner)
	}
	return practitioners, nil
}

func (c *practitionerFhirClient) CreatePractitioner(ctx context.Context, practitioner *fhir_dto.Practitioner) (*fhir_dto.Practitioner, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("practitionerFhirClient.CreatePractitioner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.Practitioner)
	if err := c.Rest.Create(ctx, constvars.ResourcePractitioner, practitioner, created); err != nil {
		return nil, err
	}
	return created, nil
}
