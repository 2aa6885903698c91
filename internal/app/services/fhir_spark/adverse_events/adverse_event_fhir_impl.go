package adverse_events

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
	adverseEventFhirClientInstance contracts.AdverseEventFhirClient
	onceAdverseEventFhirClient     sync.Once
)

type adverseEventFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewAdverseEventFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.AdverseEventFhirClient {
	onceAdverseEventFhirClient.Do(func() {
		adverseEventFhirClientInstance = &adverseEventFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return adverseEventFhirClientInstance
}

func (c *adverseEventFhirClient) FindAdverseEventsByPatient(ctx context.Context, patientID string) ([]fhir_dto.AdverseEvent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("adverseEventFhirClient.FindAdverseEventsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamSubject, constvars.ResourcePatient+"/"+patientID)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourceAdverseEvent, params)
	if err != nil {
		return nil, err
	}

	adverseEvents := make([]fhir_dto.AdverseEvent, 0, len(rawResources))
	for _, raw := range rawResources {
		var adverseEvent fhir_dto.AdverseEvent
		if err := json.Unmarshal(raw, &adverseEvent); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAdverseEvent)
		}
		adverseEvents = append(adverseEvents, adverseEvent)
	}
	return adverseEvents, nil
}

func (c *adverseEventFhirClient) CreateAdverseEvent(ctx context.Context, adverseEvent *fhir_dto.AdverseEvent) (*fhir_dto.AdverseEvent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("adverseEventFhirClient.CreateAdverseEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.AdverseEvent)
	if err := c.Rest.Create(ctx, constvars.ResourceAdverseEvent, adverseEvent, created); err != nil {
		return nil, err
	}
	return created, nil
}
