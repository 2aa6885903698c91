package observations

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
	observationFhirClientInstance contracts.ObservationFhirClient
	onceObservationFhirClient     sync.Once
)

type observationFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewObservationFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.ObservationFhirClient {
	onceObservationFhirClient.Do(func() {
		observationFhirClientInstance = &observationFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return observationFhirClientInstance
}

func (c *observationFhirClient) FindObservationsByEncounter(ctx context.Context, encounterID string) ([]fhir_dto.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("observationFhirClient.FindObservationsByEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEncounterIDKey, encounterID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamEncounter, constvars.ResourceEncounter+"/"+encounterID)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourceObservation, params)
	if err != nil {
		return nil, err
	}

	observations := make([]fhir_dto.Observation, 0, len(rawResources))
	for _, raw := range rawResources {
		var observation fhir_dto.Observation
		if err := json.Unmarshal(raw, &observation); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
		}
		observations = append(observations, observation)
	}
	return observations, nil
}

func (c *observationFhirClient) CreateObservation(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("observationFhirClient.CreateObservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.Observation)
	if err := c.Rest.Create(ctx, constvars.ResourceObservation, observation, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *observationFhirClient) UpdateObservation(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("observationFhirClient.UpdateObservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, observation.ID),
	)

	updated := new(fhir_dto.Observation)
	if err := c.Rest.Update(ctx, constvars.ResourceObservation, observation.ID, observation, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
