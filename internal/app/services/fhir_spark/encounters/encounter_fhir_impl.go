package encounters

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
	encounterFhirClientInstance contracts.EncounterFhirClient
	onceEncounterFhirClient     sync.Once
)

type encounterFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewEncounterFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.EncounterFhirClient {
	onceEncounterFhirClient.Do(func() {
		encounterFhirClientInstance = &encounterFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return encounterFhirClientInstance
}

func (c *encounterFhirClient) FindEncountersByPatient(ctx context.Context, patientID string) ([]fhir_dto.Encounter, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("encounterFhirClient.FindEncountersByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamSubject, constvars.ResourcePatient+"/"+patientID)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourceEncounter, params)
	if err != nil {
		return nil, err
	}

	encounters := make([]fhir_dto.Encounter, 0, len(rawResources))
	for _, raw := range rawResources {
		var encounter fhir_dto.Encounter
		if err := json.Unmarshal(raw, &encounter); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceEncounter)
		}
		encounters = append(encounters, encounter)
	}
	return encounters, nil
}

func (c *encounterFhirClient) UpdateEncounter(ctx context.Context, encounter *fhir_dto.Encounter) (*fhir_dto.Encounter, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("encounterFhirClient.UpdateEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEncounterIDKey, encounter.ID),
	)

	updated := new(fhir_dto.Encounter)
	if err := c.Rest.Update(ctx, constvars.ResourceEncounter, encounter.ID, encounter, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
