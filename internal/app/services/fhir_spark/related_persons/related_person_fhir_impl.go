package related_persons

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
	relatedPersonFhirClientInstance contracts.RelatedPersonFhirClient
	onceRelatedPersonFhirClient     sync.Once
)

type relatedPersonFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewRelatedPersonFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.RelatedPersonFhirClient {
	onceRelatedPersonFhirClient.Do(func() {
		relatedPersonFhirClientInstance = &relatedPersonFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return relatedPersonFhirClientInstance
}

func (c *relatedPersonFhirClient) FindRelatedPersonByID(ctx context.Context, relatedPersonID string) (*fhir_dto.RelatedPerson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("relatedPersonFhirClient.FindRelatedPersonByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, relatedPersonID),
	)

	relatedPersonFhir := new(fhir_dto.RelatedPerson)
	if err := c.Rest.Read(ctx, constvars.ResourceRelatedPerson, relatedPersonID, relatedPersonFhir); err != nil {
		return nil, err
	}
	return relatedPersonFhir, nil
}

func (c *relatedPersonFhirClient) FindRelatedPersonsByPatient(ctx context.Context, patientID string) ([]fhir_dto.RelatedPerson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("relatedPersonFhirClient.FindRelatedPersonsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamPatient, constvars.ResourcePatient+"/"+patientID)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourceRelatedPerson, params)
	if err != nil {
		return nil, err
	}

	relatedPersons := make([]fhir_dto.RelatedPerson, 0, len(rawResources))
	for _, raw := range rawResources {
		var relatedPerson fhir_dto.RelatedPerson
		if err := json.Unmarshal(raw, &relatedPerson); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceRelatedPerson)
		}
		relatedPersons = append(relatedPersons, relatedPerson)
	}
	return relatedPersons, nil
}

func (c *relatedPersonFhirClient) CreateRelatedPerson(ctx context.Context, relatedPerson *fhir_dto.RelatedPerson) (*fhir_dto.RelatedPerson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("relatedPersonFhirClient.CreateRelatedPerson called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.RelatedPerson)
	if err := c.Rest.Create(ctx, constvars.ResourceRelatedPerson, relatedPerson, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *relatedPersonFhirClient) UpdateRelatedPerson(ctx context.Context, relatedPerson *fhir_dto.RelatedPerson) (*fhir_dto.RelatedPerson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("relatedPersonFhirClient.UpdateRelatedPerson called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, relatedPerson.ID),
	)

	updated := new(fhir_dto.RelatedPerson)
	if err := c.Rest.Update(ctx, constvars.ResourceRelatedPerson, relatedPerson.ID, relatedPerson, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
