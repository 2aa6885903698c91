package immunizations

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
	immunizationFhirClientInstance contracts.ImmunizationFhirClient
	onceImmunizationFhirClient     sync.Once
)

type immunizationFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewImmunizationFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.ImmunizationFhirClient {
	onceImmunizationFhirClient.Do(func() {
		immunizationFhirClientInstance = &immunizationFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return immunizationFhirClientInstance
}

func (c *immunizationFhirClient) FindImmunizationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("immunizationFhirClient.FindImmunizationsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamPatient, constvars.ResourcePatient+"/"+patientID)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourceImmunization, params)
	if err != nil {
		return nil, err
	}

	immunizations := make([]fhir_dto.Immunization, 0, len(rawResources))
	for _, raw := range rawResources {
		var immunization fhir_dto.Immunization
		if err := json.Unmarshal(raw, &immunization); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceImmunization)
		}
		immunizations = append(immunizations, immunization)
	}
	return immunizations, nil
}

func (c *immunizationFhirClient) CreateImmunization(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("immunizationFhirClient.CreateImmunization called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.Immunization)
	if err := c.Rest.Create(ctx, constvars.ResourceImmunization, immunization, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *immunizationFhirClient) UpdateImmunization(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("immunizationFhirClient.UpdateImmunization called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, immunization.ID),
	)

	updated := new(fhir_dto.Immunization)
	if err := c.Rest.Update(ctx, constvars.ResourceImmunization, immunization.ID, immunization, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
