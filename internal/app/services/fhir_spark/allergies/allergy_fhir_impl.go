package allergies

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
	allergyFhirClientInstance contracts.AllergyIntoleranceFhirClient
	onceAllergyFhirClient     sync.Once
)

type allergyFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewAllergyFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.AllergyIntoleranceFhirClient {
	onceAllergyFhirClient.Do(func() {
		allergyFhirClientInstance = &allergyFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return allergyFhirClientInstance
}

func (c *allergyFhirClient) FindAllergiesByPatient(ctx context.Context, patientID string) ([]fhir_dto.AllergyIntolerance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("allergyFhirClient.FindAllergiesByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamPatient, constvars.ResourcePatient+"/"+patientID)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourceAllergyIntolerance, params)
	if err != nil {
		return nil, err
	}

	allergies := make([]fhir_dto.AllergyIntolerance, 0, len(rawResources))
	for _, raw := range rawResources {
		var allergy fhir_dto.AllergyIntolerance
		if err := json.Unmarshal(raw, &allergy); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAllergyIntolerance)
		}
		allergies = append(allergies, allergy)
	}
	return allergies, nil
}
