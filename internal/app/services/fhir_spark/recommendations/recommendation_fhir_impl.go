package recommendations

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
	recommendationFhirClientInstance contracts.ImmunizationRecommendationFhirClient
	onceRecommendationFhirClient     sync.Once
)

type recommendationFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewRecommendationFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.ImmunizationRecommendationFhirClient {
	onceRecommendationFhirClient.Do(func() {
		recommendationFhirClientInstance = &recommendationFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return recommendationFhirClientInstance
}

func (c *recommendationFhirClient) FindRecommendationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.ImmunizationRecommendation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recommendationFhirClient.FindRecommendationsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamPatient, constvars.ResourcePatient+"/"+patientID)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourceImmunizationRecommendation, params)
	if err != nil {
		return nil, err
	}

	recommendations := make([]fhir_dto.ImmunizationRecommendation, 0, len(rawResources))
	for _, raw := range rawResources {
		var recommendation fhir_dto.ImmunizationRecommendation
		if err := json.Unmarshal(raw, &recommendation); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceImmunizationRecommendation)
		}
		recommendations = append(recommendations, recommendation)
	}
	return recommendations, nil
}

func (c *recommendationFhirClient) CreateRecommendation(ctx context.Context, recommendation *fhir_dto.ImmunizationRecommendation) (*fhir_dto.ImmunizationRecommendation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recommendationFhirClient.CreateRecommendation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.ImmunizationRecommendation)
	if err := c.Rest.Create(ctx, constvars.ResourceImmunizationRecommendation, recommendation, created); err != nil {
		return nil, err
	}
	return created, nil
}
