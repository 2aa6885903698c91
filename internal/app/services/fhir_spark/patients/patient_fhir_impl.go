package patients

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
	patientFhirClientInstance contracts.PatientFhirClient
	oncePatientFhirClient     sync.Once
)

type patientFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewPatientFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.PatientFhirClient {
	oncePatientFhirClient.Do(func() {
		patientFhirClientInstance = &patientFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return patientFhirClientInstance
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patientFhir := new(fhir_dto.Patient)
	if err := c.Rest.Read(ctx, constvars.ResourcePatient, patientID, patientFhir); err != nil {
		return nil, err
	}
	return patientFhir, nil
}

func (c *patientFhirClient) FindPatientsByGeneralPractitioner(ctx context.Context, practitionerRef string) ([]fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientsByGeneralPractitioner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceKey, practitionerRef),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamGeneralPractitioner, practitionerRef)
	return c.search(ctx, params)
}

func (c *patientFhirClient) FindPatientsByGeneralPractitionerAndIdentifier(ctx context.Context, practitionerRef, system, value string) ([]fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientsByGeneralPractitionerAndIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceKey, practitionerRef),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamGeneralPractitioner, practitionerRef)
	params.Set(constvars.FhirSearchParamIdentifier, system+"|"+value)
	return c.search(ctx, params)
}

func (c *patientFhirClient) CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.Patient)
	if err := c.Rest.Create(ctx, constvars.ResourcePatient, patient, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *patientFhirClient) UpdatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)

	updated := new(fhir_dto.Patient)
	if err := c.Rest.Update(ctx, constvars.ResourcePatient, patient.ID, patient, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *patientFhirClient) search(ctx context.Context, params url.Values) ([]fhir_dto.Patient, error) {
	rawResources, err := c.Rest.Search(ctx, constvars.ResourcePatient, params)
	if err != nil {
		return nil, err
	}

	patients := make([]fhir_dto.Patient, 0, len(rawResources))
	for _, raw := range rawResources {
		var patient fhir_dto.Patient
		if err := json.Unmarshal(raw, &patient); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		}
		patients = append(patients, patient)
	}
	return patients, nil
}
