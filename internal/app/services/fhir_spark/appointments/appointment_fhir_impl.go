package appointments

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
	appointmentFhirClientInstance contracts.AppointmentFhirClient
	onceAppointmentFhirClient     sync.Once
)

type appointmentFhirClient struct {
	Rest *rest.Client
	Log  *zap.Logger
}

func NewAppointmentFhirClient(restClient *rest.Client, logger *zap.Logger) contracts.AppointmentFhirClient {
	onceAppointmentFhirClient.Do(func() {
		appointmentFhirClientInstance = &appointmentFhirClient{
			Rest: restClient,
			Log:  logger,
		}
	})
	return appointmentFhirClientInstance
}

func (c *appointmentFhirClient) FindAppointmentsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentFhirClient.FindAppointmentsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamPatient, constvars.ResourcePatient+"/"+patientID)
	rawResources, err := c.Rest.Search(ctx, constvars.ResourceAppointment, params)
	if err != nil {
		return nil, err
	}

	appointments := make([]fhir_dto.Appointment, 0, len(rawResources))
	for _, raw := range rawResources {
		var appointment fhir_dto.Appointment
		if err := json.Unmarshal(raw, &appointment); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
		}
		appointments = append(appointments, appointment)
	}
	return appointments, nil
}

func (c *appointmentFhirClient) FindAppointmentByID(ctx context.Context, appointmentID string) (*fhir_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentFhirClient.FindAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, appointmentID),
	)

	appointmentFhir := new(fhir_dto.Appointment)
	if err := c.Rest.Read(ctx, constvars.ResourceAppointment, appointmentID, appointmentFhir); err != nil {
		return nil, err
	}
	return appointmentFhir, nil
}

func (c *appointmentFhirClient) CreateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentFhirClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.Appointment)
	if err := c.Rest.Create(ctx, constvars.ResourceAppointment, appointment, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *appointmentFhirClient) UpdateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentFhirClient.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, appointment.ID),
	)

	updated := new(fhir_dto.Appointment)
	if err := c.Rest.Update(ctx, constvars.ResourceAppointment, appointment.ID, appointment, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
