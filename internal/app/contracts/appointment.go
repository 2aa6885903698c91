package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

type AppointmentFhirClient interface {
	FindAppointmentsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*fhir_dto.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error)
}
