package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	BuildOverview(ctx context.Context, patientID string) (*responses.ClinicalOverview, error)
	GetEncounterBlocks(ctx context.Context, patientID string) ([]responses.EncounterBlock, error)
	GetImmunizations(ctx context.Context, patientID string) ([]responses.ImmunizationDTO, error)
	GetAllergies(ctx context.Context, patientID string) ([]responses.AllergyIntoleranceDTO, error)
	GetRecommendations(ctx context.Context, patientID string) ([]responses.RecommendationDTO, error)
	GetAppointments(ctx context.Context, patientID string) ([]responses.AppointmentDTO, error)
	GetAdverseEvents(ctx context.Context, patientID string) ([]responses.AdverseEventDTO, error)
	GetAdverseEventsForEncounter(ctx context.Context, patientID, encounterID string) ([]responses.AdverseEventDTO, error)
	GetRelatedPersons(ctx context.Context, patientID string) ([]responses.RelatedPersonDTO, error)

	CreateImmunization(ctx context.Context, identityToken, patientID string, request *requests.CreateImmunization) (*responses.ImmunizationDTO, error)
	CreateRecommendation(ctx context.Context, patientID string, request *requests.CreateRecommendation) ([]responses.RecommendationDTO, error)
	CreateAppointment(ctx context.Context, identityToken, patientID string, request *requests.CreateAppointment) (*responses.AppointmentDTO, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) (*responses.AppointmentDTO, error)
	CreateAdverseEvent(ctx context.Context, patientID string, request *requests.CreateAdverseEvent) (*responses.AdverseEventDTO, error)
	CreateFullEncounter(ctx context.Context, patientID string, request *requests.CreateFullEncounter) (*responses.CreateFullEncounterResult, error)
	CreateRelatedPerson(ctx context.Context, patientID string, request *requests.CreateRelatedPerson) (*responses.RelatedPersonDTO, error)
	UpdateRelatedPerson(ctx context.Context, relatedPersonID string, request *requests.CreateRelatedPerson) (*responses.RelatedPersonDTO, error)
}
