package routers

import (
	"vaxtrack-service/internal/app/services/dashboard"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, dashboardController *dashboard.DashboardController) {
	router.Get("/patients/{patient_id}/overview", dashboardController.GetOverview)

	router.Get("/patients/{patient_id}/encounters", dashboardController.GetEncounters)
	router.Post("/patients/{patient_id}/encounters/full", dashboardController.CreateFullEncounter)

	router.Get("/patients/{patient_id}/immunizations", dashboardController.GetImmunizations)
	router.Post("/patients/{patient_id}/immunizations", dashboardController.CreateImmunization)

	router.Get("/patients/{patient_id}/recommendations", dashboardController.GetRecommendations)
	router.Post("/patients/{patient_id}/recommendations", dashboardController.CreateRecommendation)

	router.Get("/patients/{patient_id}/allergies", dashboardController.GetAllergies)

	router.Get("/patients/{patient_id}/appointments", dashboardController.GetAppointments)
	router.Post("/patients/{patient_id}/appointments", dashboardController.CreateAppointment)
	router.Put("/appointments/{appointment_id}/status", dashboardController.UpdateAppointmentStatus)

	router.Get("/patients/{patient_id}/adverse-events", dashboardController.GetAdverseEvents)
	router.Post("/patients/{patient_id}/adverse-events", dashboardController.CreateAdverseEvent)
	router.Get("/patients/{patient_id}/encounters/{encounter_id}/adverse-events", dashboardController.GetEncounterAdverseEvents)

	router.Get("/patients/{patient_id}/related-persons", dashboardController.GetRelatedPersons)
	router.Post("/patients/{patient_id}/related-persons", dashboardController.CreateRelatedPerson)
	router.Put("/related-persons/{related_person_id}", dashboardController.UpdateRelatedPerson)
}
