package routers

import (
	"vaxtrack-service/internal/app/services/practitioners"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, practitionerController *practitioners.PractitionerController) {
	router.Get("/patients", practitionerController.GetMyPatients)
	router.Get("/patients/search", practitionerController.SearchPatients)
	router.Post("/patients", practitionerController.RegisterPatient)
	router.Put("/patients/{patient_id}", practitionerController.UpdatePatient)
}
