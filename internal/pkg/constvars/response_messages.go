package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "practitioner registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Dashboard messages
	OverviewGetSuccess          = "patient clinical overview fetched successfully"
	EncountersGetSuccess        = "encounters fetched successfully"
	ImmunizationsGetSuccess     = "immunizations fetched successfully"
	ImmunizationCreatedSuccess  = "immunization created successfully"
	RecommendationsGetSuccess   = "immunization recommendations fetched successfully"
	RecommendationCreateSuccess = "immunization recommendation created successfully"
	AllergiesGetSuccess         = "allergies fetched successfully"
	AppointmentsGetSuccess      = "appointments fetched successfully"
	AppointmentCreatedSuccess   = "appointment created successfully"
	AppointmentUpdatedSuccess   = "appointment updated successfully"
	AdverseEventsGetSuccess     = "adverse events fetched successfully"
	AdverseEventCreatedSuccess  = "adverse event created successfully"
	FullEncounterCreatedSuccess = "encounter created successfully"
	RelatedPersonsGetSuccess    = "related persons fetched successfully"
	RelatedPersonCreatedSuccess = "related person created successfully"
	RelatedPersonUpdatedSuccess = "related person updated successfully"

	// Practitioner messages
	MyPatientsGetSuccess       = "patients fetched successfully"
	PatientSearchSuccess       = "patient search finished successfully"
	PatientCreatedSuccess      = "patient registered successfully"
	PatientUpdatedSuccess      = "patient updated successfully"
	PractitionerCreatedSuccess = "practitioner created successfully"
)
