package constvars

const (
	ResourcePatient                    = "Patient"
	ResourcePractitioner               = "Practitioner"
	ResourceRelatedPerson              = "RelatedPerson"
	ResourceEncounter                  = "Encounter"
	ResourceOrganization               = "Organization"
	ResourceLocation                   = "Location"
	ResourceImmunization               = "Immunization"
	ResourceObservation                = "Observation"
	ResourceAllergyIntolerance         = "AllergyIntolerance"
	ResourceAdverseEvent               = "AdverseEvent"
	ResourceImmunizationRecommendation = "ImmunizationRecommendation"
	ResourceAppointment                = "Appointment"
)

const (
	FhirSearchParamPatient             = "patient"
	FhirSearchParamSubject             = "subject"
	FhirSearchParamEncounter           = "encounter"
	FhirSearchParamIdentifier          = "identifier"
	FhirSearchParamGeneralPractitioner = "general-practitioner"
)

const (
	FhirEncounterStatusPlanned    = "planned"
	FhirEncounterStatusInProgress = "in-progress"
	FhirEncounterStatusFinished   = "finished"
	FhirEncounterStatusCompleted  = "completed"
)

const (
	FhirImmunizationStatusCompleted = "completed"
	FhirObservationStatusFinal      = "final"
	FhirAppointmentStatusBooked     = "booked"
	FhirAppointmentStatusCancelled  = "cancelled"
	FhirAppointmentStatusNoShow     = "noshow"
)

const (
	FhirSystemSvnr                 = "https://elga.gv.at/svnr"
	FhirSystemCvx                  = "http://hl7.org/fhir/sid/cvx"
	FhirSystemLoinc                = "http://loinc.org"
	FhirSystemRoleCode             = "http://terminology.hl7.org/CodeSystem/v3-RoleCode"
	FhirSystemPractitionerIdentity = "http://hospital.smarthealthit.org/practitioners"
)

const (
	FhirDateCriterionDueDate = "due-date"
)
