package fhir_dto

type Immunization struct {
	ResourceType       string                  `json:"resourceType,omitempty"`
	ID                 string                  `json:"id,omitempty"`
	Status             string                  `json:"status,omitempty"`
	VaccineCode        *CodeableConcept        `json:"vaccineCode,omitempty"`
	Patient            *Reference              `json:"patient,omitempty"`
	Encounter          *Reference              `json:"encounter,omitempty"`
	OccurrenceDateTime string                  `json:"occurrenceDateTime,omitempty"`
	Performer          []ImmunizationPerformer `json:"performer,omitempty"`
}

type ImmunizationPerformer struct {
	Actor *Reference `json:"actor,omitempty"`
}
