package requests

type CreateImmunization struct {
	ImmunizationID     string `json:"immunization_id" validate:"omitempty"`
	VaccineCode        string `json:"vaccine_code" validate:"required"`
	VaccineText        string `json:"vaccine_text" validate:"omitempty"`
	OccurrenceDateTime string `json:"occurrence_date_time" validate:"required"`
	EncounterID        string `json:"encounter_id" validate:"omitempty"`
}
