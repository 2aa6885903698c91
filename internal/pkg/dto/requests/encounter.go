package requests

type FullImmunizationInput struct {
	ImmunizationID     string `json:"immunization_id" validate:"required"`
	VaccineCode        string `json:"vaccine_code" validate:"required"`
	VaccineText        string `json:"vaccine_text" validate:"omitempty"`
	OccurrenceDateTime string `json:"occurrence_date_time" validate:"required"`
}

type FullObservationInput struct {
	ObservationID string  `json:"observation_id" validate:"required"`
	CodeText      string  `json:"code_text" validate:"required"`
	ValueString   string  `json:"value_string" validate:"omitempty"`
	ValueQuantity float64 `json:"value_quantity" validate:"omitempty"`
	ValueUnit     string  `json:"value_unit" validate:"omitempty"`
}

type CreateFullEncounter struct {
	EncounterID    string                  `json:"encounter_id" validate:"required"`
	Status         string                  `json:"status" validate:"required"`
	PeriodStart    string                  `json:"period_start" validate:"omitempty"`
	PeriodEnd      string                  `json:"period_end" validate:"omitempty"`
	OrganizationID string                  `json:"organization_id" validate:"omitempty"`
	LocationID     string                  `json:"location_id" validate:"omitempty"`
	Immunizations  []FullImmunizationInput `json:"immunizations" validate:"omitempty,dive"`
	Observations   []FullObservationInput  `json:"observations" validate:"omitempty,dive"`
}
