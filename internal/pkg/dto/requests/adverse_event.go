package requests

type CreateAdverseEvent struct {
	Category       string `json:"category" validate:"required"`
	Outcome        string `json:"outcome" validate:"omitempty"`
	RecordedDate   string `json:"recorded_date" validate:"omitempty"`
	EncounterID    string `json:"encounter_id" validate:"omitempty"`
	ImmunizationID string `json:"immunization_id" validate:"omitempty"`
}
