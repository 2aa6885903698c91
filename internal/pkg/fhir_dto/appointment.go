package fhir_dto

type Appointment struct {
	ResourceType string                   `json:"resourceType,omitempty"`
	ID           string                   `json:"id,omitempty"`
	Status       string                   `json:"status,omitempty"`
	Start        string                   `json:"start,omitempty"`
	End          string                   `json:"end,omitempty"`
	Description  string                   `json:"description,omitempty"`
	Reason       []CodeableReference      `json:"reason,omitempty"`
	Participant  []AppointmentParticipant `json:"participant,omitempty"`
}

type AppointmentParticipant struct {
	Actor  *Reference `json:"actor,omitempty"`
	Status string     `json:"status,omitempty"`
}
