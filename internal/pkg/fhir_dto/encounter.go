package fhir_dto

type Encounter struct {
	ResourceType    string                 `json:"resourceType,omitempty"`
	ID              string                 `json:"id,omitempty"`
	Status          string                 `json:"status,omitempty"`
	Subject         *Reference             `json:"subject,omitempty"`
	ActualPeriod    *Period                `json:"actualPeriod,omitempty"`
	ServiceProvider *Reference             `json:"serviceProvider,omitempty"`
	Participant     []EncounterParticipant `json:"participant,omitempty"`
	Location        []EncounterLocation    `json:"location,omitempty"`
}

type EncounterParticipant struct {
	Actor *Reference `json:"actor,omitempty"`
}

type EncounterLocation struct {
	Location *Reference `json:"location,omitempty"`
}
