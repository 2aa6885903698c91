package fhir_dto

type AdverseEvent struct {
	ResourceType  string                      `json:"resourceType,omitempty"`
	ID            string                      `json:"id,omitempty"`
	Status        string                      `json:"status,omitempty"`
	Subject       *Reference                  `json:"subject,omitempty"`
	Encounter     *Reference                  `json:"encounter,omitempty"`
	Category      []CodeableConcept           `json:"category,omitempty"`
	Outcome       []CodeableConcept           `json:"outcome,omitempty"`
	RecordedDate  string                      `json:"recordedDate,omitempty"`
	SuspectEntity []AdverseEventSuspectEntity `json:"suspectEntity,omitempty"`
}

type AdverseEventSuspectEntity struct {
	InstanceReference *Reference `json:"instanceReference,omitempty"`
}
