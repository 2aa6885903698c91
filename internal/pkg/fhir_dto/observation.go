package fhir_dto

type Observation struct {
	ResourceType      string           `json:"resourceType,omitempty"`
	ID                string           `json:"id,omitempty"`
	Status            string           `json:"status,omitempty"`
	Code              *CodeableConcept `json:"code,omitempty"`
	Subject           *Reference       `json:"subject,omitempty"`
	Encounter         *Reference       `json:"encounter,omitempty"`
	EffectiveDateTime string           `json:"effectiveDateTime,omitempty"`
	ValueQuantity     *Quantity        `json:"valueQuantity,omitempty"`
	ValueString       string           `json:"valueString,omitempty"`
}
