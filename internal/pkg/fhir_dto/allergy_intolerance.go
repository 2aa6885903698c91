package fhir_dto

type AllergyIntolerance struct {
	ResourceType       string                       `json:"resourceType,omitempty"`
	ID                 string                       `json:"id,omitempty"`
	ClinicalStatus     *CodeableConcept             `json:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept             `json:"verificationStatus,omitempty"`
	Criticality        string                       `json:"criticality,omitempty"`
	Code               *CodeableConcept             `json:"code,omitempty"`
	Patient            *Reference                   `json:"patient,omitempty"`
	Reaction           []AllergyIntoleranceReaction `json:"reaction,omitempty"`
}

type AllergyIntoleranceReaction struct {
	Description string `json:"description,omitempty"`
}
