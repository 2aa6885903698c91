package fhir_dto

type Practitioner struct {
	ResourceType string       `json:"resourceType,omitempty"`
	ID           string       `json:"id,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Name         []HumanName  `json:"name,omitempty"`
	Extension    []Extension  `json:"extension,omitempty"`
}
