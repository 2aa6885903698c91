package fhir_dto

import "encoding/json"

type Bundle struct {
	ResourceType string        `json:"resourceType,omitempty"`
	Type         string        `json:"type,omitempty"`
	Total        int           `json:"total,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleEntry struct {
	FullUrl  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
}

type OperationOutcome struct {
	ResourceType string                  `json:"resourceType,omitempty"`
	Issue        []OperationOutcomeIssue `json:"issue,omitempty"`
}

type OperationOutcomeIssue struct {
	Severity    string `json:"severity,omitempty"`
	Code        string `json:"code,omitempty"`
	Diagnostics string `json:"diagnostics,omitempty"`
}
