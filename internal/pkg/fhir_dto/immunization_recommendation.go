package fhir_dto

type ImmunizationRecommendation struct {
	ResourceType   string                            `json:"resourceType,omitempty"`
	ID             string                            `json:"id,omitempty"`
	Patient        *Reference                        `json:"patient,omitempty"`
	Date           string                            `json:"date,omitempty"`
	Recommendation []ImmunizationRecommendationEntry `json:"recommendation,omitempty"`
}

type ImmunizationRecommendationEntry struct {
	VaccineCode    []CodeableConcept                         `json:"vaccineCode,omitempty"`
	ForecastStatus *CodeableConcept                          `json:"forecastStatus,omitempty"`
	DateCriterion  []ImmunizationRecommendationDateCriterion `json:"dateCriterion,omitempty"`
	Series         string                                    `json:"series,omitempty"`
	DoseNumber     string                                    `json:"doseNumber,omitempty"`
}

type ImmunizationRecommendationDateCriterion struct {
	Code  *CodeableConcept `json:"code,omitempty"`
	Value string           `json:"value,omitempty"`
}
