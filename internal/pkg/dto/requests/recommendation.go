package requests

type RecommendationInput struct {
	VaccineCode    string `json:"vaccine_code" validate:"required"`
	VaccineText    string `json:"vaccine_text" validate:"omitempty"`
	DueDate        string `json:"due_date" validate:"required,datetime=2006-01-02"`
	ForecastStatus string `json:"forecast_status" validate:"required"`
	Series         string `json:"series" validate:"omitempty"`
	DoseNumber     string `json:"dose_number" validate:"omitempty"`
}

type CreateRecommendation struct {
	Recommendations []RecommendationInput `json:"recommendations" validate:"required,min=1,dive"`
}
