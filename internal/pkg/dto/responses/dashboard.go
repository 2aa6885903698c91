package responses

type PatientDetails struct {
	ID             string             `json:"id"`
	Identifier     string             `json:"identifier,omitempty"`
	FirstName      string             `json:"first_name,omitempty"`
	LastName       string             `json:"last_name,omitempty"`
	BirthDate      string             `json:"birth_date,omitempty"`
	Gender         string             `json:"gender,omitempty"`
	RelatedPersons []RelatedPersonDTO `json:"related_persons,omitempty"`
}

type RelatedPersonDTO struct {
	ID           string `json:"id"`
	Relationship string `json:"relationship,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
}

type OrganizationDTO struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type LocationDTO struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name,omitempty"`
	Description          string           `json:"description,omitempty"`
	Address              string           `json:"address,omitempty"`
	ManagingOrganization *OrganizationDTO `json:"managing_organization,omitempty"`
}

type PractitionerDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name,omitempty"`
}

type ImmunizationDTO struct {
	ID                 string           `json:"id"`
	Status             string           `json:"status,omitempty"`
	VaccineCode        string           `json:"vaccine_code,omitempty"`
	VaccineText        string           `json:"vaccine_text,omitempty"`
	OccurrenceDateTime string           `json:"occurrence_date_time,omitempty"`
	Performer          *PractitionerDTO `json:"performer,omitempty"`
}

type ObservationDTO struct {
	ID                string `json:"id"`
	Status            string `json:"status,omitempty"`
	Code              string `json:"code,omitempty"`
	EffectiveDateTime string `json:"effective_date_time,omitempty"`
	Value             string `json:"value,omitempty"`
}

type EncounterDTO struct {
	ID              string           `json:"id"`
	Status          string           `json:"status,omitempty"`
	PeriodStart     string           `json:"period_start,omitempty"`
	PeriodEnd       string           `json:"period_end,omitempty"`
	ServiceProvider *OrganizationDTO `json:"service_provider,omitempty"`
	Location        *LocationDTO     `json:"location,omitempty"`
}

type ImmunizationBlock struct {
	Immunization ImmunizationDTO `json:"immunization"`
}

type EncounterBlock struct {
	Encounter     EncounterDTO        `json:"encounter"`
	Immunizations []ImmunizationBlock `json:"immunizations"`
	Observations  []ObservationDTO    `json:"observations"`
}

type AllergyIntoleranceDTO struct {
	ID                 string `json:"id"`
	ClinicalStatus     string `json:"clinical_status,omitempty"`
	VerificationStatus string `json:"verification_status,omitempty"`
	Criticality        string `json:"criticality,omitempty"`
	Code               string `json:"code,omitempty"`
	ReactionDesc       string `json:"reaction_description,omitempty"`
}

type AdverseEventDTO struct {
	ID             string `json:"id"`
	Status         string `json:"status,omitempty"`
	Category       string `json:"category,omitempty"`
	Outcome        string `json:"outcome,omitempty"`
	RecordedDate   string `json:"recorded_date,omitempty"`
	ImmunizationID string `json:"immunization_id,omitempty"`
}

type RecommendationDTO struct {
	VaccineCode    string `json:"vaccine_code,omitempty"`
	VaccineText    string `json:"vaccine_text,omitempty"`
	DueDate        string `json:"due_date,omitempty"`
	ForecastStatus string `json:"forecast_status,omitempty"`
	Series         string `json:"series,omitempty"`
	DoseNumber     *int   `json:"dose_number,omitempty"`
}

type AppointmentDTO struct {
	ID           string   `json:"id"`
	Status       string   `json:"status,omitempty"`
	Start        string   `json:"start,omitempty"`
	End          string   `json:"end,omitempty"`
	Reason       string   `json:"reason,omitempty"`
	Description  string   `json:"description,omitempty"`
	Participants []string `json:"participants,omitempty"`
}

type ClinicalOverview struct {
	Patient         PatientDetails          `json:"patient"`
	Encounters      []EncounterBlock        `json:"encounters"`
	Allergies       []AllergyIntoleranceDTO `json:"allergies"`
	AdverseEvents   []AdverseEventDTO       `json:"adverse_events"`
	Recommendations []RecommendationDTO     `json:"recommendations"`
	Appointments    []AppointmentDTO        `json:"appointments"`
}

type CreatedResource struct {
	ID string `json:"id"`
}

type CreateFullEncounterResult struct {
	EncounterID     string   `json:"encounter_id"`
	ImmunizationIDs []string `json:"immunization_ids,omitempty"`
	ObservationIDs  []string `json:"observation_ids,omitempty"`
}
