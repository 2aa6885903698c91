package requests

type CreatePatient struct {
	PatientIdentifier string `json:"patient_identifier" validate:"required"`
	FirstName         string `json:"first_name" validate:"required"`
	LastName          string `json:"last_name" validate:"required"`
	BirthDate         string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender            string `json:"gender" validate:"required,oneof=male female other unknown"`
}

type UpdatePatient struct {
	FirstName string `json:"first_name" validate:"omitempty"`
	LastName  string `json:"last_name" validate:"omitempty"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female other unknown"`
}
