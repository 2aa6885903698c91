package responses

type RegisterPractitioner struct {
	PractitionerID string `json:"practitioner_id"`
	Username       string `json:"username"`
}

type LoginPractitioner struct {
	Token string `json:"token"`
}
