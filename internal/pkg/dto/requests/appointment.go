package requests

type CreateAppointment struct {
	Start       string `json:"start" validate:"required"`
	End         string `json:"end" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
	ReasonText  string `json:"reason_text" validate:"omitempty"`
	LocationID  string `json:"location_id" validate:"omitempty"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=proposed pending booked arrived fulfilled cancelled noshow"`
}
