package requests

type CreateRelatedPerson struct {
	Relationship string `json:"relationship" validate:"required"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Phone        string `json:"phone" validate:"omitempty"`
	Email        string `json:"email" validate:"omitempty,email"`
	Address      string `json:"address" validate:"omitempty"`
}
