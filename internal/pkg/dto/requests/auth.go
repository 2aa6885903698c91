package requests

type RegisterPractitioner struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=8"`
	Identifier string `json:"identifier" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
}

type LoginPractitioner struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
