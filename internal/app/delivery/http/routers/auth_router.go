package routers

import (
	"vaxtrack-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *auth.AuthController) {
	router.Post("/register", authController.RegisterPractitioner)
	router.Post("/login", authController.LoginPractitioner)
	router.Post("/logout", authController.LogoutPractitioner)
}
