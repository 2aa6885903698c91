package middlewares

import (
	"context"
	"net/http"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token into the identity token of the
// logged in practitioner and stores it in the request context. Requests
// without a valid session never reach the protected handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearerToken := r.Header.Get(constvars.HeaderAuthorization)
		if bearerToken == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		identityToken, err := m.AuthUsecase.ResolveIdentity(r.Context(), bearerToken)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_TOKEN_KEY, identityToken)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
