package jwtmanager

import (
	"errors"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager issues and verifies the HS256 session tokens handed out at login.
type JWTManager struct {
	log           *zap.Logger
	secret        string
	expTimeInHour int
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) *JWTManager {
	return &JWTManager{
		log:           log,
		secret:        cfg.JWT.Secret,
		expTimeInHour: cfg.JWT.ExpTimeInHour,
	}
}

// CreateSessionToken signs a token carrying the session identifier.
func (j *JWTManager) CreateSessionToken(sessionID string) (string, error) {
	tokenString, err := utils.GenerateSessionJWT(sessionID, j.secret, j.expTimeInHour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return tokenString, nil
}

// ParseSessionID verifies the token signature and expiry and returns the
// session_id claim.
func (j *JWTManager) ParseSessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(j.secret), nil
	})
	if err != nil || !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return sessionID, nil
}
