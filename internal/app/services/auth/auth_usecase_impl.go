package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/app/services/shared/jwtmanager"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/fhir_dto"
	"vaxtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	UserRepository         contracts.UserRepository
	RedisRepository        contracts.RedisRepository
	PractitionerFhirClient contracts.PractitionerFhirClient
	JWTManager             *jwtmanager.JWTManager
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	practitionerFhirClient contracts.PractitionerFhirClient,
	jwtManager *jwtmanager.JWTManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:         userRepository,
		RedisRepository:        redisRepository,
		PractitionerFhirClient: practitionerFhirClient,
		JWTManager:             jwtManager,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// Register creates the Practitioner resource on the FHIR store first and
// only then persists the credential document. A username collision is
// rejected before anything is written upstream.
func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterPractitioner) (*responses.RegisterPractitioner, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("username", request.Username),
	)

	existing, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	practitioner := &fhir_dto.Practitioner{
		ResourceType: constvars.ResourcePractitioner,
		Identifier: []fhir_dto.Identifier{{
			System: constvars.FhirSystemPractitionerIdentity,
			Value:  request.Identifier,
		}},
		Name: []fhir_dto.HumanName{{
			Given:  []string{request.FirstName},
			Family: request.LastName,
		}},
	}
	created, err := uc.PractitionerFhirClient.CreatePractitioner(ctx, practitioner)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Username:               request.Username,
		Password:               string(hashedPassword),
		PractitionerID:         created.ID,
		PractitionerIdentifier: request.Identifier,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.UserRepository.Insert(ctx, user); err != nil {
		return nil, err
	}

	return &responses.RegisterPractitioner{
		PractitionerID: created.ID,
		Username:       request.Username,
	}, nil
}

// Login verifies credentials and opens a server side session in Redis.
// The returned JWT only carries the session identifier, never the
// practitioner identity itself.
func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginPractitioner) (*responses.LoginPractitioner, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("username", request.Username),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(err)
	}

	sessionID := utils.GenerateSessionID()
	sessionKey := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.RedisRepository.Set(ctx, sessionKey, user.PractitionerIdentifier, sessionTTL); err != nil {
		return nil, err
	}

	token, err := uc.JWTManager.CreateSessionToken(sessionID)
	if err != nil {
		return nil, err
	}
	return &responses.LoginPractitioner{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, bearerToken string) error {
	sessionID, err := uc.sessionIDFromBearer(bearerToken)
	if err != nil {
		return err
	}
	return uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.SessionKeyFormat, sessionID))
}

// ResolveIdentity turns a bearer token into the identity token stored for
// the session. An expired or deleted session resolves to nothing.
func (uc *authUsecase) ResolveIdentity(ctx context.Context, bearerToken string) (string, error) {
	sessionID, err := uc.sessionIDFromBearer(bearerToken)
	if err != nil {
		return "", err
	}

	identityToken, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.SessionKeyFormat, sessionID))
	if err != nil {
		return "", err
	}
	if identityToken == "" {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return identityToken, nil
}

func (uc *authUsecase) sessionIDFromBearer(bearerToken string) (string, error) {
	if bearerToken == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(bearerToken, constvars.BearerTokenPrefix))
	if tokenString == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return uc.JWTManager.ParseSessionID(tokenString)
}
