package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/delivery/http/middlewares"
	"vaxtrack-service/internal/app/delivery/http/routers"
	"vaxtrack-service/internal/app/drivers/database"
	"vaxtrack-service/internal/app/drivers/logger"
	"vaxtrack-service/internal/app/drivers/messaging"
	"vaxtrack-service/internal/app/services/auth"
	"vaxtrack-service/internal/app/services/dashboard"
	sparkAdverseEvents "vaxtrack-service/internal/app/services/fhir_spark/adverse_events"
	sparkAllergies "vaxtrack-service/internal/app/services/fhir_spark/allergies"
	sparkAppointments "vaxtrack-service/internal/app/services/fhir_spark/appointments"
	sparkEncounters "vaxtrack-service/internal/app/services/fhir_spark/encounters"
	sparkImmunizations "vaxtrack-service/internal/app/services/fhir_spark/immunizations"
	sparkLocations "vaxtrack-service/internal/app/services/fhir_spark/locations"
	sparkObservations "vaxtrack-service/internal/app/services/fhir_spark/observations"
	sparkOrganizations "vaxtrack-service/internal/app/services/fhir_spark/organizations"
	sparkPatients "vaxtrack-service/internal/app/services/fhir_spark/patients"
	sparkPractitioners "vaxtrack-service/internal/app/services/fhir_spark/practitioners"
	sparkRecommendations "vaxtrack-service/internal/app/services/fhir_spark/recommendations"
	sparkRelatedPersons "vaxtrack-service/internal/app/services/fhir_spark/related_persons"
	"vaxtrack-service/internal/app/services/fhir_spark/rest"
	"vaxtrack-service/internal/app/services/practitioners"
	sharedJwt "vaxtrack-service/internal/app/services/shared/jwtmanager"
	sharedRedis "vaxtrack-service/internal/app/services/shared/redis"
	"vaxtrack-service/internal/app/services/shared/reminders"
	"vaxtrack-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	lifecycleLog := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapTheApp(bootstrap, lifecycleLog)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		lifecycleLog.Infof("Server listening on %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			lifecycleLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		lifecycleLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		lifecycleLog.Errorf("Error while closing drivers: %v", err)
	}

	lifecycleLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, lifecycleLog *logrus.Logger) {
	// Shared infrastructure
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	jwtManager := sharedJwt.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)

	reminderPublisher, err := reminders.NewReminderPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.ReminderQueue,
		bootstrap.Logger,
	)
	if err != nil {
		lifecycleLog.Fatalf("Failed to set up reminder publisher: %v", err)
	}

	// FHIR Spark clients share one rate limited rest core
	restClient := rest.NewClient(
		bootstrap.InternalConfig.FHIR.BaseUrl,
		time.Duration(bootstrap.InternalConfig.FHIR.TimeoutInSeconds)*time.Second,
		bootstrap.InternalConfig.FHIR.RequestsPerSecond,
		bootstrap.Logger,
	)
	patientFhirClient := sparkPatients.NewPatientFhirClient(restClient, bootstrap.Logger)
	practitionerFhirClient := sparkPractitioners.NewPractitionerFhirClient(restClient, bootstrap.Logger)
	encounterFhirClient := sparkEncounters.NewEncounterFhirClient(restClient, bootstrap.Logger)
	organizationFhirClient := sparkOrganizations.NewOrganizationFhirClient(restClient, bootstrap.Logger)
	locationFhirClient := sparkLocations.NewLocationFhirClient(restClient, bootstrap.Logger)
	immunizationFhirClient := sparkImmunizations.NewImmunizationFhirClient(restClient, bootstrap.Logger)
	observationFhirClient := sparkObservations.NewObservationFhirClient(restClient, bootstrap.Logger)
	allergyFhirClient := sparkAllergies.NewAllergyFhirClient(restClient, bootstrap.Logger)
	adverseEventFhirClient := sparkAdverseEvents.NewAdverseEventFhirClient(restClient, bootstrap.Logger)
	recommendationFhirClient := sparkRecommendations.NewRecommendationFhirClient(restClient, bootstrap.Logger)
	appointmentFhirClient := sparkAppointments.NewAppointmentFhirClient(restClient, bootstrap.Logger)
	relatedPersonFhirClient := sparkRelatedPersons.NewRelatedPersonFhirClient(restClient, bootstrap.Logger)

	// Users
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		redisRepository,
		practitionerFhirClient,
		jwtManager,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Practitioner
	practitionerUsecase := practitioners.NewPractitionerUsecase(
		practitionerFhirClient,
		patientFhirClient,
		bootstrap.Logger,
	)
	practitionerController := practitioners.NewPractitionerController(bootstrap.Logger, practitionerUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(
		patientFhirClient,
		practitionerFhirClient,
		encounterFhirClient,
		organizationFhirClient,
		locationFhirClient,
		immunizationFhirClient,
		observationFhirClient,
		allergyFhirClient,
		adverseEventFhirClient,
		recommendationFhirClient,
		appointmentFhirClient,
		relatedPersonFhirClient,
		practitionerUsecase,
		reminderPublisher,
		bootstrap.InternalConfig.FHIR.MaxConcurrentFetches,
		bootstrap.Logger,
	)
	dashboardController := dashboard.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	// Middlewares and routes
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		practitionerController,
		dashboardController,
	)
}
