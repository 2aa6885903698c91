package dashboard

import (
	"context"
	"strings"
	"time"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/fhir_dto"
	"vaxtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type dashboardUsecase struct {
	PatientFhirClient        contracts.PatientFhirClient
	PractitionerFhirClient   contracts.PractitionerFhirClient
	EncounterFhirClient      contracts.EncounterFhirClient
	OrganizationFhirClient   contracts.OrganizationFhirClient
	LocationFhirClient       contracts.LocationFhirClient
	ImmunizationFhirClient   contracts.ImmunizationFhirClient
	ObservationFhirClient    contracts.ObservationFhirClient
	AllergyFhirClient        contracts.AllergyIntoleranceFhirClient
	AdverseEventFhirClient   contracts.AdverseEventFhirClient
	RecommendationFhirClient contracts.ImmunizationRecommendationFhirClient
	AppointmentFhirClient    contracts.AppointmentFhirClient
	RelatedPersonFhirClient  contracts.RelatedPersonFhirClient
	PractitionerUsecase      contracts.PractitionerUsecase
	ReminderPublisher        contracts.ReminderPublisher
	MaxConcurrentFetches     int
	Log                      *zap.Logger
}

func NewDashboardUsecase(
	patientFhirClient contracts.PatientFhirClient,
	practitionerFhirClient contracts.PractitionerFhirClient,
	encounterFhirClient contracts.EncounterFhirClient,
	organizationFhirClient contracts.OrganizationFhirClient,
	locationFhirClient contracts.LocationFhirClient,
	immunizationFhirClient contracts.ImmunizationFhirClient,
	observationFhirClient contracts.ObservationFhirClient,
	allergyFhirClient contracts.AllergyIntoleranceFhirClient,
	adverseEventFhirClient contracts.AdverseEventFhirClient,
	recommendationFhirClient contracts.ImmunizationRecommendationFhirClient,
	appointmentFhirClient contracts.AppointmentFhirClient,
	relatedPersonFhirClient contracts.RelatedPersonFhirClient,
	practitionerUsecase contracts.PractitionerUsecase,
	reminderPublisher contracts.ReminderPublisher,
	maxConcurrentFetches int,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		PatientFhirClient:        patientFhirClient,
		PractitionerFhirClient:   practitionerFhirClient,
		EncounterFhirClient:      encounterFhirClient,
		OrganizationFhirClient:   organizationFhirClient,
		LocationFhirClient:       locationFhirClient,
		ImmunizationFhirClient:   immunizationFhirClient,
		ObservationFhirClient:    observationFhirClient,
		AllergyFhirClient:        allergyFhirClient,
		AdverseEventFhirClient:   adverseEventFhirClient,
		RecommendationFhirClient: recommendationFhirClient,
		AppointmentFhirClient:    appointmentFhirClient,
		RelatedPersonFhirClient:  relatedPersonFhirClient,
		PractitionerUsecase:      practitionerUsecase,
		ReminderPublisher:        reminderPublisher,
		MaxConcurrentFetches:     maxConcurrentFetches,
		Log:                      logger,
	}
}

func (uc *dashboardUsecase) newResolver() *referenceResolver {
	return newReferenceResolver(
		uc.OrganizationFhirClient,
		uc.LocationFhirClient,
		uc.PractitionerFhirClient,
		uc.PatientFhirClient,
		uc.Log,
	)
}

// BuildOverview aggregates the whole dashboard for one patient. The
// patient read is mandatory: if it fails, nothing else is returned.
// The remaining sections fan out concurrently under one bounded group.
func (uc *dashboardUsecase) BuildOverview(ctx context.Context, patientID string) (*responses.ClinicalOverview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.BuildOverview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientFhirClient.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	resolver := uc.newResolver()
	assembler := newEncounterAssembler(uc.ObservationFhirClient, resolver, uc.Log)

	var (
		relatedPersonDTOs  []responses.RelatedPersonDTO
		encounterBlocks    []responses.EncounterBlock
		allergyDTOs        []responses.AllergyIntoleranceDTO
		recommendationDTOs []responses.RecommendationDTO
		appointmentDTOs    []responses.AppointmentDTO
		adverseEventDTOs   []responses.AdverseEventDTO
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(uc.MaxConcurrentFetches)

	group.Go(func() error {
		relatedPersons, err := uc.RelatedPersonFhirClient.FindRelatedPersonsByPatient(groupCtx, patientID)
		if err != nil {
			return err
		}
		relatedPersonDTOs = make([]responses.RelatedPersonDTO, 0, len(relatedPersons))
		for _, relatedPerson := range relatedPersons {
			relatedPersonDTOs = append(relatedPersonDTOs, mapRelatedPerson(relatedPerson))
		}
		return nil
	})

	group.Go(func() error {
		blocks, err := uc.assembleEncounterBlocks(groupCtx, patientID, assembler)
		if err != nil {
			return err
		}
		encounterBlocks = blocks
		return nil
	})

	group.Go(func() error {
		allergies, err := uc.AllergyFhirClient.FindAllergiesByPatient(groupCtx, patientID)
		if err != nil {
			return err
		}
		allergyDTOs = make([]responses.AllergyIntoleranceDTO, 0, len(allergies))
		for _, allergy := range allergies {
			allergyDTOs = append(allergyDTOs, mapAllergy(allergy))
		}
		return nil
	})

	group.Go(func() error {
		containers, err := uc.RecommendationFhirClient.FindRecommendationsByPatient(groupCtx, patientID)
		if err != nil {
			return err
		}
		recommendationDTOs = mapRecommendations(containers)
		return nil
	})

	group.Go(func() error {
		appointments, err := uc.AppointmentFhirClient.FindAppointmentsByPatient(groupCtx, patientID)
		if err != nil {
			return err
		}
		appointmentDTOs = uc.mapAppointments(groupCtx, resolver, appointments)
		return nil
	})

	group.Go(func() error {
		adverseEvents, err := uc.AdverseEventFhirClient.FindAdverseEventsByPatient(groupCtx, patientID)
		if err != nil {
			return err
		}
		adverseEventDTOs = make([]responses.AdverseEventDTO, 0, len(adverseEvents))
		for _, adverseEvent := range adverseEvents {
			adverseEventDTOs = append(adverseEventDTOs, mapAdverseEvent(adverseEvent))
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	patientDetails := mapPatientDetails(patient)
	patientDetails.RelatedPersons = relatedPersonDTOs

	return &responses.ClinicalOverview{
		Patient:         patientDetails,
		Encounters:      encounterBlocks,
		Allergies:       allergyDTOs,
		AdverseEvents:   adverseEventDTOs,
		Recommendations: recommendationDTOs,
		Appointments:    appointmentDTOs,
	}, nil
}

func (uc *dashboardUsecase) GetEncounterBlocks(ctx context.Context, patientID string) ([]responses.EncounterBlock, error) {
	if _, err := uc.PatientFhirClient.FindPatientByID(ctx, patientID); err != nil {
		return nil, err
	}

	resolver := uc.newResolver()
	assembler := newEncounterAssembler(uc.ObservationFhirClient, resolver, uc.Log)
	return uc.assembleEncounterBlocks(ctx, patientID, assembler)
}

// assembleEncounterBlocks issues the patient-scoped immunization search
// once and shares the result across every encounter block. Blocks are
// written by index so the store's encounter order survives the fan-out.
func (uc *dashboardUsecase) assembleEncounterBlocks(ctx context.Context, patientID string, assembler *encounterAssembler) ([]responses.EncounterBlock, error) {
	encounters, err := uc.EncounterFhirClient.FindEncountersByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	patientImmunizations, err := uc.ImmunizationFhirClient.FindImmunizationsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	blocks := make([]responses.EncounterBlock, len(encounters))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(uc.MaxConcurrentFetches)
	for i, encounter := range encounters {
		i, encounter := i, encounter
		group.Go(func() error {
			block, err := assembler.Assemble(groupCtx, encounter, patientImmunizations)
			if err != nil {
				return err
			}
			blocks[i] = block
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (uc *dashboardUsecase) GetImmunizations(ctx context.Context, patientID string) ([]responses.ImmunizationDTO, error) {
	immunizations, err := uc.ImmunizationFhirClient.FindImmunizationsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	resolver := uc.newResolver()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	dtos := make([]responses.ImmunizationDTO, 0, len(immunizations))
	for _, immunization := range immunizations {
		var performer *fhir_dto.Practitioner
		if len(immunization.Performer) > 0 {
			performer, err = resolver.Practitioner(ctx, immunization.Performer[0].Actor)
			if err != nil {
				uc.Log.Warn("dashboardUsecase.GetImmunizations failed to resolve performer",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				performer = nil
			}
		}
		dtos = append(dtos, mapImmunization(immunization, performer))
	}
	return dtos, nil
}

func (uc *dashboardUsecase) GetAllergies(ctx context.Context, patientID string) ([]responses.AllergyIntoleranceDTO, error) {
	allergies, err := uc.AllergyFhirClient.FindAllergiesByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	dtos := make([]responses.AllergyIntoleranceDTO, 0, len(allergies))
	for _, allergy := range allergies {
		dtos = append(dtos, mapAllergy(allergy))
	}
	return dtos, nil
}

func (uc *dashboardUsecase) GetRecommendations(ctx context.Context, patientID string) ([]responses.RecommendationDTO, error) {
	containers, err := uc.RecommendationFhirClient.FindRecommendationsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return mapRecommendations(containers), nil
}

func (uc *dashboardUsecase) GetAppointments(ctx context.Context, patientID string) ([]responses.AppointmentDTO, error) {
	appointments, err := uc.AppointmentFhirClient.FindAppointmentsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return uc.mapAppointments(ctx, uc.newResolver(), appointments), nil
}

// mapAppointments resolves participant actors to display names. Name
// resolution is enrichment: on failure the participant keeps whatever
// display the reference already carried.
func (uc *dashboardUsecase) mapAppointments(ctx context.Context, resolver *referenceResolver, appointments []fhir_dto.Appointment) []responses.AppointmentDTO {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	dtos := make([]responses.AppointmentDTO, 0, len(appointments))
	for _, appointment := range appointments {
		participants := make([]string, 0, len(appointment.Participant))
		for _, participant := range appointment.Participant {
			if participant.Actor == nil {
				continue
			}
			name := uc.participantName(ctx, resolver, participant.Actor)
			if name == "" {
				uc.Log.Warn("dashboardUsecase could not resolve appointment participant",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingReferenceKey, participant.Actor.Reference),
				)
				continue
			}
			participants = append(participants, name)
		}
		dtos = append(dtos, mapAppointment(appointment, participants))
	}
	return dtos
}

func (uc *dashboardUsecase) participantName(ctx context.Context, resolver *referenceResolver, actor *fhir_dto.Reference) string {
	switch {
	case strings.HasPrefix(actor.Reference, constvars.ResourcePractitioner+"/"):
		practitioner, err := resolver.Practitioner(ctx, actor)
		if err == nil && practitioner != nil {
			return utils.GetFullName(practitioner.Name)
		}
	case strings.HasPrefix(actor.Reference, constvars.ResourcePatient+"/"):
		patient, err := resolver.Patient(ctx, actor)
		if err == nil && patient != nil {
			return utils.GetFullName(patient.Name)
		}
	}
	return actor.Display
}

func (uc *dashboardUsecase) GetAdverseEvents(ctx context.Context, patientID string) ([]responses.AdverseEventDTO, error) {
	adverseEvents, err := uc.AdverseEventFhirClient.FindAdverseEventsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	dtos := make([]responses.AdverseEventDTO, 0, len(adverseEvents))
	for _, adverseEvent := range adverseEvents {
		dtos = append(dtos, mapAdverseEvent(adverseEvent))
	}
	return dtos, nil
}

// GetAdverseEventsForEncounter narrows the patient-scoped search
// locally; the store is never asked for an encounter-scoped search it
// may not support.
func (uc *dashboardUsecase) GetAdverseEventsForEncounter(ctx context.Context, patientID, encounterID string) ([]responses.AdverseEventDTO, error) {
	adverseEvents, err := uc.AdverseEventFhirClient.FindAdverseEventsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	dtos := make([]responses.AdverseEventDTO, 0)
	for _, adverseEvent := range adverseEvents {
		if adverseEvent.Encounter == nil {
			continue
		}
		if utils.ReferenceID(adverseEvent.Encounter.Reference) != encounterID {
			continue
		}
		dtos = append(dtos, mapAdverseEvent(adverseEvent))
	}
	return dtos, nil
}

func (uc *dashboardUsecase) GetRelatedPersons(ctx context.Context, patientID string) ([]responses.RelatedPersonDTO, error) {
	relatedPersons, err := uc.RelatedPersonFhirClient.FindRelatedPersonsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	dtos := make([]responses.RelatedPersonDTO, 0, len(relatedPersons))
	for _, relatedPerson := range relatedPersons {
		dtos = append(dtos, mapRelatedPerson(relatedPerson))
	}
	return dtos, nil
}

// CreateImmunization records a vaccination performed by the calling
// practitioner. A caller-supplied id turns the write into an upsert.
func (uc *dashboardUsecase) CreateImmunization(ctx context.Context, identityToken, patientID string, request *requests.CreateImmunization) (*responses.ImmunizationDTO, error) {
	currentPractitioner, err := uc.PractitionerUsecase.CurrentPractitioner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	immunization := &fhir_dto.Immunization{
		ResourceType: constvars.ResourceImmunization,
		Status:       constvars.FhirImmunizationStatusCompleted,
		VaccineCode: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System: constvars.FhirSystemCvx,
				Code:   request.VaccineCode,
			}},
			Text: request.VaccineText,
		},
		Patient: &fhir_dto.Reference{
			Reference: utils.BuildReference(constvars.ResourcePatient, patientID),
		},
		OccurrenceDateTime: request.OccurrenceDateTime,
		Performer: []fhir_dto.ImmunizationPerformer{{
			Actor: &fhir_dto.Reference{
				Reference: utils.BuildReference(constvars.ResourcePractitioner, currentPractitioner.ID),
				Display:   utils.GetFullName(currentPractitioner.Name),
			},
		}},
	}
	if request.EncounterID != "" {
		immunization.Encounter = &fhir_dto.Reference{
			Reference: utils.BuildReference(constvars.ResourceEncounter, request.EncounterID),
		}
	}

	var created *fhir_dto.Immunization
	if request.ImmunizationID != "" {
		immunization.ID = request.ImmunizationID
		created, err = uc.ImmunizationFhirClient.UpdateImmunization(ctx, immunization)
	} else {
		created, err = uc.ImmunizationFhirClient.CreateImmunization(ctx, immunization)
	}
	if err != nil {
		return nil, err
	}

	dto := mapImmunization(*created, currentPractitioner)
	return &dto, nil
}

// CreateRecommendation writes one recommendation container and then
// publishes a due-date reminder per row. Publishing is best effort:
// the container is already stored and the response must not fail.
func (uc *dashboardUsecase) CreateRecommendation(ctx context.Context, patientID string, request *requests.CreateRecommendation) ([]responses.RecommendationDTO, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	entries := make([]fhir_dto.ImmunizationRecommendationEntry, 0, len(request.Recommendations))
	for _, input := range request.Recommendations {
		entries = append(entries, fhir_dto.ImmunizationRecommendationEntry{
			VaccineCode: []fhir_dto.CodeableConcept{{
				Coding: []fhir_dto.Coding{{
					System: constvars.FhirSystemCvx,
					Code:   input.VaccineCode,
				}},
				Text: input.VaccineText,
			}},
			ForecastStatus: &fhir_dto.CodeableConcept{Text: input.ForecastStatus},
			DateCriterion: []fhir_dto.ImmunizationRecommendationDateCriterion{{
				Code:  &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: constvars.FhirDateCriterionDueDate}}},
				Value: input.DueDate,
			}},
			Series:     input.Series,
			DoseNumber: input.DoseNumber,
		})
	}

	container := &fhir_dto.ImmunizationRecommendation{
		ResourceType: constvars.ResourceImmunizationRecommendation,
		Patient: &fhir_dto.Reference{
			Reference: utils.BuildReference(constvars.ResourcePatient, patientID),
		},
		Date:           time.Now().Format(time.RFC3339),
		Recommendation: entries,
	}

	created, err := uc.RecommendationFhirClient.CreateRecommendation(ctx, container)
	if err != nil {
		return nil, err
	}

	for _, input := range request.Recommendations {
		message := contracts.ReminderMessage{
			PatientID:   patientID,
			VaccineCode: input.VaccineCode,
			VaccineText: input.VaccineText,
			DueDate:     input.DueDate,
		}
		if err := uc.ReminderPublisher.PublishDueReminder(ctx, message); err != nil {
			uc.Log.Error("dashboardUsecase.CreateRecommendation failed to publish reminder",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.Error(err),
			)
		}
	}

	return mapRecommendations([]fhir_dto.ImmunizationRecommendation{*created}), nil
}

func (uc *dashboardUsecase) CreateAppointment(ctx context.Context, identityToken, patientID string, request *requests.CreateAppointment) (*responses.AppointmentDTO, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	currentPractitioner, err := uc.PractitionerUsecase.CurrentPractitioner(ctx, identityToken)
	if err != nil {
		return nil, err
	}
	patient, err := uc.PatientFhirClient.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	description := request.Description
	if request.LocationID != "" {
		location, err := uc.LocationFhirClient.FindLocationByID(ctx, request.LocationID)
		if err != nil {
			uc.Log.Warn("dashboardUsecase.CreateAppointment failed to resolve location",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceIDKey, request.LocationID),
				zap.Error(err),
			)
		} else if location.Name != "" {
			description = location.Name
		}
	}

	appointment := &fhir_dto.Appointment{
		ResourceType: constvars.ResourceAppointment,
		Status:       constvars.FhirAppointmentStatusBooked,
		Start:        request.Start,
		End:          request.End,
		Description:  description,
		Participant: []fhir_dto.AppointmentParticipant{
			{
				Actor: &fhir_dto.Reference{
					Reference: utils.BuildReference(constvars.ResourcePatient, patient.ID),
					Display:   utils.GetFullName(patient.Name),
				},
				Status: "accepted",
			},
			{
				Actor: &fhir_dto.Reference{
					Reference: utils.BuildReference(constvars.ResourcePractitioner, currentPractitioner.ID),
					Display:   utils.GetFullName(currentPractitioner.Name),
				},
				Status: "accepted",
			},
		},
	}
	if request.ReasonText != "" {
		appointment.Reason = []fhir_dto.CodeableReference{{
			Concept: &fhir_dto.CodeableConcept{Text: request.ReasonText},
		}}
	}

	created, err := uc.AppointmentFhirClient.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	dtos := uc.mapAppointments(ctx, uc.newResolver(), []fhir_dto.Appointment{*created})
	return &dtos[0], nil
}

func (uc *dashboardUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) (*responses.AppointmentDTO, error) {
	appointment, err := uc.AppointmentFhirClient.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	appointment.Status = status
	updated, err := uc.AppointmentFhirClient.UpdateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	dtos := uc.mapAppointments(ctx, uc.newResolver(), []fhir_dto.Appointment{*updated})
	return &dtos[0], nil
}

func (uc *dashboardUsecase) CreateAdverseEvent(ctx context.Context, patientID string, request *requests.CreateAdverseEvent) (*responses.AdverseEventDTO, error) {
	recordedDate := request.RecordedDate
	if recordedDate == "" {
		recordedDate = time.Now().Format(time.RFC3339)
	}

	adverseEvent := &fhir_dto.AdverseEvent{
		ResourceType: constvars.ResourceAdverseEvent,
		Status:       constvars.FhirImmunizationStatusCompleted,
		Subject: &fhir_dto.Reference{
			Reference: utils.BuildReference(constvars.ResourcePatient, patientID),
		},
		Category:     []fhir_dto.CodeableConcept{{Text: request.Category}},
		RecordedDate: recordedDate,
	}
	if request.Outcome != "" {
		adverseEvent.Outcome = []fhir_dto.CodeableConcept{{Text: request.Outcome}}
	}
	if request.EncounterID != "" {
		adverseEvent.Encounter = &fhir_dto.Reference{
			Reference: utils.BuildReference(constvars.ResourceEncounter, request.EncounterID),
		}
	}
	if request.ImmunizationID != "" {
		adverseEvent.SuspectEntity = []fhir_dto.AdverseEventSuspectEntity{{
			InstanceReference: &fhir_dto.Reference{
				Reference: utils.BuildReference(constvars.ResourceImmunization, request.ImmunizationID),
			},
		}}
	}

	created, err := uc.AdverseEventFhirClient.CreateAdverseEvent(ctx, adverseEvent)
	if err != nil {
		return nil, err
	}
	dto := mapAdverseEvent(*created)
	return &dto, nil
}

// CreateFullEncounter writes the encounter first and then its
// immunizations and observations, all as upserts at caller-chosen
// ids. The sequence is deliberately not atomic: a failure partway
// returns the error and leaves the earlier writes in place.
func (uc *dashboardUsecase) CreateFullEncounter(ctx context.Context, patientID string, request *requests.CreateFullEncounter) (*responses.CreateFullEncounterResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.CreateFullEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingEncounterIDKey, request.EncounterID),
	)

	encounter := &fhir_dto.Encounter{
		ResourceType: constvars.ResourceEncounter,
		ID:           request.EncounterID,
		Status:       request.Status,
		Subject: &fhir_dto.Reference{
			Reference: utils.BuildReference(constvars.ResourcePatient, patientID),
		},
	}
	if request.PeriodStart != "" || request.PeriodEnd != "" {
		encounter.ActualPeriod = &fhir_dto.Period{
			Start: request.PeriodStart,
			End:   request.PeriodEnd,
		}
	}
	if request.OrganizationID != "" {
		encounter.ServiceProvider = &fhir_dto.Reference{
			Reference: utils.BuildReference(constvars.ResourceOrganization, request.OrganizationID),
		}
	}
	if request.LocationID != "" {
		encounter.Location = []fhir_dto.EncounterLocation{{
			Location: &fhir_dto.Reference{
				Reference: utils.BuildReference(constvars.ResourceLocation, request.LocationID),
			},
		}}
	}

	createdEncounter, err := uc.EncounterFhirClient.UpdateEncounter(ctx, encounter)
	if err != nil {
		return nil, err
	}

	result := &responses.CreateFullEncounterResult{
		EncounterID:     createdEncounter.ID,
		ImmunizationIDs: make([]string, 0, len(request.Immunizations)),
		ObservationIDs:  make([]string, 0, len(request.Observations)),
	}

	encounterRef := &fhir_dto.Reference{
		Reference: utils.BuildReference(constvars.ResourceEncounter, createdEncounter.ID),
	}
	patientRef := &fhir_dto.Reference{
		Reference: utils.BuildReference(constvars.ResourcePatient, patientID),
	}

	for _, input := range request.Immunizations {
		immunization := &fhir_dto.Immunization{
			ResourceType: constvars.ResourceImmunization,
			ID:           input.ImmunizationID,
			Status:       constvars.FhirImmunizationStatusCompleted,
			VaccineCode: &fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{{
					System: constvars.FhirSystemCvx,
					Code:   input.VaccineCode,
				}},
				Text: input.VaccineText,
			},
			Patient:            patientRef,
			Encounter:          encounterRef,
			OccurrenceDateTime: input.OccurrenceDateTime,
		}
		created, err := uc.ImmunizationFhirClient.UpdateImmunization(ctx, immunization)
		if err != nil {
			return nil, err
		}
		result.ImmunizationIDs = append(result.ImmunizationIDs, created.ID)
	}

	for _, input := range request.Observations {
		observation := &fhir_dto.Observation{
			ResourceType: constvars.ResourceObservation,
			ID:           input.ObservationID,
			Status:       constvars.FhirObservationStatusFinal,
			Code:         &fhir_dto.CodeableConcept{Text: input.CodeText},
			Subject:      patientRef,
			Encounter:    encounterRef,
		}
		if input.ValueQuantity != 0 {
			observation.ValueQuantity = &fhir_dto.Quantity{
				Value: input.ValueQuantity,
				Unit:  input.ValueUnit,
			}
		} else {
			observation.ValueString = input.ValueString
		}
		created, err := uc.ObservationFhirClient.UpdateObservation(ctx, observation)
		if err != nil {
			return nil, err
		}
		result.ObservationIDs = append(result.ObservationIDs, created.ID)
	}

	return result, nil
}

func (uc *dashboardUsecase) CreateRelatedPerson(ctx context.Context, patientID string, request *requests.CreateRelatedPerson) (*responses.RelatedPersonDTO, error) {
	relatedPerson := uc.buildRelatedPerson(patientID, request)

	created, err := uc.RelatedPersonFhirClient.CreateRelatedPerson(ctx, relatedPerson)
	if err != nil {
		return nil, err
	}
	dto := mapRelatedPerson(*created)
	return &dto, nil
}

// UpdateRelatedPerson replaces the resource but keeps its link to the
// patient, which the request body does not carry.
func (uc *dashboardUsecase) UpdateRelatedPerson(ctx context.Context, relatedPersonID string, request *requests.CreateRelatedPerson) (*responses.RelatedPersonDTO, error) {
	existing, err := uc.RelatedPersonFhirClient.FindRelatedPersonByID(ctx, relatedPersonID)
	if err != nil {
		return nil, err
	}

	relatedPerson := uc.buildRelatedPerson("", request)
	relatedPerson.ID = relatedPersonID
	relatedPerson.Patient = existing.Patient

	updated, err := uc.RelatedPersonFhirClient.UpdateRelatedPerson(ctx, relatedPerson)
	if err != nil {
		return nil, err
	}
	dto := mapRelatedPerson(*updated)
	return &dto, nil
}

func (uc *dashboardUsecase) buildRelatedPerson(patientID string, request *requests.CreateRelatedPerson) *fhir_dto.RelatedPerson {
	relatedPerson := &fhir_dto.RelatedPerson{
		ResourceType: constvars.ResourceRelatedPerson,
		Relationship: []fhir_dto.CodeableConcept{{
			Coding: []fhir_dto.Coding{{
				System: constvars.FhirSystemRoleCode,
				Code:   request.Relationship,
			}},
		}},
		Name: []fhir_dto.HumanName{{
			Given:  []string{request.FirstName},
			Family: request.LastName,
		}},
	}
	if patientID != "" {
		relatedPerson.Patient = &fhir_dto.Reference{
			Reference: utils.BuildReference(constvars.ResourcePatient, patientID),
		}
	}
	if request.Phone != "" {
		relatedPerson.Telecom = append(relatedPerson.Telecom, fhir_dto.ContactPoint{
			System: fhir_dto.ContactPointSystemPhone,
			Value:  request.Phone,
		})
	}
	if request.Email != "" {
		relatedPerson.Telecom = append(relatedPerson.Telecom, fhir_dto.ContactPoint{
			System: fhir_dto.ContactPointSystemEmail,
			Value:  request.Email,
		})
	}
	if request.Address != "" {
		relatedPerson.Address = []fhir_dto.Address{{Text: request.Address}}
	}
	return relatedPerson
}
