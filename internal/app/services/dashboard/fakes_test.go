package dashboard

import (
	"context"
	"sync/atomic"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/fhir_dto"
)

// Function-field fakes for the FHIR client contracts. Each fake counts
// its calls so tests can assert how often the upstream store was hit.

type fakePatientClient struct {
	findByID    func(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	findByIDHit int32
}

func (f *fakePatientClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	atomic.AddInt32(&f.findByIDHit, 1)
	if f.findByID == nil {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, "Patient")
	}
	return f.findByID(ctx, patientID)
}

func (f *fakePatientClient) FindPatientsByGeneralPractitioner(ctx context.Context, practitionerRef string) ([]fhir_dto.Patient, error) {
	return []fhir_dto.Patient{}, nil
}

func (f *fakePatientClient) FindPatientsByGeneralPractitionerAndIdentifier(ctx context.Context, practitionerRef, system, value string) ([]fhir_dto.Patient, error) {
	return []fhir_dto.Patient{}, nil
}

func (f *fakePatientClient) CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	return patient, nil
}

func (f *fakePatientClient) UpdatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	return patient, nil
}

type fakePractitionerClient struct {
	findByID    func(ctx context.Context, practitionerID string) (*fhir_dto.Practitioner, error)
	findByIDHit int32
}

func (f *fakePractitionerClient) FindPractitionerByID(ctx context.Context, practitionerID string) (*fhir_dto.Practitioner, error) {
	atomic.AddInt32(&f.findByIDHit, 1)
	if f.findByID == nil {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, "Practitioner")
	}
	return f.findByID(ctx, practitionerID)
}

func (f *fakePractitionerClient) FindPractitionersByIdentifier(ctx context.Context, system, value string) ([]fhir_dto.Practitioner, error) {
	return []fhir_dto.Practitioner{}, nil
}

func (f *fakePractitionerClient) CreatePractitioner(ctx context.Context, practitioner *fhir_dto.Practitioner) (*fhir_dto.Practitioner, error) {
	return practitioner, nil
}

type fakeEncounterClient struct {
	findByPatient func(ctx context.Context, patientID string) ([]fhir_dto.Encounter, error)
	update        func(ctx context.Context, encounter *fhir_dto.Encounter) (*fhir_dto.Encounter, error)
}

func (f *fakeEncounterClient) FindEncountersByPatient(ctx context.Context, patientID string) ([]fhir_dto.Encounter, error) {
	if f.findByPatient == nil {
		return []fhir_dto.Encounter{}, nil
	}
	return f.findByPatient(ctx, patientID)
}

func (f *fakeEncounterClient) UpdateEncounter(ctx context.Context, encounter *fhir_dto.Encounter) (*fhir_dto.Encounter, error) {
	if f.update == nil {
		return encounter, nil
	}
	return f.update(ctx, encounter)
}

type fakeOrganizationClient struct {
	findByID    func(ctx context.Context, organizationID string) (*fhir_dto.Organization, error)
	findByIDHit int32
}

func (f *fakeOrganizationClient) FindOrganizationByID(ctx context.Context, organizationID string) (*fhir_dto.Organization, error) {
	atomic.AddInt32(&f.findByIDHit, 1)
	if f.findByID == nil {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, "Organization")
	}
	return f.findByID(ctx, organizationID)
}

type fakeLocationClient struct {
	findByID func(ctx context.Context, locationID string) (*fhir_dto.Location, error)
}

func (f *fakeLocationClient) FindLocationByID(ctx context.Context, locationID string) (*fhir_dto.Location, error) {
	if f.findByID == nil {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, "Location")
	}
	return f.findByID(ctx, locationID)
}

type fakeImmunizationClient struct {
	findByPatient    func(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error)
	create           func(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error)
	update           func(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error)
	findByPatientHit int32
}

func (f *fakeImmunizationClient) FindImmunizationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error) {
	atomic.AddInt32(&f.findByPatientHit, 1)
	if f.findByPatient == nil {
		return []fhir_dto.Immunization{}, nil
	}
	return f.findByPatient(ctx, patientID)
}

func (f *fakeImmunizationClient) CreateImmunization(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error) {
	if f.create == nil {
		immunization.ID = "imm-created"
		return immunization, nil
	}
	return f.create(ctx, immunization)
}

func (f *fakeImmunizationClient) UpdateImmunization(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error) {
	if f.update == nil {
		return immunization, nil
	}
	return f.update(ctx, immunization)
}

type fakeObservationClient struct {
	findByEncounter func(ctx context.Context, encounterID string) ([]fhir_dto.Observation, error)
	update          func(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error)
}

func (f *fakeObservationClient) FindObservationsByEncounter(ctx context.Context, encounterID string) ([]fhir_dto.Observation, error) {
	if f.findByEncounter == nil {
		return []fhir_dto.Observation{}, nil
	}
	return f.findByEncounter(ctx, encounterID)
}

func (f *fakeObservationClient) CreateObservation(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error) {
	observation.ID = "obs-created"
	return observation, nil
}

func (f *fakeObservationClient) UpdateObservation(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error) {
	if f.update == nil {
		return observation, nil
	}
	return f.update(ctx, observation)
}

type fakeAllergyClient struct {
	findByPatient func(ctx context.Context, patientID string) ([]fhir_dto.AllergyIntolerance, error)
}

func (f *fakeAllergyClient) FindAllergiesByPatient(ctx context.Context, patientID string) ([]fhir_dto.AllergyIntolerance, error) {
	if f.findByPatient == nil {
		return []fhir_dto.AllergyIntolerance{}, nil
	}
	return f.findByPatient(ctx, patientID)
}

type fakeAdverseEventClient struct {
	findByPatient func(ctx context.Context, patientID string) ([]fhir_dto.AdverseEvent, error)
	create        func(ctx context.Context, adverseEvent *fhir_dto.AdverseEvent) (*fhir_dto.AdverseEvent, error)
}

func (f *fakeAdverseEventClient) FindAdverseEventsByPatient(ctx context.Context, patientID string) ([]fhir_dto.AdverseEvent, error) {
	if f.findByPatient == nil {
		return []fhir_dto.AdverseEvent{}, nil
	}
	return f.findByPatient(ctx, patientID)
}

func (f *fakeAdverseEventClient) CreateAdverseEvent(ctx context.Context, adverseEvent *fhir_dto.AdverseEvent) (*fhir_dto.AdverseEvent, error) {
	if f.create == nil {
		adverseEvent.ID = "ae-created"
		return adverseEvent, nil
	}
	return f.create(ctx, adverseEvent)
}

type fakeRecommendationClient struct {
	findByPatient func(ctx context.Context, patientID string) ([]fhir_dto.ImmunizationRecommendation, error)
	create        func(ctx context.Context, recommendation *fhir_dto.ImmunizationRecommendation) (*fhir_dto.ImmunizationRecommendation, error)
}

func (f *fakeRecommendationClient) FindRecommendationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.ImmunizationRecommendation, error) {
	if f.findByPatient == nil {
		return []fhir_dto.ImmunizationRecommendation{}, nil
	}
	return f.findByPatient(ctx, patientID)
}

func (f *fakeRecommendationClient) CreateRecommendation(ctx context.Context, recommendation *fhir_dto.ImmunizationRecommendation) (*fhir_dto.ImmunizationRecommendation, error) {
	if f.create == nil {
		recommendation.ID = "rec-created"
		return recommendation, nil
	}
	return f.create(ctx, recommendation)
}

type fakeAppointmentClient struct {
	findByPatient func(ctx context.Context, patientID string) ([]fhir_dto.Appointment, error)
	findByID      func(ctx context.Context, appointmentID string) (*fhir_dto.Appointment, error)
	create        func(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error)
	update        func(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error)
}

func (f *fakeAppointmentClient) FindAppointmentsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Appointment, error) {
	if f.findByPatient == nil {
		return []fhir_dto.Appointment{}, nil
	}
	return f.findByPatient(ctx, patientID)
}

func (f *fakeAppointmentClient) FindAppointmentByID(ctx context.Context, appointmentID string) (*fhir_dto.Appointment, error) {
	if f.findByID == nil {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, "Appointment")
	}
	return f.findByID(ctx, appointmentID)
}

func (f *fakeAppointmentClient) CreateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error) {
	if f.create == nil {
		appointment.ID = "appt-created"
		return appointment, nil
	}
	return f.create(ctx, appointment)
}

func (f *fakeAppointmentClient) UpdateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error) {
	if f.update == nil {
		return appointment, nil
	}
	return f.update(ctx, appointment)
}

type fakeRelatedPersonClient struct {
	findByID      func(ctx context.Context, relatedPersonID string) (*fhir_dto.RelatedPerson, error)
	findByPatient func(ctx context.Context, patientID string) ([]fhir_dto.RelatedPerson, error)
	update        func(ctx context.Context, relatedPerson *fhir_dto.RelatedPerson) (*fhir_dto.RelatedPerson, error)
}

func (f *fakeRelatedPersonClient) FindRelatedPersonByID(ctx context.Context, relatedPersonID string) (*fhir_dto.RelatedPerson, error) {
	if f.findByID == nil {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, "RelatedPerson")
	}
	return f.findByID(ctx, relatedPersonID)
}

func (f *fakeRelatedPersonClient) FindRelatedPersonsByPatient(ctx context.Context, patientID string) ([]fhir_dto.RelatedPerson, error) {
	if f.findByPatient == nil {
		return []fhir_dto.RelatedPerson{}, nil
	}
	return f.findByPatient(ctx, patientID)
}

func (f *fakeRelatedPersonClient) CreateRelatedPerson(ctx context.Context, relatedPerson *fhir_dto.RelatedPerson) (*fhir_dto.RelatedPerson, error) {
	relatedPerson.ID = "rp-created"
	return relatedPerson, nil
}

func (f *fakeRelatedPersonClient) UpdateRelatedPerson(ctx context.Context, relatedPerson *fhir_dto.RelatedPerson) (*fhir_dto.RelatedPerson, error) {
	if f.update == nil {
		return relatedPerson, nil
	}
	return f.update(ctx, relatedPerson)
}

type fakePractitionerUsecase struct {
	current func(ctx context.Context, identityToken string) (*fhir_dto.Practitioner, error)
}

func (f *fakePractitionerUsecase) CurrentPractitioner(ctx context.Context, identityToken string) (*fhir_dto.Practitioner, error) {
	if f.current == nil {
		return nil, exceptions.ErrNoIdentity(nil)
	}
	return f.current(ctx, identityToken)
}

func (f *fakePractitionerUsecase) MyPatients(ctx context.Context, identityToken string) ([]responses.PatientDetails, error) {
	return nil, nil
}

func (f *fakePractitionerUsecase) SearchBySvnr(ctx context.Context, identityToken, svnr string) ([]responses.PatientDetails, error) {
	return nil, nil
}

func (f *fakePractitionerUsecase) RegisterPatient(ctx context.Context, identityToken string, request *requests.CreatePatient) (*responses.PatientDetails, error) {
	return nil, nil
}

func (f *fakePractitionerUsecase) UpdatePatient(ctx context.Context, identityToken, patientID string, request *requests.UpdatePatient) (*responses.PatientDetails, error) {
	return nil, nil
}

type fakeReminderPublisher struct {
	published []contracts.ReminderMessage
	err       error
}

func (f *fakeReminderPublisher) PublishDueReminder(ctx context.Context, message contracts.ReminderMessage) error {
	f.published = append(f.published, message)
	return f.err
}
