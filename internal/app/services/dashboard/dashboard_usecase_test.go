package dashboard

import (
	"context"
	"testing"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseFakes struct {
	patients        *fakePatientClient
	practitioners   *fakePractitionerClient
	encounters      *fakeEncounterClient
	organizations   *fakeOrganizationClient
	locations       *fakeLocationClient
	immunizations   *fakeImmunizationClient
	observations    *fakeObservationClient
	allergies       *fakeAllergyClient
	adverseEvents   *fakeAdverseEventClient
	recommendations *fakeRecommendationClient
	appointments    *fakeAppointmentClient
	relatedPersons  *fakeRelatedPersonClient
	practitionerUC  *fakePractitionerUsecase
	reminders       *fakeReminderPublisher
}

func newUsecaseFakes() *usecaseFakes {
	return &usecaseFakes{
		patients:        &fakePatientClient{},
		practitioners:   &fakePractitionerClient{},
		encounters:      &fakeEncounterClient{},
		organizations:   &fakeOrganizationClient{},
		locations:       &fakeLocationClient{},
		immunizations:   &fakeImmunizationClient{},
		observations:    &fakeObservationClient{},
		allergies:       &fakeAllergyClient{},
		adverseEvents:   &fakeAdverseEventClient{},
		recommendations: &fakeRecommendationClient{},
		appointments:    &fakeAppointmentClient{},
		relatedPersons:  &fakeRelatedPersonClient{},
		practitionerUC:  &fakePractitionerUsecase{},
		reminders:       &fakeReminderPublisher{},
	}
}

func (f *usecaseFakes) build() *dashboardUsecase {
	return NewDashboardUsecase(
		f.patients,
		f.practitioners,
		f.encounters,
		f.organizations,
		f.locations,
		f.immunizations,
		f.observations,
		f.allergies,
		f.adverseEvents,
		f.recommendations,
		f.appointments,
		f.relatedPersons,
		f.practitionerUC,
		f.reminders,
		4,
		zap.NewNop(),
	).(*dashboardUsecase)
}

// seedOverviewScenario loads one patient with two encounters, three
// immunizations (one unattached to any encounter) and one section each
// of the remaining resource kinds.
func (f *usecaseFakes) seedOverviewScenario() {
	f.patients.findByID = func(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
		return &fhir_dto.Patient{
			ID:         patientID,
			Identifier: []fhir_dto.Identifier{{System: "https://elga.gv.at/svnr", Value: "1234010180"}},
			Name:       []fhir_dto.HumanName{{Given: []string{"Anna"}, Family: "Gruber"}},
			BirthDate:  "1980-01-01",
			Gender:     "female",
		}, nil
	}
	f.encounters.findByPatient = func(ctx context.Context, patientID string) ([]fhir_dto.Encounter, error) {
		return []fhir_dto.Encounter{
			{ID: "enc-1", Status: "finished", ServiceProvider: &fhir_dto.Reference{Reference: "Organization/org-1"}},
			{ID: "enc-2", Status: "finished"},
		}, nil
	}
	f.immunizations.findByPatient = func(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error) {
		return []fhir_dto.Immunization{
			{
				ID:          "imm-1",
				Encounter:   &fhir_dto.Reference{Reference: "Encounter/enc-1"},
				VaccineCode: &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "140"}}},
				Performer:   []fhir_dto.ImmunizationPerformer{{Actor: &fhir_dto.Reference{Reference: "Practitioner/prac-1"}}},
			},
			{
				ID:        "imm-2",
				Encounter: &fhir_dto.Reference{Reference: "Encounter/enc-2"},
			},
			{ID: "imm-3"},
		}, nil
	}
	f.observations.findByEncounter = func(ctx context.Context, encounterID string) ([]fhir_dto.Observation, error) {
		if encounterID == "enc-1" {
			return []fhir_dto.Observation{{ID: "obs-1", ValueString: "fine"}}, nil
		}
		return []fhir_dto.Observation{}, nil
	}
	f.organizations.findByID = func(ctx context.Context, organizationID string) (*fhir_dto.Organization, error) {
		return &fhir_dto.Organization{ID: organizationID, Name: "City Clinic"}, nil
	}
	f.practitioners.findByID = func(ctx context.Context, practitionerID string) (*fhir_dto.Practitioner, error) {
		return &fhir_dto.Practitioner{
			ID:   practitionerID,
			Name: []fhir_dto.HumanName{{Given: []string{"Eva"}, Family: "Berger"}},
		}, nil
	}
	f.allergies.findByPatient = func(ctx context.Context, patientID string) ([]fhir_dto.AllergyIntolerance, error) {
		return []fhir_dto.AllergyIntolerance{{ID: "al-1", Criticality: "high"}}, nil
	}
	f.recommendations.findByPatient = func(ctx context.Context, patientID string) ([]fhir_dto.ImmunizationRecommendation, error) {
		return []fhir_dto.ImmunizationRecommendation{{
			ID: "rec-1",
			Recommendation: []fhir_dto.ImmunizationRecommendationEntry{{
				VaccineCode: []fhir_dto.CodeableConcept{{Coding: []fhir_dto.Coding{{Code: "20"}}}},
			}},
		}}, nil
	}
	f.appointments.findByPatient = func(ctx context.Context, patientID string) ([]fhir_dto.Appointment, error) {
		return []fhir_dto.Appointment{{
			ID:     "appt-1",
			Status: "booked",
			Participant: []fhir_dto.AppointmentParticipant{
				{Actor: &fhir_dto.Reference{Reference: "Practitioner/prac-1"}},
				{Actor: &fhir_dto.Reference{Reference: "Patient/p1", Display: "Anna Gruber"}},
			},
		}}, nil
	}
	f.adverseEvents.findByPatient = func(ctx context.Context, patientID string) ([]fhir_dto.AdverseEvent, error) {
		return []fhir_dto.AdverseEvent{{ID: "ae-1", Encounter: &fhir_dto.Reference{Reference: "Encounter/enc-1"}}}, nil
	}
	f.relatedPersons.findByPatient = func(ctx context.Context, patientID string) ([]fhir_dto.RelatedPerson, error) {
		return []fhir_dto.RelatedPerson{{ID: "rp-1", Name: []fhir_dto.HumanName{{Given: []string{"Maria"}, Family: "Huber"}}}}, nil
	}
}

func TestBuildOverview(t *testing.T) {
	t.Run("Aggregates All Sections", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.seedOverviewScenario()
		uc := fakes.build()

		overview, err := uc.BuildOverview(context.Background(), "p1")

		require.NoError(t, err)
		require.NotNil(t, overview)

		assert.Equal(t, "p1", overview.Patient.ID)
		assert.Equal(t, "1234010180", overview.Patient.Identifier)
		require.Len(t, overview.Patient.RelatedPersons, 1)
		assert.Equal(t, "Maria Huber", overview.Patient.RelatedPersons[0].FullName)

		require.Len(t, overview.Encounters, 2)
		assert.Equal(t, "enc-1", overview.Encounters[0].Encounter.ID, "encounter order follows the store")
		assert.Equal(t, "enc-2", overview.Encounters[1].Encounter.ID)

		require.NotNil(t, overview.Encounters[0].Encounter.ServiceProvider)
		assert.Equal(t, "City Clinic", overview.Encounters[0].Encounter.ServiceProvider.Name)

		require.Len(t, overview.Encounters[0].Immunizations, 1)
		assert.Equal(t, "imm-1", overview.Encounters[0].Immunizations[0].Immunization.ID)
		require.NotNil(t, overview.Encounters[0].Immunizations[0].Immunization.Performer)
		assert.Equal(t, "Eva Berger", overview.Encounters[0].Immunizations[0].Immunization.Performer.FullName)

		require.Len(t, overview.Encounters[1].Immunizations, 1)
		assert.Equal(t, "imm-2", overview.Encounters[1].Immunizations[0].Immunization.ID)

		require.Len(t, overview.Encounters[0].Observations, 1)
		assert.Equal(t, "fine", overview.Encounters[0].Observations[0].Value)
		assert.Len(t, overview.Encounters[1].Observations, 0)

		require.Len(t, overview.Allergies, 1)
		require.Len(t, overview.Recommendations, 1)
		require.Len(t, overview.AdverseEvents, 1)

		require.Len(t, overview.Appointments, 1)
		assert.ElementsMatch(t, []string{"Eva Berger", "Anna Gruber"}, overview.Appointments[0].Participants)
	})

	t.Run("Immunization Search Issued Once", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.seedOverviewScenario()
		uc := fakes.build()

		_, err := uc.BuildOverview(context.Background(), "p1")

		require.NoError(t, err)
		assert.EqualValues(t, 1, fakes.immunizations.findByPatientHit)
	})

	t.Run("Missing Patient Fails Without Partial Result", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.seedOverviewScenario()
		fakes.patients.findByID = nil
		uc := fakes.build()

		overview, err := uc.BuildOverview(context.Background(), "p1")

		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
		assert.Nil(t, overview)
	})

	t.Run("Enrichment Failure Leaves Field Empty", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.seedOverviewScenario()
		fakes.organizations.findByID = nil
		fakes.practitioners.findByID = nil
		uc := fakes.build()

		overview, err := uc.BuildOverview(context.Background(), "p1")

		require.NoError(t, err)
		assert.Nil(t, overview.Encounters[0].Encounter.ServiceProvider)
		assert.Nil(t, overview.Encounters[0].Immunizations[0].Immunization.Performer)
	})

	t.Run("Section Search Failure Fails The Overview", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.seedOverviewScenario()
		fakes.observations.findByEncounter = func(ctx context.Context, encounterID string) ([]fhir_dto.Observation, error) {
			return nil, exceptions.ErrGetFHIRResource(nil, "Observation")
		}
		uc := fakes.build()

		overview, err := uc.BuildOverview(context.Background(), "p1")

		require.Error(t, err)
		assert.Nil(t, overview)
	})
}

func TestGetAdverseEventsForEncounter(t *testing.T) {
	fakes := newUsecaseFakes()
	fakes.adverseEvents.findByPatient = func(ctx context.Context, patientID string) ([]fhir_dto.AdverseEvent, error) {
		return []fhir_dto.AdverseEvent{
			{ID: "ae-1", Encounter: &fhir_dto.Reference{Reference: "Encounter/enc-1"}},
			{ID: "ae-2", Encounter: &fhir_dto.Reference{Reference: "Encounter/enc-2"}},
			{ID: "ae-3"},
		}, nil
	}
	uc := fakes.build()

	dtos, err := uc.GetAdverseEventsForEncounter(context.Background(), "p1", "enc-1")

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "ae-1", dtos[0].ID)
}

func TestCreateImmunization(t *testing.T) {
	currentPractitioner := &fhir_dto.Practitioner{
		ID:   "prac-1",
		Name: []fhir_dto.HumanName{{Given: []string{"Eva"}, Family: "Berger"}},
	}

	t.Run("Create Without Caller Chosen ID", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.practitionerUC.current = func(ctx context.Context, identityToken string) (*fhir_dto.Practitioner, error) {
			return currentPractitioner, nil
		}
		var created *fhir_dto.Immunization
		fakes.immunizations.create = func(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error) {
			immunization.ID = "imm-new"
			created = immunization
			return immunization, nil
		}
		uc := fakes.build()

		dto, err := uc.CreateImmunization(context.Background(), "token", "p1", &requests.CreateImmunization{
			VaccineCode:        "140",
			VaccineText:        "Influenza, seasonal",
			OccurrenceDateTime: "2026-03-01T10:00:00Z",
			EncounterID:        "enc-1",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Patient/p1", created.Patient.Reference)
		assert.Equal(t, "Encounter/enc-1", created.Encounter.Reference)
		require.Len(t, created.Performer, 1)
		assert.Equal(t, "Practitioner/prac-1", created.Performer[0].Actor.Reference)

		assert.Equal(t, "imm-new", dto.ID)
		require.NotNil(t, dto.Performer)
		assert.Equal(t, "Eva Berger", dto.Performer.FullName)
	})

	t.Run("Caller Chosen ID Becomes Upsert", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.practitionerUC.current = func(ctx context.Context, identityToken string) (*fhir_dto.Practitioner, error) {
			return currentPractitioner, nil
		}
		var upserted *fhir_dto.Immunization
		fakes.immunizations.update = func(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error) {
			upserted = immunization
			return immunization, nil
		}
		uc := fakes.build()

		dto, err := uc.CreateImmunization(context.Background(), "token", "p1", &requests.CreateImmunization{
			ImmunizationID:     "imm-custom",
			VaccineCode:        "140",
			OccurrenceDateTime: "2026-03-01T10:00:00Z",
		})

		require.NoError(t, err)
		require.NotNil(t, upserted)
		assert.Equal(t, "imm-custom", upserted.ID)
		assert.Equal(t, "imm-custom", dto.ID)
	})

	t.Run("Unknown Identity Rejected", func(t *testing.T) {
		fakes := newUsecaseFakes()
		uc := fakes.build()

		dto, err := uc.CreateImmunization(context.Background(), "", "p1", &requests.CreateImmunization{VaccineCode: "140"})

		require.Error(t, err)
		assert.Nil(t, dto)
	})
}

func TestCreateRecommendation(t *testing.T) {
	request := &requests.CreateRecommendation{
		Recommendations: []requests.RecommendationInput{
			{VaccineCode: "20", VaccineText: "DTaP", DueDate: "2026-09-01", ForecastStatus: "due", DoseNumber: "2"},
			{VaccineCode: "88", DueDate: "2027-01-15"},
		},
	}

	t.Run("Stores Container And Publishes Per Row", func(t *testing.T) {
		fakes := newUsecaseFakes()
		uc := fakes.build()

		rows, err := uc.CreateRecommendation(context.Background(), "p1", request)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "20", rows[0].VaccineCode)
		require.NotNil(t, rows[0].DoseNumber)
		assert.Equal(t, 2, *rows[0].DoseNumber)

		require.Len(t, fakes.reminders.published, 2)
		assert.Equal(t, "p1", fakes.reminders.published[0].PatientID)
		assert.Equal(t, "2026-09-01", fakes.reminders.published[0].DueDate)
		assert.Equal(t, "88", fakes.reminders.published[1].VaccineCode)
	})

	t.Run("Publisher Failure Does Not Fail The Write", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.reminders.err = exceptions.ErrSendHTTPRequest(nil)
		uc := fakes.build()

		rows, err := uc.CreateRecommendation(context.Background(), "p1", request)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("Store Failure Publishes Nothing", func(t *testing.T) {
		fakes := newUsecaseFakes()
		fakes.recommendations.create = func(ctx context.Context, recommendation *fhir_dto.ImmunizationRecommendation) (*fhir_dto.ImmunizationRecommendation, error) {
			return nil, exceptions.ErrCreateFHIRResource(nil, "ImmunizationRecommendation")
		}
		uc := fakes.build()

		rows, err := uc.CreateRecommendation(context.Background(), "p1", request)

		require.Error(t, err)
		assert.Nil(t, rows)
		assert.Empty(t, fakes.reminders.published)
	})
}

func TestCreateFullEncounter(t *testing.T) {
	request := &requests.CreateFullEncounter{
		EncounterID: "enc-custom",
		Status:      "finished",
		PeriodStart: "2026-01-10T09:00:00Z",
		Immunizations: []requests.FullImmunizationInput{
			{ImmunizationID: "imm-a", VaccineCode: "140", OccurrenceDateTime: "2026-01-10T09:10:00Z"},
			{ImmunizationID: "imm-b", VaccineCode: "20", OccurrenceDateTime: "2026-01-10T09:15:00Z"},
		},
		Observations: []requests.FullObservationInput{
			{ObservationID: "obs-a", CodeText: "body temperature", ValueQuantity: 37.2, ValueUnit: "Cel"},
		},
	}

	t.Run("Writes Encounter Then Children", func(t *testing.T) {
		fakes := newUsecaseFakes()
		var order []string
		fakes.encounters.update = func(ctx context.Context, encounter *fhir_dto.Encounter) (*fhir_dto.Encounter, error) {
			order = append(order, "encounter:"+encounter.ID)
			return encounter, nil
		}
		fakes.immunizations.update = func(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error) {
			order = append(order, "immunization:"+immunization.ID)
			assert.Equal(t, "Encounter/enc-custom", immunization.Encounter.Reference)
			assert.Equal(t, "Patient/p1", immunization.Patient.Reference)
			return immunization, nil
		}
		fakes.observations.update = func(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error) {
			order = append(order, "observation:"+observation.ID)
			require.NotNil(t, observation.ValueQuantity)
			assert.Equal(t, 37.2, observation.ValueQuantity.Value)
			return observation, nil
		}
		uc := fakes.build()

		result, err := uc.CreateFullEncounter(context.Background(), "p1", request)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"encounter:enc-custom",
			"immunization:imm-a",
			"immunization:imm-b",
			"observation:obs-a",
		}, order)
		assert.Equal(t, "enc-custom", result.EncounterID)
		assert.Equal(t, []string{"imm-a", "imm-b"}, result.ImmunizationIDs)
		assert.Equal(t, []string{"obs-a"}, result.ObservationIDs)
	})

	t.Run("Failure Partway Stops The Sequence", func(t *testing.T) {
		fakes := newUsecaseFakes()
		var immunizationWrites int
		fakes.immunizations.update = func(ctx context.Context, immunization *fhir_dto.Immunization) (*fhir_dto.Immunization, error) {
			immunizationWrites++
			if immunizationWrites == 2 {
				return nil, exceptions.ErrUpdateFHIRResource(nil, "Immunization")
			}
			return immunization, nil
		}
		var observationWrites int
		fakes.observations.update = func(ctx context.Context, observation *fhir_dto.Observation) (*fhir_dto.Observation, error) {
			observationWrites++
			return observation, nil
		}
		uc := fakes.build()

		result, err := uc.CreateFullEncounter(context.Background(), "p1", request)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 2, immunizationWrites)
		assert.Zero(t, observationWrites, "later writes must not run after a failure")
	})
}

func TestUpdateRelatedPerson(t *testing.T) {
	fakes := newUsecaseFakes()
	fakes.relatedPersons.findByID = func(ctx context.Context, relatedPersonID string) (*fhir_dto.RelatedPerson, error) {
		return &fhir_dto.RelatedPerson{
			ID:      relatedPersonID,
			Patient: &fhir_dto.Reference{Reference: "Patient/p1"},
		}, nil
	}
	var updated *fhir_dto.RelatedPerson
	fakes.relatedPersons.update = func(ctx context.Context, relatedPerson *fhir_dto.RelatedPerson) (*fhir_dto.RelatedPerson, error) {
		updated = relatedPerson
		return relatedPerson, nil
	}
	uc := fakes.build()

	dto, err := uc.UpdateRelatedPerson(context.Background(), "rp-1", &requests.CreateRelatedPerson{
		Relationship: "MTH",
		FirstName:    "Maria",
		LastName:     "Huber",
		Phone:        "+43 664 1234567",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "rp-1", updated.ID)
	require.NotNil(t, updated.Patient, "patient link survives the replace")
	assert.Equal(t, "Patient/p1", updated.Patient.Reference)
	assert.Equal(t, "Maria Huber", dto.FullName)
	assert.Equal(t, "+43 664 1234567", dto.Phone)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	fakes := newUsecaseFakes()
	fakes.appointments.findByID = func(ctx context.Context, appointmentID string) (*fhir_dto.Appointment, error) {
		return &fhir_dto.Appointment{ID: appointmentID, Status: "booked"}, nil
	}
	uc := fakes.build()

	dto, err := uc.UpdateAppointmentStatus(context.Background(), "appt-1", "fulfilled")

	require.NoError(t, err)
	assert.Equal(t, "appt-1", dto.ID)
	assert.Equal(t, "fulfilled", dto.Status)
}
