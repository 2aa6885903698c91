package practitioners

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

type fakePractitionerFhirClient struct {
	byIdentifier func(ctx context.Context, system, value string) ([]fhir_dto.Practitioner, error)
}

func (f *fakePractitionerFhirClient) FindPractitionerByID(ctx context.Context, practitionerID string) (*fhir_dto.Practitioner, error) {
	return nil, exceptions.ErrFHIRResourceNotFound(nil, "Practitioner")
}

func (f *fakePractitionerFhirClient) FindPractitionersByIdentifier(ctx context.Context, system, value string) ([]fhir_dto.Practitioner, error) {
	if f.byIdentifier == nil {
		return []fhir_dto.Practitioner{}, nil
	}
	return f.byIdentifier(ctx, system, value)
}

func (f *fakePractitionerFhirClient) CreatePractitioner(ctx context.Context, practitioner *fhir_dto.Practitioner) (*fhir_dto.Practitioner, error) {
	practitioner.ID = "prac-created"
	return practitioner, nil
}

// fakePatientFhirClient keeps a tiny in-memory panel keyed by the
// general practitioner reference given at seed time.
type fakePatientFhirClient struct {
	patients []fhir_dto.Patient
}

func (f *fakePatientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == patientID {
			patient := f.patients[i]
			return &patient, nil
		}
	}
	return nil, exceptions.ErrFHIRResourceNotFound(nil, "Patient")
}

func (f *fakePatientFhirClient) FindPatientsByGeneralPractitioner(ctx context.Context, practitionerRef string) ([]fhir_dto.Patient, error) {
	matches := make([]fhir_dto.Patient, 0)
	for _, patient := range f.patients {
		if f.hasGeneralPractitioner(patient, practitionerRef) {
			matches = append(matches, patient)
		}
	}
	return matches, nil
}

func (f *fakePatientFhirClient) FindPatientsByGeneralPractitionerAndIdentifier(ctx context.Context, practitionerRef, system, value string) ([]fhir_dto.Patient, error) {
	matches := make([]fhir_dto.Patient, 0)
	for _, patient := range f.patients {
		if !f.hasGeneralPractitioner(patient, practitionerRef) {
			continue
		}
		for _, identifier := range patient.Identifier {
			if identifier.System == system && identifier.Value == value {
				matches = append(matches, patient)
			}
		}
	}
	return matches, nil
}

func (f *fakePatientFhirClient) CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	patient.ID = "pat-created"
	f.patients = append(f.patients, *patient)
	return patient, nil
}

func (f *fakePatientFhirClient) UpdatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == patient.ID {
			f.patients[i] = *patient
		}
	}
	return patient, nil
}

func (f *fakePatientFhirClient) hasGeneralPractitioner(patient fhir_dto.Patient, practitionerRef string) bool {
	for _, ref := range patient.GeneralPractitioner {
		if ref.Reference == practitionerRef {
			return true
		}
	}
	return false
}

func seedMixedPanel() *fakePatientFhirClient {
	return &fakePatientFhirClient{patients: []fhir_dto.Patient{
		{
			ID:                  "p1",
			Identifier:          []fhir_dto.Identifier{{System: "https://elga.gv.at/svnr", Value: "1111010180"}},
			Name:                []fhir_dto.HumanName{{Given: []string{"Anna"}, Family: "Gruber"}},
			GeneralPractitioner: []fhir_dto.Reference{{Reference: "Practitioner/prac-1"}},
		},
		{
			ID:                  "p2",
			Identifier:          []fhir_dto.Identifier{{System: "https://elga.gv.at/svnr", Value: "2222020290"}},
			GeneralPractitioner: []fhir_dto.Reference{{Reference: "Practitioner/prac-1"}},
		},
		{
			ID:                  "p3",
			Identifier:          []fhir_dto.Identifier{{System: "https://elga.gv.at/svnr", Value: "3333030300"}},
			GeneralPractitioner: []fhir_dto.Reference{{Reference: "Practitioner/prac-other"}},
		},
	}}
}

func newTestUsecase(patients *fakePatientFhirClient) *practitionerUsecase {
	practitionerClient := &fakePractitionerFhirClient{
		byIdentifier: func(ctx context.Context, system, value string) ([]fhir_dto.Practitioner, error) {
			if value != "known-identity" {
				return []fhir_dto.Practitioner{}, nil
			}
			return []fhir_dto.Practitioner{{ID: "prac-1"}}, nil
		},
	}
	return NewPractitionerUsecase(practitionerClient, patients, zap.NewNop()).(*practitionerUsecase)
}

func TestCurrentPractitioner(t *testing.T) {
	uc := newTestUsecase(seedMixedPanel())

	t.Run("Known Identity", func(t *testing.T) {
		practitioner, err := uc.CurrentPractitioner(context.Background(), "known-identity")

		require.NoError(t, err)
		assert.Equal(t, "prac-1", practitioner.ID)
	})

	t.Run("Empty Identity", func(t *testing.T) {
		_, err := uc.CurrentPractitioner(context.Background(), "")

		require.Error(t, err)
		customErr := new(exceptions.CustomError)
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Unknown Identity", func(t *testing.T) {
		_, err := uc.CurrentPractitioner(context.Background(), "stranger")

		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}

func TestMyPatients(t *testing.T) {
	uc := newTestUsecase(seedMixedPanel())

	details, err := uc.MyPatients(context.Background(), "known-identity")

	require.NoError(t, err)
	require.Len(t, details, 2, "only the caller's panel is visible")
	assert.Equal(t, "p1", details[0].ID)
	assert.Equal(t, "Anna", details[0].FirstName)
	assert.Equal(t, "Gruber", details[0].LastName)
	assert.Equal(t, "p2", details[1].ID)
}

func TestSearchBySvnr(t *testing.T) {
	uc := newTestUsecase(seedMixedPanel())

	t.Run("In Panel Match", func(t *testing.T) {
		details, err := uc.SearchBySvnr(context.Background(), "known-identity", "1111010180")

		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "p1", details[0].ID)
		assert.Equal(t, "1111010180", details[0].Identifier)
	})

	t.Run("Existing Number Outside Panel Yields Empty", func(t *testing.T) {
		details, err := uc.SearchBySvnr(context.Background(), "known-identity", "3333030300")

		require.NoError(t, err)
		require.NotNil(t, details)
		assert.Len(t, details, 0)
	})

	t.Run("Unknown Number Yields Empty", func(t *testing.T) {
		details, err := uc.SearchBySvnr(context.Background(), "known-identity", "9999090999")

		require.NoError(t, err)
		assert.Len(t, details, 0)
	})
}

func TestRegisterPatient(t *testing.T) {
	patients := seedMixedPanel()
	uc := newTestUsecase(patients)

	details, err := uc.RegisterPatient(context.Background(), "known-identity", &requests.CreatePatient{
		PatientIdentifier: "4444040400",
		FirstName:         "Lukas",
		LastName:          "Steiner",
		BirthDate:         "2020-04-04",
		Gender:            "male",
	})

	require.NoError(t, err)
	assert.Equal(t, "pat-created", details.ID)
	assert.Equal(t, "4444040400", details.Identifier)

	registered, err := patients.FindPatientByID(context.Background(), "pat-created")
	require.NoError(t, err)
	require.Len(t, registered.GeneralPractitioner, 1)
	assert.Equal(t, "Practitioner/prac-1", registered.GeneralPractitioner[0].Reference)
}

func TestUpdatePatient(t *testing.T) {
	t.Run("Merges Only Supplied Fields", func(t *testing.T) {
		patients := seedMixedPanel()
		uc := newTestUsecase(patients)

		details, err := uc.UpdatePatient(context.Background(), "known-identity", "p1", &requests.UpdatePatient{
			LastName: "Gruber-Mayr",
		})

		require.NoError(t, err)
		assert.Equal(t, "Anna", details.FirstName, "absent field keeps the stored value")
		assert.Equal(t, "Gruber-Mayr", details.LastName)

		stored, err := patients.FindPatientByID(context.Background(), "p1")
		require.NoError(t, err)
		require.Len(t, stored.GeneralPractitioner, 1, "panel link is never dropped")
	})

	t.Run("Out Of Panel Patient Behaves As Missing", func(t *testing.T) {
		uc := newTestUsecase(seedMixedPanel())

		_, err := uc.UpdatePatient(context.Background(), "known-identity", "p3", &requests.UpdatePatient{
			FirstName: "Hans",
		})

		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}
