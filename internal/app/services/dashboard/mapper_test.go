package dashboard

import (
	"testing"
	"vaxtrack-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapImmunization(t *testing.T) {
	t.Run("Coding Preferred Over Text", func(t *testing.T) {
		immunization := fhir_dto.Immunization{
			ID:     "imm-1",
			Status: "completed",
			VaccineCode: &fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{{System: "http://hl7.org/fhir/sid/cvx", Code: "140"}},
				Text:   "Influenza, seasonal",
			},
			OccurrenceDateTime: "2026-03-01T10:00:00Z",
		}

		dto := mapImmunization(immunization, &fhir_dto.Practitioner{
			ID:   "prac-1",
			Name: []fhir_dto.HumanName{{Given: []string{"Eva"}, Family: "Berger"}},
		})

		assert.Equal(t, "140", dto.VaccineCode)
		assert.Equal(t, "Influenza, seasonal", dto.VaccineText)
		require.NotNil(t, dto.Performer)
		assert.Equal(t, "Eva Berger", dto.Performer.FullName)
	})

	t.Run("Text Fallback When Coding Has No Code", func(t *testing.T) {
		immunization := fhir_dto.Immunization{
			ID:          "imm-2",
			VaccineCode: &fhir_dto.CodeableConcept{Text: "Tetanus booster"},
		}

		dto := mapImmunization(immunization, nil)

		assert.Equal(t, "Tetanus booster", dto.VaccineCode)
		assert.Nil(t, dto.Performer)
	})

	t.Run("Absent Vaccine Code Stays Absent", func(t *testing.T) {
		dto := mapImmunization(fhir_dto.Immunization{ID: "imm-3"}, nil)

		assert.Empty(t, dto.VaccineCode)
		assert.Empty(t, dto.VaccineText)
	})
}

func TestMapObservation(t *testing.T) {
	t.Run("Quantity With Unit", func(t *testing.T) {
		observation := fhir_dto.Observation{
			ID:            "obs-1",
			Code:          &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "8310-5"}}},
			ValueQuantity: &fhir_dto.Quantity{Value: 37.5, Unit: "Cel"},
		}

		dto := mapObservation(observation)

		assert.Equal(t, "8310-5", dto.Code)
		assert.Equal(t, "37.5 Cel", dto.Value)
	})

	t.Run("String Value", func(t *testing.T) {
		dto := mapObservation(fhir_dto.Observation{ID: "obs-2", ValueString: "no reaction"})

		assert.Equal(t, "no reaction", dto.Value)
	})

	t.Run("No Value", func(t *testing.T) {
		dto := mapObservation(fhir_dto.Observation{ID: "obs-3"})

		assert.Empty(t, dto.Value)
	})
}

func TestMapRecommendations(t *testing.T) {
	t.Run("Containers Flatten To Rows", func(t *testing.T) {
		containers := []fhir_dto.ImmunizationRecommendation{
			{
				ID: "rec-1",
				Recommendation: []fhir_dto.ImmunizationRecommendationEntry{
					{
						VaccineCode:    []fhir_dto.CodeableConcept{{Coding: []fhir_dto.Coding{{Code: "20"}}, Text: "DTaP"}},
						ForecastStatus: &fhir_dto.CodeableConcept{Text: "due"},
						DateCriterion:  []fhir_dto.ImmunizationRecommendationDateCriterion{{Value: "2026-09-01"}},
						Series:         "primary",
						DoseNumber:     "2",
					},
					{
						VaccineCode: []fhir_dto.CodeableConcept{{Text: "MMR"}},
						DoseNumber:  "booster",
					},
				},
			},
			{
				ID: "rec-2",
				Recommendation: []fhir_dto.ImmunizationRecommendationEntry{
					{VaccineCode: []fhir_dto.CodeableConcept{{Coding: []fhir_dto.Coding{{Code: "88"}}}}},
				},
			},
		}

		rows := mapRecommendations(containers)

		require.Len(t, rows, 3)
		assert.Equal(t, "20", rows[0].VaccineCode)
		assert.Equal(t, "DTaP", rows[0].VaccineText)
		assert.Equal(t, "due", rows[0].ForecastStatus)
		assert.Equal(t, "2026-09-01", rows[0].DueDate)
		require.NotNil(t, rows[0].DoseNumber)
		assert.Equal(t, 2, *rows[0].DoseNumber)

		assert.Equal(t, "MMR", rows[1].VaccineCode)
		assert.Nil(t, rows[1].DoseNumber, "non-numeric dose stays absent")

		assert.Equal(t, "88", rows[2].VaccineCode)
	})

	t.Run("No Containers", func(t *testing.T) {
		rows := mapRecommendations(nil)

		require.NotNil(t, rows)
		assert.Len(t, rows, 0)
	})
}

func TestMapRelatedPerson(t *testing.T) {
	relatedPerson := fhir_dto.RelatedPerson{
		ID: "rp-1",
		Relationship: []fhir_dto.CodeableConcept{{
			Coding: []fhir_dto.Coding{{Code: "MTH"}},
		}},
		Name: []fhir_dto.HumanName{{Given: []string{"Maria"}, Family: "Huber"}},
		Telecom: []fhir_dto.ContactPoint{
			{System: fhir_dto.ContactPointSystemEmail, Value: "maria@example.com"},
			{System: fhir_dto.ContactPointSystemPhone, Value: "+43 664 1234567"},
		},
		Address: []fhir_dto.Address{{Text: "Hauptstrasse 1, Wien"}},
	}

	dto := mapRelatedPerson(relatedPerson)

	assert.Equal(t, "MTH", dto.Relationship)
	assert.Equal(t, "Maria Huber", dto.FullName)
	assert.Equal(t, "+43 664 1234567", dto.Phone)
	assert.Equal(t, "maria@example.com", dto.Email)
	assert.Equal(t, "Hauptstrasse 1, Wien", dto.Address)
}

func TestMapAdverseEvent(t *testing.T) {
	adverseEvent := fhir_dto.AdverseEvent{
		ID:           "ae-1",
		Status:       "completed",
		Category:     []fhir_dto.CodeableConcept{{Text: "medication-mishap"}},
		Outcome:      []fhir_dto.CodeableConcept{{Text: "resolved"}},
		RecordedDate: "2026-02-02",
		SuspectEntity: []fhir_dto.AdverseEventSuspectEntity{{
			InstanceReference: &fhir_dto.Reference{Reference: "Immunization/imm-9"},
		}},
	}

	dto := mapAdverseEvent(adverseEvent)

	assert.Equal(t, "medication-mishap", dto.Category)
	assert.Equal(t, "resolved", dto.Outcome)
	assert.Equal(t, "imm-9", dto.ImmunizationID)
}

func TestMapEncounter(t *testing.T) {
	t.Run("Period Present", func(t *testing.T) {
		encounter := fhir_dto.Encounter{
			ID:     "enc-1",
			Status: "finished",
			ActualPeriod: &fhir_dto.Period{
				Start: "2026-01-10T09:00:00Z",
				End:   "2026-01-10T09:30:00Z",
			},
		}

		dto := mapEncounter(encounter, nil, nil)

		assert.Equal(t, "2026-01-10T09:00:00Z", dto.PeriodStart)
		assert.Equal(t, "2026-01-10T09:30:00Z", dto.PeriodEnd)
	})

	t.Run("Period Absent", func(t *testing.T) {
		dto := mapEncounter(fhir_dto.Encounter{ID: "enc-2"}, nil, nil)

		assert.Empty(t, dto.PeriodStart)
		assert.Empty(t, dto.PeriodEnd)
		assert.Nil(t, dto.ServiceProvider)
		assert.Nil(t, dto.Location)
	})
}
