package dashboard

import (
	"strconv"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/fhir_dto"
	"vaxtrack-service/internal/pkg/utils"
)

// Mapping keeps the presence rule of the API: a field the store did
// not populate stays absent in the view model instead of defaulting.

func mapPatientDetails(patient *fhir_dto.Patient) responses.PatientDetails {
	return utils.BuildPatientDetailsResponse(patient)
}

func mapRelatedPerson(relatedPerson fhir_dto.RelatedPerson) responses.RelatedPersonDTO {
	dto := responses.RelatedPersonDTO{
		ID:       relatedPerson.ID,
		FullName: utils.GetFullName(relatedPerson.Name),
	}
	if len(relatedPerson.Relationship) > 0 {
		dto.Relationship = utils.ConceptCode(&relatedPerson.Relationship[0])
	}
	dto.Phone, dto.Email = utils.GetPhoneAndEmail(relatedPerson.Telecom)
	if len(relatedPerson.Address) > 0 {
		dto.Address = utils.FormatAddress(relatedPerson.Address[0])
	}
	return dto
}

func mapOrganization(organization *fhir_dto.Organization) *responses.OrganizationDTO {
	if organization == nil {
		return nil
	}
	return &responses.OrganizationDTO{
		ID:   organization.ID,
		Name: organization.Name,
	}
}

func mapLocation(location *fhir_dto.Location, managingOrganization *fhir_dto.Organization) *responses.LocationDTO {
	if location == nil {
		return nil
	}
	dto := &responses.LocationDTO{
		ID:                   location.ID,
		Name:                 location.Name,
		Description:          location.Description,
		ManagingOrganization: mapOrganization(managingOrganization),
	}
	if location.Address != nil {
		dto.Address = utils.FormatAddress(*location.Address)
	}
	return dto
}

func mapPractitioner(practitioner *fhir_dto.Practitioner) *responses.PractitionerDTO {
	if practitioner == nil {
		return nil
	}
	return &responses.PractitionerDTO{
		ID:       practitioner.ID,
		FullName: utils.GetFullName(practitioner.Name),
	}
}

func mapImmunization(immunization fhir_dto.Immunization, performer *fhir_dto.Practitioner) responses.ImmunizationDTO {
	dto := responses.ImmunizationDTO{
		ID:                 immunization.ID,
		Status:             immunization.Status,
		OccurrenceDateTime: immunization.OccurrenceDateTime,
		Performer:          mapPractitioner(performer),
	}
	if immunization.VaccineCode != nil {
		dto.VaccineCode = utils.ConceptCode(immunization.VaccineCode)
		dto.VaccineText = immunization.VaccineCode.Text
	}
	return dto
}

func mapObservation(observation fhir_dto.Observation) responses.ObservationDTO {
	dto := responses.ObservationDTO{
		ID:                observation.ID,
		Status:            observation.Status,
		Code:              utils.ConceptCode(observation.Code),
		EffectiveDateTime: observation.EffectiveDateTime,
	}
	switch {
	case observation.ValueQuantity != nil:
		dto.Value = strconv.FormatFloat(observation.ValueQuantity.Value, 'f', -1, 64)
		if observation.ValueQuantity.Unit != "" {
			dto.Value += " " + observation.ValueQuantity.Unit
		}
	case observation.ValueString != "":
		dto.Value = observation.ValueString
	}
	return dto
}

func mapEncounter(encounter fhir_dto.Encounter, serviceProvider *responses.OrganizationDTO, location *responses.LocationDTO) responses.EncounterDTO {
	dto := responses.EncounterDTO{
		ID:              encounter.ID,
		Status:          encounter.Status,
		ServiceProvider: serviceProvider,
		Location:        location,
	}
	if encounter.ActualPeriod != nil {
		dto.PeriodStart = encounter.ActualPeriod.Start
		dto.PeriodEnd = encounter.ActualPeriod.End
	}
	return dto
}

func mapAllergy(allergy fhir_dto.AllergyIntolerance) responses.AllergyIntoleranceDTO {
	dto := responses.AllergyIntoleranceDTO{
		ID:          allergy.ID,
		Criticality: allergy.Criticality,
		Code:        utils.ConceptCode(allergy.Code),
	}
	if allergy.ClinicalStatus != nil {
		dto.ClinicalStatus = allergy.ClinicalStatus.Text
	}
	if allergy.VerificationStatus != nil {
		dto.VerificationStatus = allergy.VerificationStatus.Text
	}
	if len(allergy.Reaction) > 0 {
		dto.ReactionDesc = allergy.Reaction[0].Description
	}
	return dto
}

func mapAdverseEvent(adverseEvent fhir_dto.AdverseEvent) responses.AdverseEventDTO {
	dto := responses.AdverseEventDTO{
		ID:           adverseEvent.ID,
		Status:       adverseEvent.Status,
		RecordedDate: adverseEvent.RecordedDate,
	}
	if len(adverseEvent.Category) > 0 {
		dto.Category = adverseEvent.Category[0].Text
	}
	if len(adverseEvent.Outcome) > 0 {
		dto.Outcome = adverseEvent.Outcome[0].Text
	}
	if len(adverseEvent.SuspectEntity) > 0 && adverseEvent.SuspectEntity[0].InstanceReference != nil {
		dto.ImmunizationID = utils.ReferenceID(adverseEvent.SuspectEntity[0].InstanceReference.Reference)
	}
	return dto
}

// mapRecommendations flattens recommendation containers: each entry of
// each container becomes one row of the dashboard.
func mapRecommendations(containers []fhir_dto.ImmunizationRecommendation) []responses.RecommendationDTO {
	rows := make([]responses.RecommendationDTO, 0)
	for _, container := range containers {
		for _, entry := range container.Recommendation {
			row := responses.RecommendationDTO{
				Series: entry.Series,
			}
			if len(entry.VaccineCode) > 0 {
				row.VaccineCode = utils.ConceptCode(&entry.VaccineCode[0])
				row.VaccineText = entry.VaccineCode[0].Text
			}
			if entry.ForecastStatus != nil {
				row.ForecastStatus = entry.ForecastStatus.Text
			}
			if len(entry.DateCriterion) > 0 {
				row.DueDate = entry.DateCriterion[0].Value
			}
			if entry.DoseNumber != "" {
				if doseNumber, err := strconv.Atoi(entry.DoseNumber); err == nil {
					row.DoseNumber = &doseNumber
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func mapAppointment(appointment fhir_dto.Appointment, participants []string) responses.AppointmentDTO {
	dto := responses.AppointmentDTO{
		ID:           appointment.ID,
		Status:       appointment.Status,
		Start:        appointment.Start,
		End:          appointment.End,
		Description:  appointment.Description,
		Participants: participants,
	}
	if len(appointment.Reason) > 0 && appointment.Reason[0].Concept != nil {
		dto.Reason = appointment.Reason[0].Concept.Text
	}
	return dto
}
