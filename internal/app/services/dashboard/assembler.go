package dashboard

import (
	"context"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/fhir_dto"
	"vaxtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// encounterAssembler builds one dashboard block per encounter. The
// enrichment lookups (service provider, location, performer) are best
// effort: a failed or dangling reference leaves the field empty and
// never fails the block. The observation search is part of the block's
// own data and its failure does fail the block.
type encounterAssembler struct {
	observations contracts.ObservationFhirClient
	resolver     *referenceResolver
	log          *zap.Logger
}

func newEncounterAssembler(
	observationFhirClient contracts.ObservationFhirClient,
	resolver *referenceResolver,
	logger *zap.Logger,
) *encounterAssembler {
	return &encounterAssembler{
		observations: observationFhirClient,
		resolver:     resolver,
		log:          logger,
	}
}

func (a *encounterAssembler) Assemble(ctx context.Context, encounter fhir_dto.Encounter, patientImmunizations []fhir_dto.Immunization) (responses.EncounterBlock, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	serviceProvider := a.resolveOrganization(ctx, encounter.ServiceProvider, requestID)

	var location *responses.LocationDTO
	if len(encounter.Location) > 0 {
		location = a.resolveLocation(ctx, encounter.Location[0].Location, requestID)
	}

	immunizationBlocks := make([]responses.ImmunizationBlock, 0)
	for _, immunization := range patientImmunizations {
		if immunization.Encounter == nil {
			continue
		}
		if utils.ReferenceID(immunization.Encounter.Reference) != encounter.ID {
			continue
		}

		var performer *fhir_dto.Practitioner
		if len(immunization.Performer) > 0 {
			performer = a.resolvePerformer(ctx, immunization.Performer[0].Actor, requestID)
		}
		immunizationBlocks = append(immunizationBlocks, responses.ImmunizationBlock{
			Immunization: mapImmunization(immunization, performer),
		})
	}

	observations, err := a.observations.FindObservationsByEncounter(ctx, encounter.ID)
	if err != nil {
		return responses.EncounterBlock{}, err
	}
	observationDTOs := make([]responses.ObservationDTO, 0, len(observations))
	for _, observation := range observations {
		observationDTOs = append(observationDTOs, mapObservation(observation))
	}

	return responses.EncounterBlock{
		Encounter:     mapEncounter(encounter, serviceProvider, location),
		Immunizations: immunizationBlocks,
		Observations:  observationDTOs,
	}, nil
}

func (a *encounterAssembler) resolveOrganization(ctx context.Context, ref *fhir_dto.Reference, requestID string) *responses.OrganizationDTO {
	organization, err := a.resolver.Organization(ctx, ref)
	if err != nil {
		a.log.Warn("encounterAssembler failed to resolve service provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	return mapOrganization(organization)
}

func (a *encounterAssembler) resolveLocation(ctx context.Context, ref *fhir_dto.Reference, requestID string) *responses.LocationDTO {
	location, err := a.resolver.Location(ctx, ref)
	if err != nil {
		a.log.Warn("encounterAssembler failed to resolve location",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	if location == nil {
		return nil
	}

	managingOrganization, err := a.resolver.Organization(ctx, location.ManagingOrganization)
	if err != nil {
		a.log.Warn("encounterAssembler failed to resolve managing organization",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		managingOrganization = nil
	}
	return mapLocation(location, managingOrganization)
}

func (a *encounterAssembler) resolvePerformer(ctx context.Context, ref *fhir_dto.Reference, requestID string) *fhir_dto.Practitioner {
	performer, err := a.resolver.Practitioner(ctx, ref)
	if err != nil {
		a.log.Warn("encounterAssembler failed to resolve performer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	return performer
}
