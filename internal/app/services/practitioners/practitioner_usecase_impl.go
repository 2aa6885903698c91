package practitioners

import (
	"context"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/fhir_dto"
	"vaxtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type practitionerUsecase struct {
	PractitionerFhirClient contracts.PractitionerFhirClient
	PatientFhirClient      contracts.PatientFhirClient
	Log                    *zap.Logger
}

func NewPractitionerUsecase(
	practitionerFhirClient contracts.PractitionerFhirClient,
	patientFhirClient contracts.PatientFhirClient,
	logger *zap.Logger,
) contracts.PractitionerUsecase {
	return &practitionerUsecase{
		PractitionerFhirClient: practitionerFhirClient,
		PatientFhirClient:      patientFhirClient,
		Log:                    logger,
	}
}

// CurrentPractitioner maps the caller's identity token to exactly one
// Practitioner resource. No token or no match means the caller cannot
// act as a practitioner at all.
func (uc *practitionerUsecase) CurrentPractitioner(ctx context.Context, identityToken string) (*fhir_dto.Practitioner, error) {
	if identityToken == "" {
		return nil, exceptions.ErrNoIdentity(nil)
	}

	practitioners, err := uc.PractitionerFhirClient.FindPractitionersByIdentifier(ctx, constvars.FhirSystemPractitionerIdentity, identityToken)
	if err != nil {
		return nil, err
	}
	if len(practitioners) == 0 {
		return nil, exceptions.ErrPractitionerIdentifierNotFound(nil, identityToken)
	}
	return &practitioners[0], nil
}

func (uc *practitionerUsecase) MyPatients(ctx context.Context, identityToken string) ([]responses.PatientDetails, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	currentPractitioner, err := uc.CurrentPractitioner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	practitionerRef := utils.BuildReference(constvars.ResourcePractitioner, currentPractitioner.ID)
	patients, err := uc.PatientFhirClient.FindPatientsByGeneralPractitioner(ctx, practitionerRef)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("practitionerUsecase.MyPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, currentPractitioner.ID),
		zap.Int(constvars.LoggingResourceCountKey, len(patients)),
	)

	details := make([]responses.PatientDetails, 0, len(patients))
	for i := range patients {
		details = append(details, utils.BuildPatientDetailsResponse(&patients[i]))
	}
	return details, nil
}

// SearchBySvnr looks a patient up by social insurance number, but only
// inside the caller's own panel. A number that exists outside the
// panel yields an empty result, indistinguishable from no match.
func (uc *practitionerUsecase) SearchBySvnr(ctx context.Context, identityToken, svnr string) ([]responses.PatientDetails, error) {
	currentPractitioner, err := uc.CurrentPractitioner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	practitionerRef := utils.BuildReference(constvars.ResourcePractitioner, currentPractitioner.ID)
	patients, err := uc.PatientFhirClient.FindPatientsByGeneralPractitionerAndIdentifier(ctx, practitionerRef, constvars.FhirSystemSvnr, svnr)
	if err != nil {
		return nil, err
	}

	details := make([]responses.PatientDetails, 0, len(patients))
	for i := range patients {
		details = append(details, utils.BuildPatientDetailsResponse(&patients[i]))
	}
	return details, nil
}

func (uc *practitionerUsecase) RegisterPatient(ctx context.Context, identityToken string, request *requests.CreatePatient) (*responses.PatientDetails, error) {
	currentPractitioner, err := uc.CurrentPractitioner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Identifier: []fhir_dto.Identifier{{
			System: constvars.FhirSystemSvnr,
			Value:  request.PatientIdentifier,
		}},
		Name: []fhir_dto.HumanName{{
			Given:  []string{request.FirstName},
			Family: request.LastName,
		}},
		BirthDate: request.BirthDate,
		Gender:    request.Gender,
		GeneralPractitioner: []fhir_dto.Reference{{
			Reference: utils.BuildReference(constvars.ResourcePractitioner, currentPractitioner.ID),
		}},
	}

	created, err := uc.PatientFhirClient.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	details := utils.BuildPatientDetailsResponse(created)
	return &details, nil
}

// UpdatePatient is a read-modify-write: fields absent from the request
// keep their stored value, and the general practitioner link is never
// dropped. A patient outside the caller's panel behaves as missing.
func (uc *practitionerUsecase) UpdatePatient(ctx context.Context, identityToken, patientID string, request *requests.UpdatePatient) (*responses.PatientDetails, error) {
	currentPractitioner, err := uc.CurrentPractitioner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientFhirClient.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !uc.inPanel(patient, currentPractitioner.ID) {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, constvars.ResourcePatient)
	}

	if request.FirstName != "" || request.LastName != "" {
		name := fhir_dto.HumanName{}
		if len(patient.Name) > 0 {
			name = patient.Name[0]
		}
		if request.FirstName != "" {
			name.Given = []string{request.FirstName}
		}
		if request.LastName != "" {
			name.Family = request.LastName
		}
		if len(patient.Name) > 0 {
			patient.Name[0] = name
		} else {
			patient.Name = []fhir_dto.HumanName{name}
		}
	}
	if request.BirthDate != "" {
		patient.BirthDate = request.BirthDate
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}

	updated, err := uc.PatientFhirClient.UpdatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	details := utils.BuildPatientDetailsResponse(updated)
	return &details, nil
}

func (uc *practitionerUsecase) inPanel(patient *fhir_dto.Patient, practitionerID string) bool {
	for _, ref := range patient.GeneralPractitioner {
		if utils.ReferenceID(ref.Reference) == practitionerID {
			return true
		}
	}
	return false
}
