package practitioners

import (
	"context"
	"net/http"
	"time"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PractitionerController struct {
	Log                 *zap.Logger
	PractitionerUsecase contracts.PractitionerUsecase
}

func NewPractitionerController(logger *zap.Logger, practitionerUsecase contracts.PractitionerUsecase) *PractitionerController {
	return &PractitionerController{
		Log:                 logger,
		PractitionerUsecase: practitionerUsecase,
	}
}

func (ctrl *PractitionerController) GetMyPatients(w http.ResponseWriter, r *http.Request) {
	identityToken, _ := r.Context().Value(constvars.CONTEXT_IDENTITY_TOKEN_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.MyPatients(ctx, identityToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MyPatientsGetSuccess, response)
}

func (ctrl *PractitionerController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	identityToken, _ := r.Context().Value(constvars.CONTEXT_IDENTITY_TOKEN_KEY).(string)
	svnr := r.URL.Query().Get(constvars.QueryParamSvnr)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.SearchBySvnr(ctx, identityToken, svnr)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientSearchSuccess, response)
}

func (ctrl *PractitionerController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	identityToken, _ := r.Context().Value(constvars.CONTEXT_IDENTITY_TOKEN_KEY).(string)

	request := new(requests.CreatePatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.RegisterPatient(ctx, identityToken, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientCreatedSuccess, response)
}

func (ctrl *PractitionerController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	identityToken, _ := r.Context().Value(constvars.CONTEXT_IDENTITY_TOKEN_KEY).(string)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpdatePatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.UpdatePatient(ctx, identityToken, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientUpdatedSuccess, response)
}
