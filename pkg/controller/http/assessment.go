package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/utils/errutil"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

func assessmentIDParam(r *http.Request) types.AssessmentID {
	return types.AssessmentID(chi.URLParam(r, "assessmentID"))
}

func int64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid numeric path parameter", goerr.V("param", name))
	}
	return id, nil
}

func (s *Server) createAssessment(w http.ResponseWriter, r *http.Request) {
	var payload assessmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode assessment"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.Assessment.CreateAssessment(r.Context(), payload.toModel())
	if err != nil {
		handleError(w, r, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusCreated, fromAssessment(created))
}

func (s *Server) listAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := s.uc.Assessment.ListAssessments(r.Context())
	if err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	payloads := make([]*assessmentPayload, len(assessments))
	for i, a := range assessments {
		payloads[i] = fromAssessment(a)
	}
	respondJSON(w, r, http.StatusOK, payloads)
}

func (s *Server) getAssessment(w http.ResponseWriter, r *http.Request) {
	assessment, err := s.uc.Assessment.GetAssessment(r.Context(), assessmentIDParam(r))
	if err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, fromAssessment(assessment))
}

func (s *Server) updateAssessment(w http.ResponseWriter, r *http.Request) {
	var payload assessmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode assessment"), http.StatusBadRequest)
		return
	}

	assessment := payload.toModel()
	assessment.ID = assessmentIDParam(r)

	updated, err := s.uc.Assessment.UpdateAssessment(r.Context(), assessment)
	if err != nil {
		handleError(w, r, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusOK, fromAssessment(updated))
}

func (s *Server) deleteAssessment(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Assessment.DeleteAssessment(r.Context(), assessmentIDParam(r)); err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addScenario(w http.ResponseWriter, r *http.Request) {
	var payload scenarioPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode scenario"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.Assessment.AddScenario(r.Context(), &model.RiskScenario{
		AssessmentID:       assessmentIDParam(r),
		ThreatID:           types.ThreatID(payload.ThreatID),
		AssetName:          payload.AssetName,
		InherentLikelihood: payload.InherentLikelihood,
		InherentImpact:     payload.InherentImpact,
		Vulnerability:      payload.Vulnerability,
	})
	if err != nil {
		handleError(w, r, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusCreated, fromScenario(created))
}

func (s *Server) listScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := s.uc.Assessment.ListScenarios(r.Context(), assessmentIDParam(r))
	if err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	payloads := make([]*scenarioPayload, len(scenarios))
	for i, scenario := range scenarios {
		payloads[i] = fromScenario(scenario)
	}
	respondJSON(w, r, http.StatusOK, payloads)
}

func (s *Server) deleteScenario(w http.ResponseWriter, r *http.Request) {
	scenarioID, err := int64Param(r, "scenarioID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	if err := s.uc.Assessment.DeleteScenario(r.Context(), scenarioID); err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) putResponses(w http.ResponseWriter, r *http.Request) {
	var payload map[string]string
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode responses"), http.StatusBadRequest)
		return
	}

	responses := make(model.ResponseSet, len(payload))
	for questionID, answer := range payload {
		responses[types.QuestionID(questionID)] = types.Answer(answer)
	}

	stored, err := s.uc.Assessment.PutResponses(r.Context(), assessmentIDParam(r), responses)
	if err != nil {
		handleError(w, r, err, http.StatusBadRequest)
		return
	}

	result := make(map[string]string, len(stored.Responses))
	for questionID, answer := range stored.Responses {
		result[questionID.String()] = answer.String()
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) getResponses(w http.ResponseWriter, r *http.Request) {
	stored, err := s.uc.Assessment.GetResponses(r.Context(), assessmentIDParam(r))
	if err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	result := make(map[string]string, len(stored.Responses))
	for questionID, answer := range stored.Responses {
		result[questionID.String()] = answer.String()
	}
	respondJSON(w, r, http.StatusOK, result)
}
