package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/utils/async"
	"github.com/facilsec-lab/argus/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

func (s *Server) addControl(w http.ResponseWriter, r *http.Request) {
	scenarioID, err := int64Param(r, "scenarioID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	var payload controlPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode control"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.Assessment.AddControl(r.Context(), &model.Control{
		ScenarioID:             scenarioID,
		Name:                   payload.Name,
		Type:                   types.ControlType(payload.Type),
		Effectiveness:          payload.Effectiveness,
		TreatmentEffectiveness: payload.TreatmentEffectiveness,
		PrimaryEffect:          types.PrimaryEffect(payload.PrimaryEffect),
	})
	if err != nil {
		handleError(w, r, err, http.StatusBadRequest)
		return
	}

	s.rescoreInBackground(r, created.AssessmentID)

	respondJSON(w, r, http.StatusCreated, fromControl(created))
}

func (s *Server) listControls(w http.ResponseWriter, r *http.Request) {
	scenarioID, err := int64Param(r, "scenarioID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	controls, err := s.uc.Assessment.ListControls(r.Context(), scenarioID)
	if err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	payloads := make([]*controlPayload, len(controls))
	for i, control := range controls {
		payloads[i] = fromControl(control)
	}
	respondJSON(w, r, http.StatusOK, payloads)
}

func (s *Server) deleteControl(w http.ResponseWriter, r *http.Request) {
	controlID, err := int64Param(r, "controlID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	if err := s.uc.Assessment.DeleteControl(r.Context(), controlID); err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.rescoreInBackground(r, assessmentIDParam(r))

	w.WriteHeader(http.StatusNoContent)
}

// rescoreInBackground refreshes the assessment's derived figures after a
// control mutation without holding up the response
func (s *Server) rescoreInBackground(r *http.Request, assessmentID types.AssessmentID) {
	async.Dispatch(r.Context(), func(ctx context.Context) error {
		if _, err := s.uc.Score.ScoreAssessment(ctx, assessmentID); err != nil {
			return goerr.Wrap(err, "background rescore failed", goerr.V("assessmentID", assessmentID))
		}
		return nil
	})
}

func (s *Server) scoreAssessment(w http.ResponseWriter, r *http.Request) {
	result, err := s.uc.Score.ScoreAssessment(r.Context(), assessmentIDParam(r))
	if err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, fromAssessmentScore(result))
}

func (s *Server) compositeScore(w http.ResponseWriter, r *http.Request) {
	result, err := s.uc.Score.CompositeScore(r.Context(), assessmentIDParam(r))
	if err != nil {
		handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, fromComposite(result))
}
