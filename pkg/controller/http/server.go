package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/facilsec-lab/argus/pkg/repository/firestore"
	"github.com/facilsec-lab/argus/pkg/repository/memory"
	"github.com/facilsec-lab/argus/pkg/usecase"
	"github.com/facilsec-lab/argus/pkg/utils/errutil"
	"github.com/facilsec-lab/argus/pkg/utils/logging"
	"github.com/facilsec-lab/argus/pkg/utils/safe"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api/assessments", func(r chi.Router) {
		r.Post("/", s.createAssessment)
		r.Get("/", s.listAssessments)

		r.Route("/{assessmentID}", func(r chi.Router) {
			r.Get("/", s.getAssessment)
			r.Put("/", s.updateAssessment)
			r.Delete("/", s.deleteAssessment)

			r.Post("/scenarios", s.addScenario)
			r.Get("/scenarios", s.listScenarios)
			r.Delete("/scenarios/{scenarioID}", s.deleteScenario)

			r.Post("/scenarios/{scenarioID}/controls", s.addControl)
			r.Get("/scenarios/{scenarioID}/controls", s.listControls)
			r.Delete("/scenarios/{scenarioID}/controls/{controlID}", s.deleteControl)

			r.Put("/responses", s.putResponses)
			r.Get("/responses", s.getResponses)

			r.Post("/score", s.scoreAssessment)
			r.Get("/composite", s.compositeScore)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// handleError maps repository not-found errors to 404 and everything
// else to the given fallback status
func handleError(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	status := fallback
	if errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound) {
		status = http.StatusNotFound
	}
	errutil.HandleHTTP(r.Context(), w, err, status)
}
