package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	sessionHandler "github.com/mentorlab/coachdesk/internal/handler/session"
	"github.com/mentorlab/coachdesk/internal/middleware"
	"github.com/mentorlab/coachdesk/internal/model/coach"
	sessionService "github.com/mentorlab/coachdesk/internal/service/session"
	"github.com/mentorlab/coachdesk/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(catalog coach.Catalog, sessionSvc *sessionService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		sessionHandler.New(sessionSvc, catalog).RegisterRoutes(api)
	})

	return r
}
