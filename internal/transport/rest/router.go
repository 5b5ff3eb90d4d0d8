package rest

import (
	"net/http"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/transport/middleware"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Health      *HealthHandler
	Account     *AccountHandler
	Process     *ProcessHandler
	Timeline    *TimelineHandler
	Observation *ObservationHandler
}

// NewRouter registers every endpoint on a ServeMux. authLimit wraps the
// credential endpoints; pass nil to leave them unthrottled.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	if authLimit == nil {
		authLimit = middleware.Chain()
	}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Account.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Account.Login)))
	mux.HandleFunc("GET /accounts/me", h.Account.Me)
	mux.HandleFunc("PATCH /accounts/me", h.Account.UpdateMe)

	mux.HandleFunc("POST /processes", h.Process.Create)
	mux.HandleFunc("GET /processes", h.Process.List)
	mux.HandleFunc("GET /processes/mine", h.Process.ListMine)
	mux.HandleFunc("GET /processes/{id}", h.Process.Get)
	mux.HandleFunc("PATCH /processes/{id}", h.Process.Update)
	mux.HandleFunc("DELETE /processes/{id}", h.Process.Delete)

	mux.HandleFunc("POST /processes/{id}/timeline", h.Timeline.Create)
	mux.HandleFunc("GET /processes/{id}/timeline", h.Timeline.GetByProcess)
	mux.HandleFunc("DELETE /timelines/{id}", h.Timeline.Delete)
	mux.HandleFunc("GET /timelines/{id}/events", h.Timeline.ListEvents)
	mux.HandleFunc("POST /timelines/{id}/events", h.Timeline.AddEvent)
	mux.HandleFunc("PATCH /events/{id}", h.Timeline.ModifyEvent)
	mux.HandleFunc("DELETE /events/{id}", h.Timeline.RemoveEvent)

	mux.HandleFunc("POST /processes/{id}/observations", h.Observation.Create)
	mux.HandleFunc("GET /processes/{id}/observations", h.Observation.ListByProcess)
	mux.HandleFunc("PATCH /observations/{id}", h.Observation.Modify)
	mux.HandleFunc("DELETE /observations/{id}", h.Observation.Delete)

	return mux
}
