package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cpalomino/wedding-api/internal/auth"
)

func RegisterRoutes(
	r *chi.Mux,
	authHandler *auth.AuthHandler,
	guestHandler *GuestHandler,
	rsvpHandler *RSVPHandler,
	invitationHandler *InvitationHandler,
	statsHandler *StatsHandler,
	exportHandler *ExportHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Wedding Invitation API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// CSV is not JSON, so export stays a plain chi route.
	r.Get("/api/export", exportHandler.ServeHTTP)

	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	// Auth routes
	huma.Post(api, "/api/auth", authHandler.HandleLogin)
	huma.Delete(api, "/api/auth", authHandler.HandleLogout)

	// Public invitation surface
	huma.Get(api, "/api/invitation/{code}", invitationHandler.HandleGet)
	huma.Post(api, "/api/rsvp", rsvpHandler.HandleSubmit)

	// Admin surface
	huma.Get(api, "/api/guests", guestHandler.HandleList, secured)
	huma.Post(api, "/api/guests", guestHandler.HandleCreate, secured, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})
	huma.Put(api, "/api/guests", guestHandler.HandleUpdate, secured)
	huma.Get(api, "/api/guests/{id}/share", guestHandler.HandleShare, secured)
	huma.Delete(api, "/api/guests", guestHandler.HandleDelete, secured)
	huma.Get(api, "/api/stats", statsHandler.HandleStats, secured)
}
