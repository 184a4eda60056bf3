package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"devdiary/internal/handlers"
	"devdiary/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	AuthService     service.AuthService
	EntryService    service.EntryService
	ProjectService  service.ProjectService
	TagService      service.TagService
	CalendarService service.CalendarService
	InsightsService service.InsightsService
	Health          handlers.Pinger

	// LocalSessions resolves callers from the persisted current user instead
	// of bearer tokens.
	LocalSessions bool
	CORSOrigins   []string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.CORSOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	entryHandler := handlers.NewEntryHandler(deps.EntryService)
	entryPageHandler := handlers.NewEntryPageHandler(deps.EntryService)
	projectHandler := handlers.NewProjectHandler(deps.ProjectService)
	tagHandler := handlers.NewTagHandler(deps.TagService)
	calendarHandler := handlers.NewCalendarHandler(deps.CalendarService)
	insightsHandler := handlers.NewInsightsHandler(deps.InsightsService)
	healthHandler := handlers.NewHealthHandler(deps.Health)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(deps.AuthService, deps.LocalSessions))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
				r.Post("/refresh", authHandler.Refresh)
				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.Me)
			})

			r.Route("/entries", func(r chi.Router) {
				r.Get("/", entryHandler.List)
				r.Post("/", entryHandler.Create)
				r.Get("/{id}", entryHandler.Get)
				r.Put("/{id}", entryHandler.Update)
				r.Delete("/{id}", entryHandler.Delete)
				r.Method(http.MethodGet, "/{id}/html", entryPageHandler)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Put("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", tagHandler.List)
				r.Post("/", tagHandler.Create)
				r.Delete("/{id}", tagHandler.Delete)
			})

			r.Method(http.MethodGet, "/calendar/{year}/{month}", calendarHandler)

			r.Route("/insights", func(r chi.Router) {
				r.Get("/summary", insightsHandler.Summary)
				r.Get("/mood-trend", insightsHandler.MoodTrend)
			})
		})
	})

	return r
}
