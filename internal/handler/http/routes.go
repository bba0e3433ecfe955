package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.CORSAllowedOrigins,
			AllowedMethods: append(append([]string{}, knownMethods...), http.MethodOptions),
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
	}
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// service endpoints
	router.Get("/health", h.health)
	router.Get("/version", h.version)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/user/create", h.signup)
		r.Post("/user/token", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Delete("/user/token", h.logout)

		r.Get("/user/me", h.getMe)
		r.Put("/user/me", h.replaceMe)
		r.Patch("/user/me", h.updateMe)

		r.Group(func(r chi.Router) {
			r.Use(h.admin)

			r.Get("/user/manage", h.listUsers)
			r.Post("/user/manage", h.createUser)
			r.Get("/user/manage/{id}", h.getUser)
			r.Put("/user/manage/{id}", h.replaceUser)
			r.Patch("/user/manage/{id}", h.updateUser)
			r.Delete("/user/manage/{id}", h.deleteUser)
		})

		r.Get("/client/clients", h.listClients)
		r.Post("/client/clients", h.createClient)
		r.Get("/client/clients/{id}", h.getClient)
		r.Put("/client/clients/{id}", h.replaceClient)
		r.Patch("/client/clients/{id}", h.updateClient)
		r.Delete("/client/clients/{id}", h.deleteClient)

		r.Get("/client/databases", h.listDatabases)
		r.Post("/client/databases", h.createDatabase)
		r.Get("/client/databases/{id}", h.getDatabase)
		r.Put("/client/databases/{id}", h.replaceDatabase)
		r.Patch("/client/databases/{id}", h.updateDatabase)
		r.Delete("/client/databases/{id}", h.deleteDatabase)

		r.Get("/client/projects", h.listProjects)
		r.Post("/client/projects", h.createProject)
		r.Get("/client/projects/{id}", h.getProject)
		r.Put("/client/projects/{id}", h.replaceProject)
		r.Patch("/client/projects/{id}", h.updateProject)
		r.Delete("/client/projects/{id}", h.deleteProject)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
