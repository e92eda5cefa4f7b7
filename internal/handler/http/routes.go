package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Post("/signup", h.signup)
			r.Post("/verify-otp", h.verifyOTP)
			r.Post("/login", h.login)
			r.Post("/resend-otp", h.resendOTP)
			r.Post("/google", h.federatedLogin)

			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Put("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	return router
}

func (h *Handler) allowedOrigins() []string {
	if len(h.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return h.cfg.AllowedOrigins
}
