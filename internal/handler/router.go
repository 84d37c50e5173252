package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appMiddleware "github.com/ardiansyah-dp/buku-tamu-backend/internal/middleware"
)

type Router struct {
	authHandler   *AuthHandler
	systemHandler *SystemHandler
	guestHandler  *GuestHandler
	userHandler   *UserHandler
}

func NewRouter(
	authHandler *AuthHandler,
	systemHandler *SystemHandler,
	guestHandler *GuestHandler,
	userHandler *UserHandler,
) *Router {
	return &Router{
		authHandler:   authHandler,
		systemHandler: systemHandler,
		guestHandler:  guestHandler,
		userHandler:   userHandler,
	}
}

// Setup merangkai tahapan request secara berurutan: RealIP -> request log ->
// recover boundary -> CORS -> batas body 1MB -> route. Recover dipasang
// sebelum handler supaya semua fault berakhir sebagai amplop JSON.
func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.RequestLogger)
	r.Use(appMiddleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chiMiddleware.RequestSize(1 << 20)) // 1MB, sama dengan limit lama

	r.Route("/api", func(r chi.Router) {

		// ── Status & introspeksi ──────────────────────────
		r.Get("/status", ro.systemHandler.Status)
		r.Get("/schema/tamu", ro.systemHandler.GuestTableSchema)

		// ── Login ─────────────────────────────────────────
		r.Post("/login", ro.authHandler.Login)
		r.Post("/admin-login", ro.authHandler.AdminLogin)

		// ── Buku tamu ─────────────────────────────────────
		r.Route("/tamu", func(r chi.Router) {
			r.Post("/", ro.guestHandler.Create)
			r.Get("/", ro.guestHandler.GetAll)
			r.Get("/export/pdf", ro.guestHandler.ExportPDF)
			r.Get("/{id}", ro.guestHandler.GetByID)
			r.Get("/{id}/badge", ro.guestHandler.Badge)
			r.Put("/{id}", ro.guestHandler.Update)
			r.Delete("/{id}", ro.guestHandler.Delete)
		})

		// ── Manajemen user ────────────────────────────────
		r.Route("/users", func(r chi.Router) {
			r.Get("/", ro.userHandler.GetAll)
			r.Get("/{id}", ro.userHandler.GetByID)
			r.Put("/{id}", ro.userHandler.Update)
			r.Delete("/{id}", ro.userHandler.Delete)
		})
	})

	return r
}
