package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/secmon-lab/ticklist/pkg/usecase"
	"github.com/secmon-lab/ticklist/pkg/utils/logging"
)

type Server struct {
	router         *chi.Mux
	uc             *usecase.UseCases
	changeLogLimit int
}

type Options func(*Server)

// WithChangeLogLimit caps how many records GET /api/changelog returns
func WithChangeLogLimit(limit int) Options {
	return func(s *Server) {
		s.changeLogLimit = limit
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:         r,
		uc:             uc,
		changeLogLimit: 50,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(sessionMiddleware)

		r.Route("/checklist", func(r chi.Router) {
			r.Get("/", s.getChecklist)
			r.Delete("/", s.clearChecklist)

			r.Post("/items", s.addItems)
			r.Delete("/items/{itemID}", s.deleteItem)
			r.Post("/toggle", s.toggleItem)
			r.Post("/move", s.moveItem)
			r.Post("/edit", s.editItem)
			r.Delete("/categories/{name}", s.deleteCategory)
		})

		r.Post("/generate", s.generate)

		r.Post("/command", s.command)
		r.Post("/command/confirm", s.confirmCommand)

		r.Get("/changelog", s.changeLog)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
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
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
