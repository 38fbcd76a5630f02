package gateway

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const serviceName = "video-resolver-service"

type Server struct {
	extractor Extractor
	resolver  *Resolver
	cookies   CookieSource
	log       zerolog.Logger
}

// NewServer wires the pipeline. cookies may be nil when no credential
// material is configured.
func NewServer(ex Extractor, res *Resolver, cookies CookieSource, log zerolog.Logger) *Server {
	return &Server{
		extractor: ex,
		resolver:  res,
		cookies:   cookies,
		log:       log,
	}
}

type RouterOptions struct {
	// Timeout bounds each request, including the extractor call. Zero
	// disables the bound.
	Timeout       time.Duration
	AllowedOrigin string
}

func (s *Server) Router(opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware(opts.AllowedOrigin))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/", s.HandleHealth)
	r.Get("/health", s.HandleHealth)

	r.Get("/info", s.HandleInfo)
	r.Get("/meta", s.HandleMeta)
	r.Get("/playlist", s.HandlePlaylist)
	r.Get("/channel", s.HandleChannel)
	r.Get("/search", s.HandleSearch)
	r.Get("/home", s.HandleHome)
	r.Get("/trending", s.HandleTrending)

	return r
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	cookies := "disabled"
	if s.cookies != nil {
		cookies = "ok"
		if err := s.cookies.Check(r.Context()); err != nil {
			cookies = err.Error()
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": serviceName,
		"cookies": cookies,
	})
}
