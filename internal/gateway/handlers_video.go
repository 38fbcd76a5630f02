package gateway

import (
	"net/http"
)

// fetch runs the resolve and extract stages for route. On failure it writes
// the error response and returns ok == false.
func (s *Server) fetch(w http.ResponseWriter, r *http.Request, route RouteKind, p Params) (Reference, RawRecord, bool) {
	ref, err := s.resolver.Resolve(route, p)
	if err != nil {
		writeGatewayError(w, err)
		return Reference{}, nil, false
	}
	rec, ok := s.extract(w, r, route, ref)
	if !ok {
		return Reference{}, nil, false
	}
	return ref, rec, true
}

func (s *Server) extract(w http.ResponseWriter, r *http.Request, route RouteKind, ref Reference) (RawRecord, bool) {
	profile := ProfileFor(route)
	rec, err := s.extractor.Extract(r.Context(), ref, profile)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("route", string(route)).
			Str("kind", ref.Kind.String()).
			Str("locator", ref.Locator()).
			Str("profile", profile.Name).
			Msg("extraction failed")
		writeGatewayError(w, err)
		return nil, false
	}
	return rec, true
}

func (s *Server) HandleInfo(w http.ResponseWriter, r *http.Request) {
	_, rec, ok := s.fetch(w, r, RouteInfo, Params{URL: r.URL.Query().Get("url")})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ProjectVideoDetail(rec))
}

func (s *Server) HandleMeta(w http.ResponseWriter, r *http.Request) {
	_, rec, ok := s.fetch(w, r, RouteMeta, Params{URL: r.URL.Query().Get("url")})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ProjectVideoMeta(rec))
}
