package gateway

import (
	"net/http"
	"strconv"
)

const maxSearchLimit = 50

func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if limitStr := q.Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 && v <= maxSearchLimit {
			limit = v
		}
	}

	_, rec, ok := s.fetch(w, r, RouteSearch, Params{Query: q.Get("q"), Limit: limit})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ProjectSearch(ClassifyAll(rec)))
}
