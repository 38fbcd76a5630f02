package gateway

import (
	"net/http"
)

func (s *Server) HandlePlaylist(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ref, rec, ok := s.fetch(w, r, RoutePlaylist, Params{ID: q.Get("id"), URL: q.Get("url")})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ProjectPlaylist(rec, ClassifyAll(rec), ref))
}

func (s *Server) HandleChannel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ref, rec, ok := s.fetch(w, r, RouteChannel, Params{ID: q.Get("id"), URL: q.Get("url")})
	if !ok {
		return
	}

	entries := ClassifyAll(rec)
	if tab, found := uploadsTabLink(entries); found {
		// Channel metadata stays with the page record; only the listing
		// comes from the uploads tab.
		tabRec, ok := s.extract(w, r, RouteChannel, Reference{Kind: KindChannel, Value: tab})
		if !ok {
			return
		}
		entries = ClassifyAll(tabRec)
	}
	writeJSON(w, http.StatusOK, ProjectChannel(rec, entries, ref))
}

// uploadsTabLink finds the uploads tab in a listing made only of channel tab
// links.
func uploadsTabLink(entries []Entry) (string, bool) {
	var uploads string
	for _, e := range entries {
		if e.Kind != ResourceChannel || e.URL == nil {
			return "", false
		}
		tab, ok := channelTab(*e.URL)
		if !ok {
			return "", false
		}
		if tab == uploadsTab {
			uploads = *e.URL
		}
	}
	return uploads, uploads != ""
}

func (s *Server) HandleHome(w http.ResponseWriter, r *http.Request) {
	s.handleFeed(w, r, RouteHome)
}

func (s *Server) HandleTrending(w http.ResponseWriter, r *http.Request) {
	s.handleFeed(w, r, RouteTrending)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request, route RouteKind) {
	_, rec, ok := s.fetch(w, r, route, Params{})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ProjectFeed(ClassifyAll(rec)))
}
