package gateway

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	youtubeBase   = "https://www.youtube.com"
	watchURL      = youtubeBase + "/watch?v=%s"
	playlistURL   = youtubeBase + "/playlist?list=%s"
	channelURL    = youtubeBase + "/channel/%s"
	thumbnailURL  = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
	searchLocator = "ytsearch%d:%s"
	uploadsTab    = "videos"
)

// channelTabs are the path suffixes YouTube uses for the sections of a
// channel page.
var channelTabs = map[string]bool{
	"videos":    true,
	"shorts":    true,
	"streams":   true,
	"playlists": true,
	"featured":  true,
	"community": true,
	"podcasts":  true,
	"releases":  true,
	"store":     true,
	"about":     true,
	"search":    true,
}

type ReferenceKind int

const (
	KindVideo ReferenceKind = iota
	KindPlaylist
	KindChannel
	KindQuery
	KindFeed
)

func (k ReferenceKind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindPlaylist:
		return "playlist"
	case KindChannel:
		return "channel"
	case KindQuery:
		return "query"
	case KindFeed:
		return "feed"
	}
	return "unknown"
}

// Reference is a resolved identifier for one request. It is a value type and
// is never modified after Resolve returns it.
type Reference struct {
	Kind  ReferenceKind
	Value string
	// Limit caps the number of search hits; only used by KindQuery.
	Limit int
}

// Locator renders the string the extractor expects. A channel page without a
// tab lists its tabs rather than its uploads, so it is pointed at the uploads
// tab.
func (r Reference) Locator() string {
	switch r.Kind {
	case KindQuery:
		return fmt.Sprintf(searchLocator, r.Limit, r.Value)
	case KindChannel:
		return withUploadsTab(r.Value)
	}
	return r.Value
}

// channelTab reports the tab a channel page url points at, if any.
func channelTab(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	tab := path.Base(strings.TrimRight(u.Path, "/"))
	return tab, channelTabs[tab]
}

func withUploadsTab(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || strings.Trim(u.Path, "/") == "" {
		return raw
	}
	if _, ok := channelTab(raw); ok {
		return raw
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + uploadsTab
	return u.String()
}

// RouteKind names the route a reference is being resolved for.
type RouteKind string

const (
	RouteInfo     RouteKind = "info"
	RouteMeta     RouteKind = "meta"
	RoutePlaylist RouteKind = "playlist"
	RouteChannel  RouteKind = "channel"
	RouteSearch   RouteKind = "search"
	RouteHome     RouteKind = "home"
	RouteTrending RouteKind = "trending"
)

// Params carries the identifying query parameters of a request.
type Params struct {
	ID    string
	URL   string
	Query string
	Limit int
}

// Feeds maps curated feed routes to their fixed upstream references.
type Feeds struct {
	Home     string
	Trending string
}

// Resolver turns request parameters into a Reference. It never performs I/O.
type Resolver struct {
	feeds        Feeds
	defaultLimit int
}

func NewResolver(feeds Feeds, defaultLimit int) *Resolver {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &Resolver{feeds: feeds, defaultLimit: defaultLimit}
}

func (res *Resolver) Resolve(route RouteKind, p Params) (Reference, error) {
	// url and q are passed on verbatim; blank values count as missing.
	id := strings.TrimSpace(p.ID)
	rawURL := p.URL
	if strings.TrimSpace(rawURL) == "" {
		rawURL = ""
	}
	query := p.Query
	if strings.TrimSpace(query) == "" {
		query = ""
	}

	switch route {
	case RouteInfo, RouteMeta:
		if rawURL == "" {
			return Reference{}, &MissingReferenceError{Param: "url"}
		}
		return Reference{Kind: KindVideo, Value: rawURL}, nil

	case RoutePlaylist:
		if rawURL != "" {
			return Reference{Kind: KindPlaylist, Value: rawURL}, nil
		}
		if id == "" {
			return Reference{}, &MissingReferenceError{Param: "id or url"}
		}
		return Reference{Kind: KindPlaylist, Value: fmt.Sprintf(playlistURL, id)}, nil

	case RouteChannel:
		if rawURL != "" {
			return Reference{Kind: KindChannel, Value: rawURL}, nil
		}
		if id == "" {
			return Reference{}, &MissingReferenceError{Param: "id or url"}
		}
		return Reference{Kind: KindChannel, Value: fmt.Sprintf(channelURL, id)}, nil

	case RouteSearch:
		if query == "" {
			return Reference{}, &MissingReferenceError{Param: "q"}
		}
		limit := p.Limit
		if limit <= 0 {
			limit = res.defaultLimit
		}
		return Reference{Kind: KindQuery, Value: query, Limit: limit}, nil

	case RouteHome:
		return Reference{Kind: KindFeed, Value: res.feeds.Home}, nil

	case RouteTrending:
		return Reference{Kind: KindFeed, Value: res.feeds.Trending}, nil
	}

	return Reference{}, fmt.Errorf("gateway: unknown route %q", route)
}
