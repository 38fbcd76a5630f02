package gateway

// Profile is one of the fixed extractor configurations. Routes pick a profile
// from the set below; nothing builds one on the fly.
type Profile struct {
	Name          string
	Flat          bool
	SkipDownload  bool
	AllowPlaylist bool
	Format        string
	Credentials   bool
}

var (
	ProfileVideoDetail = Profile{
		Name:         "video_detail",
		SkipDownload: true,
		Format:       "best",
		Credentials:  true,
	}
	ProfileVideoMeta = Profile{
		Name:         "video_meta",
		SkipDownload: true,
		Credentials:  true,
	}
	ProfileListing = Profile{
		Name:          "listing",
		Flat:          true,
		SkipDownload:  true,
		AllowPlaylist: true,
		Credentials:   true,
	}
	ProfileSearch = Profile{
		Name:          "search",
		Flat:          true,
		SkipDownload:  true,
		AllowPlaylist: true,
	}
	ProfileFeed = Profile{
		Name:          "feed",
		Flat:          true,
		SkipDownload:  true,
		AllowPlaylist: true,
		Credentials:   true,
	}
)

// ProfileFor returns the profile used by a route.
func ProfileFor(route RouteKind) Profile {
	switch route {
	case RouteInfo:
		return ProfileVideoDetail
	case RouteMeta:
		return ProfileVideoMeta
	case RoutePlaylist, RouteChannel:
		return ProfileListing
	case RouteSearch:
		return ProfileSearch
	default:
		return ProfileFeed
	}
}
