package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	res := NewResolver(Feeds{Home: ":ytrec", Trending: "https://www.youtube.com/feed/trending"}, 20)

	tests := []struct {
		name  string
		route RouteKind
		p     Params
		want  Reference
	}{
		{"playlist id", RoutePlaylist, Params{ID: "PL123"}, Reference{Kind: KindPlaylist, Value: "https://www.youtube.com/playlist?list=PL123"}},
		{"playlist url wins", RoutePlaylist, Params{ID: "PL123", URL: "https://youtube.com/playlist?list=PLx"}, Reference{Kind: KindPlaylist, Value: "https://youtube.com/playlist?list=PLx"}},
		{"channel id", RouteChannel, Params{ID: "UCabc"}, Reference{Kind: KindChannel, Value: "https://www.youtube.com/channel/UCabc"}},
		{"channel url", RouteChannel, Params{URL: "https://www.youtube.com/@handle"}, Reference{Kind: KindChannel, Value: "https://www.youtube.com/@handle"}},
		{"info url verbatim", RouteInfo, Params{URL: "https://youtu.be/abc?t=3"}, Reference{Kind: KindVideo, Value: "https://youtu.be/abc?t=3"}},
		{"meta url verbatim", RouteMeta, Params{URL: "abc"}, Reference{Kind: KindVideo, Value: "abc"}},
		{"url keeps surrounding spaces", RouteInfo, Params{URL: " https://youtu.be/abc "}, Reference{Kind: KindVideo, Value: " https://youtu.be/abc "}},
		{"query keeps surrounding spaces", RouteSearch, Params{Query: "  lofi "}, Reference{Kind: KindQuery, Value: "  lofi ", Limit: 20}},
		{"channel id trimmed", RouteChannel, Params{ID: " UCabc "}, Reference{Kind: KindChannel, Value: "https://www.youtube.com/channel/UCabc"}},
		{"search default limit", RouteSearch, Params{Query: "lofi beats"}, Reference{Kind: KindQuery, Value: "lofi beats", Limit: 20}},
		{"search explicit limit", RouteSearch, Params{Query: "lofi", Limit: 5}, Reference{Kind: KindQuery, Value: "lofi", Limit: 5}},
		{"home feed", RouteHome, Params{}, Reference{Kind: KindFeed, Value: ":ytrec"}},
		{"trending feed", RouteTrending, Params{}, Reference{Kind: KindFeed, Value: "https://www.youtube.com/feed/trending"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := res.Resolve(tt.route, tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Missing(t *testing.T) {
	res := NewResolver(Feeds{Home: "h", Trending: "t"}, 0)

	tests := []struct {
		route RouteKind
		p     Params
		msg   string
	}{
		{RouteInfo, Params{ID: "abc"}, "Missing url parameter"},
		{RouteMeta, Params{URL: "   "}, "Missing url parameter"},
		{RoutePlaylist, Params{}, "Missing id or url parameter"},
		{RouteChannel, Params{Query: "x"}, "Missing id or url parameter"},
		{RouteSearch, Params{URL: "https://example.com"}, "Missing q parameter"},
		{RouteSearch, Params{Query: " \t"}, "Missing q parameter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.route), func(t *testing.T) {
			_, err := res.Resolve(tt.route, tt.p)
			var missing *MissingReferenceError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestReference_Locator(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
		want string
	}{
		{"query", Reference{Kind: KindQuery, Value: "lofi beats", Limit: 5}, "ytsearch5:lofi beats"},
		{"video", Reference{Kind: KindVideo, Value: "https://youtu.be/x"}, "https://youtu.be/x"},
		{"channel id page", Reference{Kind: KindChannel, Value: "https://www.youtube.com/channel/UCabc"}, "https://www.youtube.com/channel/UCabc/videos"},
		{"channel handle", Reference{Kind: KindChannel, Value: "https://www.youtube.com/@handle/"}, "https://www.youtube.com/@handle/videos"},
		{"channel tab kept", Reference{Kind: KindChannel, Value: "https://www.youtube.com/@handle/shorts"}, "https://www.youtube.com/@handle/shorts"},
		{"channel not a url", Reference{Kind: KindChannel, Value: "UCabc"}, "UCabc"},
		{"playlist", Reference{Kind: KindPlaylist, Value: "https://www.youtube.com/playlist?list=PL1"}, "https://www.youtube.com/playlist?list=PL1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.Locator())
		})
	}
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, ProfileVideoDetail, ProfileFor(RouteInfo))
	assert.Equal(t, ProfileVideoMeta, ProfileFor(RouteMeta))
	assert.Equal(t, ProfileListing, ProfileFor(RoutePlaylist))
	assert.Equal(t, ProfileListing, ProfileFor(RouteChannel))
	assert.Equal(t, ProfileSearch, ProfileFor(RouteSearch))
	assert.Equal(t, ProfileFeed, ProfileFor(RouteHome))
	assert.Equal(t, ProfileFeed, ProfileFor(RouteTrending))
	assert.False(t, ProfileSearch.Credentials)
}
