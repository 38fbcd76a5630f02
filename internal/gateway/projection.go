package gateway

import (
	"encoding/json"
	"fmt"
	"iter"
)

// FormatStream is a lazy, single-use sequence of playable formats. Once it
// has been ranged over (or encoded) it yields nothing.
type FormatStream struct {
	seq      iter.Seq[Format]
	consumed bool
}

func newFormatStream(raw []RawRecord) *FormatStream {
	return &FormatStream{
		seq: func(yield func(Format) bool) {
			for _, r := range raw {
				f, ok := projectFormat(r)
				if !ok {
					continue
				}
				if !yield(f) {
					return
				}
			}
		},
	}
}

// All returns the remaining formats. The sequence can be consumed only once.
func (s *FormatStream) All() iter.Seq[Format] {
	return func(yield func(Format) bool) {
		if s == nil || s.consumed {
			return
		}
		s.consumed = true
		for f := range s.seq {
			if !yield(f) {
				return
			}
		}
	}
}

func (s *FormatStream) MarshalJSON() ([]byte, error) {
	list := []Format{}
	for f := range s.All() {
		list = append(list, f)
	}
	return json.Marshal(list)
}

func projectFormat(r RawRecord) (Format, bool) {
	u := r.Text("url")
	if u == "" {
		return Format{}, false
	}
	return Format{
		FormatID: r.Str("format_id"),
		Ext:      r.Str("ext"),
		ACodec:   r.Str("acodec"),
		VCodec:   r.Str("vcodec"),
		URL:      u,
		Filesize: r.Int("filesize"),
		TBR:      r.Float("tbr"),
		Height:   r.Int("height"),
		Width:    r.Int("width"),
		FPS:      r.Float("fps"),
	}, true
}

func videoURL(id string) string { return fmt.Sprintf(watchURL, id) }
func playlistLink(id string) string { return fmt.Sprintf(playlistURL, id) }

// videoThumbnail completes the thumbnail rule for videos: the source value if
// any, else the synthesized hqdefault image.
func videoThumbnail(id string, source *string) *string {
	if source != nil {
		return source
	}
	if id == "" {
		return nil
	}
	t := fmt.Sprintf(thumbnailURL, id)
	return &t
}

func ProjectVideoDetail(rec RawRecord) VideoDetail {
	id := rec.Text("id")
	var link *string
	if id != "" {
		l := videoURL(id)
		link = &l
	} else {
		link = rec.Str("webpage_url")
	}

	return VideoDetail{
		ID:          rec.Str("id"),
		URL:         link,
		Title:       rec.Str("title"),
		Description: rec.Str("description"),
		Thumbnail:   videoThumbnail(id, rawThumbnail(rec)),
		Duration:    rec.Float("duration"),
		ViewCount:   rec.Int("view_count"),
		LikeCount:   rec.Int("like_count"),
		Formats:     newFormatStream(rec.List("formats")),
	}
}

func ProjectVideoMeta(rec RawRecord) VideoMeta {
	id := rec.Text("id")

	chURL := rec.Str("channel_url")
	if chURL == nil {
		chURL = rec.Str("uploader_url")
	}
	if chURL == nil {
		if chID := rec.Text("channel_id"); chID != "" {
			u := fmt.Sprintf(channelURL, chID)
			chURL = &u
		}
	}

	uploader := rec.Str("uploader")
	if uploader == nil {
		uploader = rec.Str("channel")
	}

	return VideoMeta{
		ID:         rec.Str("id"),
		Title:      rec.Str("title"),
		Uploader:   uploader,
		ViewCount:  rec.Int("view_count"),
		LikeCount:  rec.Int("like_count"),
		Thumbnail:  videoThumbnail(id, rawThumbnail(rec)),
		Duration:   rec.Float("duration"),
		ChannelURL: chURL,
	}
}

func ProjectVideoSummary(e Entry) VideoSummary {
	return VideoSummary{
		ID:        e.ID,
		Title:     e.Title,
		URL:       videoURL(e.ID),
		Thumbnail: videoThumbnail(e.ID, e.Thumbnail),
	}
}

func projectPlaylistRef(e Entry) PlaylistRef {
	return PlaylistRef{
		ID:        e.ID,
		Title:     e.Title,
		URL:       playlistLink(e.ID),
		Thumbnail: e.Thumbnail,
	}
}

// videoSummaries keeps the video entries only.
func videoSummaries(entries []Entry) []VideoSummary {
	out := make([]VideoSummary, 0, len(entries))
	for _, e := range entries {
		if e.Kind == ResourceVideo {
			out = append(out, ProjectVideoSummary(e))
		}
	}
	return out
}

func ProjectPlaylist(rec RawRecord, entries []Entry, ref Reference) PlaylistSummary {
	link := ref.Value
	if id := rec.Text("id"); id != "" {
		link = playlistLink(id)
	}

	uploader := rec.Str("uploader")
	if uploader == nil {
		uploader = rec.Str("channel")
	}

	return PlaylistSummary{
		ID:       rec.Str("id"),
		Title:    rec.Str("title"),
		Uploader: uploader,
		URL:      link,
		Videos:   videoSummaries(entries),
	}
}

func ProjectChannel(rec RawRecord, entries []Entry, ref Reference) ChannelSummary {
	id := rec.Str("channel_id")
	if id == nil {
		id = rec.Str("id")
	}

	name := rec.Str("channel")
	if name == nil {
		name = rec.Str("uploader")
	}
	if name == nil {
		name = rec.Str("title")
	}

	playlists := make([]PlaylistRef, 0)
	for _, e := range entries {
		if e.Kind == ResourcePlaylist {
			playlists = append(playlists, projectPlaylistRef(e))
		}
	}

	return ChannelSummary{
		ID:        id,
		Name:      name,
		Icon:      channelIcon(rec),
		URL:       ref.Value,
		Videos:    videoSummaries(entries),
		Playlists: playlists,
	}
}

// channelIcon prefers the uncropped avatar yt-dlp lists among the channel
// thumbnails. Channels never get a synthesized image.
func channelIcon(rec RawRecord) *string {
	for _, t := range rec.List("thumbnails") {
		if t.Text("id") == "avatar_uncropped" {
			if u := t.Str("url"); u != nil {
				return u
			}
		}
	}
	return rawThumbnail(rec)
}

func ProjectSearchResult(e Entry) SearchResult {
	res := SearchResult{
		ID:        e.ID,
		Title:     e.Title,
		Type:      e.Kind,
		Thumbnail: e.Thumbnail,
	}
	switch e.Kind {
	case ResourceVideo:
		u := videoURL(e.ID)
		res.URL = &u
		res.Thumbnail = videoThumbnail(e.ID, e.Thumbnail)
	case ResourcePlaylist:
		u := playlistLink(e.ID)
		res.URL = &u
	case ResourceChannel:
		res.URL = e.URL
	}
	return res
}

func ProjectSearch(entries []Entry) []SearchResult {
	out := make([]SearchResult, 0, len(entries))
	for _, e := range entries {
		out = append(out, ProjectSearchResult(e))
	}
	return out
}

func ProjectFeed(entries []Entry) []VideoSummary {
	return videoSummaries(entries)
}
