package gateway

// Optional values are pointers without omitempty so unknown fields encode as
// null instead of disappearing.

type Format struct {
	FormatID *string  `json:"format_id"`
	Ext      *string  `json:"ext"`
	ACodec   *string  `json:"acodec"`
	VCodec   *string  `json:"vcodec"`
	URL      string   `json:"url"`
	Filesize *int64   `json:"filesize"`
	TBR      *float64 `json:"tbr"`
	Height   *int64   `json:"height"`
	Width    *int64   `json:"width"`
	FPS      *float64 `json:"fps"`
}

type VideoDetail struct {
	ID          *string       `json:"id"`
	URL         *string       `json:"url"`
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Thumbnail   *string       `json:"thumbnail"`
	Duration    *float64      `json:"duration"`
	ViewCount   *int64        `json:"view_count"`
	LikeCount   *int64        `json:"like_count"`
	Formats     *FormatStream `json:"formats"`
}

type VideoMeta struct {
	ID         *string  `json:"id"`
	Title      *string  `json:"title"`
	Uploader   *string  `json:"uploader"`
	ViewCount  *int64   `json:"view_count"`
	LikeCount  *int64   `json:"like_count"`
	Thumbnail  *string  `json:"thumbnail"`
	Duration   *float64 `json:"duration"`
	ChannelURL *string  `json:"channel_url"`
}

type VideoSummary struct {
	ID        string  `json:"id"`
	Title     *string `json:"title"`
	URL       string  `json:"url"`
	Thumbnail *string `json:"thumbnail"`
}

type PlaylistSummary struct {
	ID       *string        `json:"id"`
	Title    *string        `json:"title"`
	Uploader *string        `json:"uploader"`
	URL      string         `json:"url"`
	Videos   []VideoSummary `json:"videos"`
}

type PlaylistRef struct {
	ID        string  `json:"id"`
	Title     *string `json:"title"`
	URL       string  `json:"url"`
	Thumbnail *string `json:"thumbnail"`
}

type ChannelSummary struct {
	ID        *string        `json:"id"`
	Name      *string        `json:"name"`
	Icon      *string        `json:"icon"`
	URL       string         `json:"url"`
	Videos    []VideoSummary `json:"videos"`
	Playlists []PlaylistRef  `json:"playlists"`
}

type SearchResult struct {
	ID        string       `json:"id"`
	Title     *string      `json:"title"`
	URL       *string      `json:"url"`
	Type      ResourceKind `json:"type"`
	Thumbnail *string      `json:"thumbnail"`
}
