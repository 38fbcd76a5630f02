package gateway

import "strings"

type ResourceKind string

const (
	ResourceVideo    ResourceKind = "video"
	ResourcePlaylist ResourceKind = "playlist"
	ResourceChannel  ResourceKind = "channel"
)

// Entry is a child record after classification. Raw fields are copied out
// here once; projections only look at Entry.
type Entry struct {
	Kind      ResourceKind
	ID        string
	Title     *string
	URL       *string
	Thumbnail *string
}

// Classify decides what a flat-listing entry denotes. Entries without an id
// are dropped (ok == false).
//
// Channel detection is a substring match on the entry url. A url that merely
// mentions "channel" elsewhere is misread as a channel.
func Classify(raw RawRecord) (Entry, bool) {
	id := raw.Text("id")
	if id == "" {
		return Entry{}, false
	}

	e := Entry{
		Kind:      ResourceVideo,
		ID:        id,
		Title:     raw.Str("title"),
		URL:       raw.Str("url"),
		Thumbnail: rawThumbnail(raw),
	}

	switch raw.Text("_type") {
	case "playlist":
		e.Kind = ResourcePlaylist
	case "url":
		if e.URL != nil && strings.Contains(*e.URL, "channel") {
			e.Kind = ResourceChannel
		}
	}
	return e, true
}

// ClassifyAll classifies rec's entries in order, dropping the ones Classify
// rejects.
func ClassifyAll(rec RawRecord) []Entry {
	raw := rec.List("entries")
	out := make([]Entry, 0, len(raw))
	for _, r := range raw {
		if e, ok := Classify(r); ok {
			out = append(out, e)
		}
	}
	return out
}

// rawThumbnail applies the source-side part of the thumbnail rule: the
// explicit thumbnail, else the first listed one.
func rawThumbnail(r RawRecord) *string {
	if t := r.Str("thumbnail"); t != nil {
		return t
	}
	return r.Str("thumbnails", 0, "url")
}
