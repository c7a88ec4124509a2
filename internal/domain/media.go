package domain

import "strconv"

// MediaKind is decided once from the input URL and never re-derived.
type MediaKind int

const (
	KindVideo MediaKind = iota
	KindStory
)

func (k MediaKind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindStory:
		return "story"
	default:
		return "unknown"
	}
}

type Credentials struct {
	Username string
	Password string
}

// Target is the URL the user asked for together with its declared kind.
type Target struct {
	RawURL string
	Kind   MediaKind
}

// Variant is one encoded rendition of a media item.
type Variant struct {
	URL    string
	Width  int
	Height int
}

// Size renders the dimensions as WxH for logs.
func (v Variant) Size() string {
	return strconv.Itoa(v.Width) + "x" + strconv.Itoa(v.Height)
}

// MediaRecord holds the variants returned by Instagram for one post or story,
// in the order the service listed them.
type MediaRecord struct {
	ID     string
	Videos []Variant
	Images []Variant
}

type DownloadTarget struct {
	SourceURL       string
	DestinationPath string
}
