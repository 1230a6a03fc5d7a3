package tmdb

import "strings"

// DefaultImageBaseURL is the TMDB image CDN root
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// Size tokens used by the UI
const (
	PosterSize   = "w500"
	BackdropSize = "original"
	ProfileSize  = "w45"
)

// ImageURL builds an image URL on the default CDN
func ImageURL(size, path string) string {
	return NewImageURLBuilder(DefaultImageBaseURL).URL(size, path)
}

// ImageURLBuilder builds image URLs from a configurable base
type ImageURLBuilder struct {
	base string
}

// NewImageURLBuilder creates a builder for base; an empty base uses the default CDN
func NewImageURLBuilder(base string) ImageURLBuilder {
	base = strings.TrimRight(base, "/")
	if base == "" {
		base = DefaultImageBaseURL
	}
	return ImageURLBuilder{base: base}
}

// URL returns base/size/path, or "" when the API gave no path
func (b ImageURLBuilder) URL(size, path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.base + "/" + size + path
}
