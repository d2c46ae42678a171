package svd

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type CollectionKind string

const (
	CollectionKindPlaylist CollectionKind = "playlist"
	CollectionKindChannel  CollectionKind = "channel"
)

// IsCollection reports whether a URL denotes a playlist or channel
// rather than a single item. The patterns mirror each platform's URL
// structure: youtube playlists/channels/creator pages, and tiktok
// creator profiles without an item segment.
func IsCollection(url string) bool {
	if strings.Contains(url, "youtube.com") {
		return strings.Contains(url, "/playlist?") ||
			strings.Contains(url, "/channel/") ||
			strings.Contains(url, "/@") ||
			strings.Contains(url, "/c/")
	}
	if strings.Contains(url, "tiktok.com/@") &&
		!strings.Contains(url, "/video/") {
		return true
	}
	return false
}

// ClassifyCollection distinguishes playlist URLs from channel/creator
// URLs. Only meaningful when IsCollection holds.
func ClassifyCollection(url string) CollectionKind {
	if strings.Contains(url, "playlist") {
		return CollectionKindPlaylist
	}
	return CollectionKindChannel
}

type CollectionExpandErr struct {
	URL string `json:"url"`
	Err error  `json:"-"`
}

func AsCollectionExpandErr(err error) (e *CollectionExpandErr) {
	errors.As(err, &e)
	return
}

func (err *CollectionExpandErr) Error() string {
	return fmt.Sprintf("expanding collection `%s`: %v", err.URL, err.Err)
}

func (err *CollectionExpandErr) Unwrap() error { return err.Err }

// ExpandCollection enumerates member item URLs via the extractor's flat
// listing. Members without an explicit URL are reconstructed from their
// item identifier using the canonical watch template. A listing error
// fails the whole collection: zero members, error surfaced.
func ExpandCollection(
	ctx context.Context,
	extractor MediaExtractor,
	url string,
) ([]string, error) {
	entries, err := extractor.ListEntries(ctx, url)
	if err != nil {
		return nil, &CollectionExpandErr{URL: url, Err: err}
	}

	urls := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch {
		case entry.URL != "":
			urls = append(urls, entry.URL)
		case entry.ID != "":
			urls = append(urls, "https://www.youtube.com/watch?v="+entry.ID)
		}
	}
	return urls, nil
}
