package svd

import "context"

// MediaInfo is the metadata subset we surface from a non-downloading
// probe.
type MediaInfo struct {
	Title       string  `json:"title"`
	Duration    float64 `json:"duration,omitempty"`
	Uploader    string  `json:"uploader,omitempty"`
	Description string  `json:"description,omitempty"`
	WebpageURL  string  `json:"webpage_url,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

// CollectionEntry is one member of a flat playlist/channel listing. URL
// may be empty when the listing only yields an item identifier.
type CollectionEntry struct {
	ID    string
	URL   string
	Title string
}

// MediaExtractor wraps the external extraction tooling. Fetch methods
// take a yt-dlp style output template (`dir/name.%(ext)s`) and leave
// whatever files the extraction produced on disk; the downloader owns
// all naming and layout policy on top of that.
type MediaExtractor interface {
	// Probe resolves item metadata without downloading anything.
	Probe(ctx context.Context, url string) (*MediaInfo, error)

	// FetchVideo downloads the best muxed video+audio stream converted
	// to mp4. When withSubtitles is set, all available subtitle tracks
	// (auto-generated included) are written alongside as vtt.
	FetchVideo(ctx context.Context, url, outputTemplate string, withSubtitles bool) error

	// FetchAudio downloads the best audio stream transcoded to wav.
	FetchAudio(ctx context.Context, url, outputTemplate string) error

	// FetchSubtitles downloads all available subtitle tracks as vtt
	// without downloading the media itself.
	FetchSubtitles(ctx context.Context, url, outputTemplate string) error

	// ListEntries enumerates the members of a playlist or channel
	// without downloading them.
	ListEntries(ctx context.Context, url string) ([]CollectionEntry, error)
}
