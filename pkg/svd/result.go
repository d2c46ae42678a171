package svd

// AssetSelection picks which assets a download should produce.
type AssetSelection struct {
	Video     bool `json:"video"`
	Audio     bool `json:"audio"`
	Subtitles bool `json:"subtitles"`
}

// AllAssets selects video, audio, and subtitles.
func AllAssets() AssetSelection {
	return AssetSelection{Video: true, Audio: true, Subtitles: true}
}

// DownloadRequest describes one single-item download. Immutable once
// issued.
type DownloadRequest struct {
	URL string `json:"url"`
	AssetSelection
}

// DownloadPaths holds the on-disk locations of the assets a download
// produced. Unset fields mean the asset was not requested or the
// extraction did not yield it.
type DownloadPaths struct {
	Video     string            `json:"video,omitempty"`
	Audio     string            `json:"audio,omitempty"`
	Subtitles map[string]string `json:"subtitles,omitempty"`
}

// DownloadResult reports one single-item attempt. It is created by the
// downloader, never mutated afterwards, and owned by the caller.
type DownloadResult struct {
	URL       string        `json:"url"`
	Platform  Platform      `json:"platform"`
	Timestamp string        `json:"timestamp"`
	Success   bool          `json:"success"`
	Paths     DownloadPaths `json:"paths"`
	Error     string        `json:"error,omitempty"`
}

// CollectionResult summarizes the downloads for one expanded playlist or
// channel input.
type CollectionResult struct {
	URL                 string           `json:"url"`
	Kind                CollectionKind   `json:"type"`
	TotalVideos         int              `json:"total_videos"`
	SuccessfulDownloads int              `json:"successful_downloads"`
	FailedDownloads     int              `json:"failed_downloads"`
	Videos              []DownloadResult `json:"videos"`
	Error               string           `json:"error,omitempty"`
}

// BatchItem is either a *DownloadResult (plain input URL) or a
// *CollectionResult (expanded playlist/channel input).
type BatchItem interface{ batchItem() }

func (*DownloadResult) batchItem()   {}
func (*CollectionResult) batchItem() {}

// BatchResult aggregates many single-item results in input order. After
// the batch completes, SuccessfulDownloads+FailedDownloads==TotalVideos.
type BatchResult struct {
	Date                string      `json:"date"`
	DownloadDir         string      `json:"download_directory"`
	TotalURLs           int         `json:"total_urls"`
	TotalVideos         int         `json:"total_videos"`
	SuccessfulDownloads int         `json:"successful_downloads"`
	FailedDownloads     int         `json:"failed_downloads"`
	Downloads           []BatchItem `json:"downloads"`
}
