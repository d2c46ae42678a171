package svd_test

import (
	"context"
	"errors"
	"testing"

	"socialdl/pkg/svd"
	"socialdl/pkg/svd/testsupport"
)

func newTestBatcher(
	t *testing.T,
	extractor *testsupport.MediaExtractorFake,
	onResult func(*svd.DownloadResult),
) *svd.Batcher {
	t.Helper()
	return &svd.Batcher{
		Downloader: newTestDownloader(t, extractor),
		Logger:     discardLogger(),
		OnResult:   onResult,
	}
}

func TestBatcher_MixedPlatformSelection(t *testing.T) {
	ytURL := "https://www.youtube.com/watch?v=AAA"
	ttURL := "https://www.tiktok.com/@user/video/123"
	extractor := &testsupport.MediaExtractorFake{
		Infos: map[string]*svd.MediaInfo{
			ytURL: {Title: "yt item"},
			ttURL: {Title: "tt item"},
		},
		VideoFiles: map[string][]string{
			ytURL: {"video.mp4", "video.en.vtt"},
			ttURL: {"video.mp4", "video.vi.vtt"},
		},
	}

	var seen []string
	batcher := newTestBatcher(t, extractor, func(item *svd.DownloadResult) {
		seen = append(seen, item.URL)
	})

	result := batcher.DownloadAll(
		context.Background(),
		[]string{ytURL, ttURL},
		svd.AssetSelection{Video: true, Subtitles: true},
	)

	if result.TotalURLs != 2 || result.TotalVideos != 2 {
		t.Fatalf(
			"totals: wanted 2/2; found %d/%d",
			result.TotalURLs,
			result.TotalVideos,
		)
	}
	if result.SuccessfulDownloads != 2 || result.FailedDownloads != 0 {
		t.Fatalf(
			"counters: wanted 2 ok, 0 failed; found %d ok, %d failed",
			result.SuccessfulDownloads,
			result.FailedDownloads,
		)
	}

	items := make([]*svd.DownloadResult, 0, 2)
	for _, entry := range result.Downloads {
		item, ok := entry.(*svd.DownloadResult)
		if !ok {
			t.Fatalf("entry: wanted *DownloadResult; found %T", entry)
		}
		items = append(items, item)
	}

	if items[0].Platform != svd.PlatformYouTube {
		t.Fatalf("platform: wanted `youtube`; found `%s`", items[0].Platform)
	}
	if items[1].Platform != svd.PlatformTikTok {
		t.Fatalf("platform: wanted `tiktok`; found `%s`", items[1].Platform)
	}
	for _, item := range items {
		if item.Paths.Video == "" {
			t.Fatalf("video path for `%s`: wanted non-empty", item.URL)
		}
		if item.Paths.Audio != "" {
			t.Fatalf(
				"audio path for `%s`: wanted empty; found `%s`",
				item.URL,
				item.Paths.Audio,
			)
		}
		if len(item.Paths.Subtitles) != 1 {
			t.Fatalf(
				"subtitles for `%s`: wanted 1 track; found %d",
				item.URL,
				len(item.Paths.Subtitles),
			)
		}
	}

	if len(seen) != 2 || seen[0] != ytURL || seen[1] != ttURL {
		t.Fatalf("callback order: wanted inputs in order; found `%v`", seen)
	}
}

func TestBatcher_ExpandsCollections(t *testing.T) {
	playlistURL := "https://www.youtube.com/playlist?list=PL123"
	memberA := "https://www.youtube.com/watch?v=AAA"
	memberB := "https://www.youtube.com/watch?v=BBB"
	extractor := &testsupport.MediaExtractorFake{
		Entries: map[string][]svd.CollectionEntry{
			playlistURL: {
				{ID: "AAA", URL: memberA},
				{ID: "BBB", URL: memberB},
			},
		},
		Infos: map[string]*svd.MediaInfo{
			memberA: {Title: "first"},
			memberB: {Title: "second"},
		},
		VideoFiles: map[string][]string{
			memberA: {"video.mp4"},
		},
		VideoErrs: map[string]error{
			memberB: errors.New("members only"),
		},
	}
	batcher := newTestBatcher(t, extractor, nil)

	result := batcher.DownloadAll(
		context.Background(),
		[]string{playlistURL},
		svd.AssetSelection{Video: true},
	)

	if result.TotalURLs != 1 {
		t.Fatalf("total urls: wanted 1; found %d", result.TotalURLs)
	}
	if result.TotalVideos != 2 {
		t.Fatalf("total videos: wanted 2; found %d", result.TotalVideos)
	}
	if result.SuccessfulDownloads != 1 || result.FailedDownloads != 1 {
		t.Fatalf(
			"counters: wanted 1 ok, 1 failed; found %d ok, %d failed",
			result.SuccessfulDownloads,
			result.FailedDownloads,
		)
	}

	if len(result.Downloads) != 1 {
		t.Fatalf("downloads: wanted 1 entry; found %d", len(result.Downloads))
	}
	collection, ok := result.Downloads[0].(*svd.CollectionResult)
	if !ok {
		t.Fatalf("entry: wanted *CollectionResult; found %T", result.Downloads[0])
	}
	if collection.Kind != svd.CollectionKindPlaylist {
		t.Fatalf("kind: wanted `playlist`; found `%s`", collection.Kind)
	}
	if len(collection.Videos) != 2 {
		t.Fatalf("members: wanted 2; found %d", len(collection.Videos))
	}
	if !collection.Videos[0].Success || collection.Videos[1].Success {
		t.Fatalf(
			"member outcomes: wanted [ok, failed]; found [%v, %v]",
			collection.Videos[0].Success,
			collection.Videos[1].Success,
		)
	}
}

func TestBatcher_ExpansionFailureContinues(t *testing.T) {
	channelURL := "https://www.youtube.com/@gone"
	singleURL := "https://www.youtube.com/watch?v=AAA"
	listErr := errors.New("channel removed")
	extractor := &testsupport.MediaExtractorFake{
		ListErrs: map[string]error{channelURL: listErr},
		Infos: map[string]*svd.MediaInfo{
			singleURL: {Title: "still here"},
		},
		VideoFiles: map[string][]string{
			singleURL: {"video.mp4"},
		},
	}
	batcher := newTestBatcher(t, extractor, nil)

	result := batcher.DownloadAll(
		context.Background(),
		[]string{channelURL, singleURL},
		svd.AssetSelection{Video: true},
	)

	// the failed expansion contributes zero items
	if result.TotalVideos != 1 {
		t.Fatalf("total videos: wanted 1; found %d", result.TotalVideos)
	}
	if result.SuccessfulDownloads != 1 || result.FailedDownloads != 0 {
		t.Fatalf(
			"counters: wanted 1 ok, 0 failed; found %d ok, %d failed",
			result.SuccessfulDownloads,
			result.FailedDownloads,
		)
	}

	collection, ok := result.Downloads[0].(*svd.CollectionResult)
	if !ok {
		t.Fatalf("entry: wanted *CollectionResult; found %T", result.Downloads[0])
	}
	if collection.Error == "" {
		t.Fatal("collection error: wanted annotation; found empty")
	}
	if collection.TotalVideos != 0 || len(collection.Videos) != 0 {
		t.Fatalf(
			"failed collection: wanted no members; found %d/%d",
			collection.TotalVideos,
			len(collection.Videos),
		)
	}
}

func TestBatcher_DuplicateInputsProcessedIndependently(t *testing.T) {
	url := "https://www.youtube.com/watch?v=AAA"
	extractor := &testsupport.MediaExtractorFake{
		Infos: map[string]*svd.MediaInfo{
			url: {Title: "repeat"},
		},
		VideoFiles: map[string][]string{
			url: {"video.mp4"},
		},
	}
	batcher := newTestBatcher(t, extractor, nil)

	result := batcher.DownloadAll(
		context.Background(),
		[]string{url, url},
		svd.AssetSelection{Video: true},
	)

	if result.TotalVideos != 2 || result.SuccessfulDownloads != 2 {
		t.Fatalf(
			"counters: wanted 2/2; found %d/%d",
			result.TotalVideos,
			result.SuccessfulDownloads,
		)
	}

	probes := 0
	for _, call := range extractor.Calls {
		if call == "probe:"+url {
			probes++
		}
	}
	if probes != 2 {
		t.Fatalf("probes: wanted 2; found %d", probes)
	}
}
