package svd

import (
	"context"
	"log/slog"
	"path/filepath"
)

// Batcher applies the single-item downloader across one or many input
// URLs, expanding collections along the way. Processing is strictly
// sequential in input order: one item at a time, which keeps us from
// hammering platforms with parallel requests.
type Batcher struct {
	Downloader *Downloader
	Logger     *slog.Logger

	// OnResult, if set, is called after each single-item attempt
	// completes. Used by the CLI to print per-URL markers as the batch
	// progresses.
	OnResult func(*DownloadResult)
}

// DownloadAll processes every input URL in order and aggregates the
// outcome. Counters are monotonic; a collection-expansion failure
// contributes zero items plus an error annotation and processing moves
// on to the next input. Duplicate inputs are processed independently.
func (b *Batcher) DownloadAll(
	ctx context.Context,
	urls []string,
	assets AssetSelection,
) *BatchResult {
	now := b.Downloader.now()
	result := &BatchResult{
		Date:        now.Format("2006-01-02"),
		DownloadDir: filepath.Join(b.Downloader.Root, now.Format("2006-01-02")),
		TotalURLs:   len(urls),
	}

	for _, url := range urls {
		b.Logger.Info("processing input", "url", url)

		if IsCollection(url) {
			collection := b.downloadCollection(ctx, url, assets)
			result.Downloads = append(result.Downloads, collection)
			result.TotalVideos += collection.TotalVideos
			result.SuccessfulDownloads += collection.SuccessfulDownloads
			result.FailedDownloads += collection.FailedDownloads
			continue
		}

		item := b.downloadItem(ctx, url, assets)
		result.Downloads = append(result.Downloads, item)
		result.TotalVideos++
		if item.Success {
			result.SuccessfulDownloads++
		} else {
			result.FailedDownloads++
		}
	}

	b.Logger.Info(
		"batch complete",
		"total_urls", result.TotalURLs,
		"total_videos", result.TotalVideos,
		"successful", result.SuccessfulDownloads,
		"failed", result.FailedDownloads,
	)
	return result
}

func (b *Batcher) downloadCollection(
	ctx context.Context,
	url string,
	assets AssetSelection,
) *CollectionResult {
	collection := &CollectionResult{
		URL:  url,
		Kind: ClassifyCollection(url),
	}

	members, err := ExpandCollection(ctx, b.Downloader.Extractor, url)
	if err != nil {
		collection.Error = err.Error()
		b.Logger.Error("expanding collection", "url", url, "err", err.Error())
		return collection
	}

	collection.TotalVideos = len(members)
	b.Logger.Info(
		"expanded collection",
		"url", url,
		"kind", collection.Kind,
		"members", len(members),
	)

	for i, member := range members {
		b.Logger.Info(
			"processing collection member",
			"url", member,
			"position", i+1,
			"total", len(members),
		)

		item := b.downloadItem(ctx, member, assets)
		collection.Videos = append(collection.Videos, *item)
		if item.Success {
			collection.SuccessfulDownloads++
		} else {
			collection.FailedDownloads++
		}
	}
	return collection
}

func (b *Batcher) downloadItem(
	ctx context.Context,
	url string,
	assets AssetSelection,
) *DownloadResult {
	item := b.Downloader.DownloadSingle(
		ctx,
		DownloadRequest{URL: url, AssetSelection: assets},
	)
	if b.OnResult != nil {
		b.OnResult(item)
	}
	return item
}
