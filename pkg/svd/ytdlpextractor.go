package svd

import (
	"context"
	"fmt"

	"github.com/lrstanley/go-ytdlp"
)

// downloadFormat prefers an mp4-muxable pairing so the conversion step
// is usually a remux rather than a re-encode.
const downloadFormat = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// YTDLPExtractor drives the yt-dlp wrapper library. All network I/O and
// transcoding happens inside yt-dlp and its ffmpeg postprocessors; this
// type only translates asset selections into flag sets.
type YTDLPExtractor struct{}

var _ MediaExtractor = YTDLPExtractor{}

func (YTDLPExtractor) Probe(ctx context.Context, url string) (*MediaInfo, error) {
	result, err := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		DumpSingleJSON().
		Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("probing `%s`: %w", url, err)
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("decoding probe output for `%s`: %w", url, err)
	}
	if len(infos) < 1 {
		return nil, fmt.Errorf("probing `%s`: no metadata returned", url)
	}

	return mediaInfoFromExtracted(infos[0]), nil
}

func (YTDLPExtractor) FetchVideo(
	ctx context.Context,
	url, outputTemplate string,
	withSubtitles bool,
) error {
	dl := ytdlp.New().
		Quiet().
		NoWarnings().
		ForceOverwrites().
		Format(downloadFormat).
		RecodeVideo("mp4").
		Output(outputTemplate)

	if withSubtitles {
		dl = dl.WriteSubs().WriteAutoSubs().SubFormat("vtt").SubLangs("all")
	}

	if _, err := dl.Run(ctx, url); err != nil {
		return fmt.Errorf("fetching video for `%s`: %w", url, err)
	}
	return nil
}

func (YTDLPExtractor) FetchAudio(
	ctx context.Context,
	url, outputTemplate string,
) error {
	_, err := ytdlp.New().
		Quiet().
		NoWarnings().
		ForceOverwrites().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat("wav").
		AudioQuality("192").
		Output(outputTemplate).
		Run(ctx, url)
	if err != nil {
		return fmt.Errorf("fetching audio for `%s`: %w", url, err)
	}
	return nil
}

func (YTDLPExtractor) FetchSubtitles(
	ctx context.Context,
	url, outputTemplate string,
) error {
	_, err := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		WriteSubs().
		WriteAutoSubs().
		SubFormat("vtt").
		SubLangs("all").
		Output(outputTemplate).
		Run(ctx, url)
	if err != nil {
		return fmt.Errorf("fetching subtitles for `%s`: %w", url, err)
	}
	return nil
}

func (YTDLPExtractor) ListEntries(
	ctx context.Context,
	url string,
) ([]CollectionEntry, error) {
	result, err := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		FlatPlaylist().
		DumpSingleJSON().
		Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("listing entries for `%s`: %w", url, err)
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("decoding listing output for `%s`: %w", url, err)
	}

	var entries []CollectionEntry
	for _, info := range infos {
		if len(info.Entries) < 1 {
			// not a playlist after all; treat the item itself as the
			// sole entry
			entries = append(entries, collectionEntryFromExtracted(info))
			continue
		}
		for _, entry := range info.Entries {
			entries = append(entries, collectionEntryFromExtracted(entry))
		}
	}
	return entries, nil
}

func mediaInfoFromExtracted(info *ytdlp.ExtractedInfo) *MediaInfo {
	out := new(MediaInfo)
	if info.Title != nil {
		out.Title = *info.Title
	}
	if info.Duration != nil {
		out.Duration = *info.Duration
	}
	if info.Uploader != nil {
		out.Uploader = *info.Uploader
	}
	if info.Description != nil {
		out.Description = *info.Description
	}
	if info.WebpageURL != nil {
		out.WebpageURL = *info.WebpageURL
	}
	if info.Thumbnail != nil {
		out.Thumbnail = *info.Thumbnail
	}
	return out
}

func collectionEntryFromExtracted(info *ytdlp.ExtractedInfo) CollectionEntry {
	entry := CollectionEntry{ID: info.ID}
	if info.URL != nil {
		entry.URL = *info.URL
	}
	if info.Title != nil {
		entry.Title = *info.Title
	}
	return entry
}
