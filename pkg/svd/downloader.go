package svd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Downloader produces one DownloadResult per request. Items land under
// `<Root>/<YYYY-MM-DD>/<sanitized-title>/`.
type Downloader struct {
	Extractor MediaExtractor
	Root      string
	Logger    *slog.Logger

	// Now is for tests; nil means time.Now.
	Now func() time.Time
}

func (d *Downloader) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// DownloadSingle runs the full per-item sequence and always returns a
// result: extraction and filesystem errors are recorded on the result,
// never propagated. Any error aborts the remaining steps for the item;
// there is no partial success.
func (d *Downloader) DownloadSingle(
	ctx context.Context,
	request DownloadRequest,
) *DownloadResult {
	now := d.now()
	result := &DownloadResult{
		URL:       request.URL,
		Platform:  ClassifyPlatform(request.URL),
		Timestamp: strconv.FormatInt(now.Unix(), 10),
	}

	if err := d.download(ctx, request, now, result); err != nil {
		result.Error = err.Error()
		d.Logger.Error(
			"downloading item",
			"url", request.URL,
			"platform", result.Platform,
			"err", err.Error(),
		)
		return result
	}

	result.Success = true
	d.Logger.Info(
		"downloaded item",
		"url", request.URL,
		"platform", result.Platform,
	)
	return result
}

func (d *Downloader) download(
	ctx context.Context,
	request DownloadRequest,
	now time.Time,
	result *DownloadResult,
) error {
	info, err := d.Extractor.Probe(ctx, request.URL)
	if err != nil {
		return err
	}

	folder, err := d.itemFolder(now, info.Title)
	if err != nil {
		return err
	}

	if request.Video {
		if err := d.Extractor.FetchVideo(
			ctx,
			request.URL,
			filepath.Join(folder, "video.%(ext)s"),
			request.Subtitles,
		); err != nil {
			return err
		}
		if path := filepath.Join(folder, "video.mp4"); fileExists(path) {
			result.Paths.Video = path
		}
		if request.Subtitles {
			d.collectSubtitles(folder, "video", result)
		}
	}

	if request.Audio {
		if err := d.Extractor.FetchAudio(
			ctx,
			request.URL,
			filepath.Join(folder, "audio.%(ext)s"),
		); err != nil {
			return err
		}
		if path := filepath.Join(folder, "audio.wav"); fileExists(path) {
			result.Paths.Audio = path
		}
	}

	// subtitles may already have arrived as a side effect of the video
	// step; only fetch them separately if they didn't.
	if request.Subtitles && len(result.Paths.Subtitles) < 1 {
		if err := d.Extractor.FetchSubtitles(
			ctx,
			request.URL,
			filepath.Join(folder, "sub.%(ext)s"),
		); err != nil {
			return err
		}
		d.collectSubtitles(folder, "sub", result)
	}

	d.removeUnrequested(request, folder)
	return nil
}

func (d *Downloader) itemFolder(now time.Time, title string) (string, error) {
	if title == "" {
		title = "unknown"
	}
	name := SafeTitle(title)
	if name == "" {
		name = "unknown"
	}

	folder := filepath.Join(d.Root, now.Format("2006-01-02"), name)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", fmt.Errorf("creating output folder: %w", err)
	}
	return folder, nil
}

// collectSubtitles relocates every `<base>.<lang>.vtt` track the
// extraction wrote into its canonical `sub-<lang>.vtt` name and records
// it on the result.
func (d *Downloader) collectSubtitles(
	folder, base string,
	result *DownloadResult,
) {
	matches, err := filepath.Glob(filepath.Join(folder, base+".*.vtt"))
	if err != nil {
		return
	}

	for _, match := range matches {
		name := filepath.Base(match)
		lang := strings.TrimSuffix(strings.TrimPrefix(name, base+"."), ".vtt")
		if lang == "" {
			continue
		}

		renamed := filepath.Join(folder, "sub-"+lang+".vtt")
		if err := os.Rename(match, renamed); err != nil {
			d.Logger.Warn(
				"relocating subtitle track",
				"path", match,
				"err", err.Error(),
			)
			continue
		}

		if result.Paths.Subtitles == nil {
			result.Paths.Subtitles = map[string]string{}
		}
		result.Paths.Subtitles[lang] = renamed
	}
}

// removeUnrequested deletes artifacts that arrived as side effects of
// other steps but weren't asked for.
func (d *Downloader) removeUnrequested(request DownloadRequest, folder string) {
	if !request.Video {
		removeIfExists(filepath.Join(folder, "video.mp4"))
	}
	if !request.Audio {
		removeIfExists(filepath.Join(folder, "audio.wav"))
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func removeIfExists(path string) {
	if fileExists(path) {
		_ = os.Remove(path)
	}
}
