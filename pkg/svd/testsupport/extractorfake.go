package testsupport

import (
	"context"
	"os"
	"path/filepath"

	"socialdl/pkg/svd"
)

// MediaExtractorFake scripts per-URL extraction behavior for tests:
// which metadata a probe returns, which files each fetch drops into the
// output directory, and which calls fail. It records every call so
// tests can assert ordering and early aborts.
type MediaExtractorFake struct {
	Infos   map[string]*svd.MediaInfo
	Entries map[string][]svd.CollectionEntry

	// file names (relative to the output template's directory) written
	// by the corresponding fetch.
	VideoFiles    map[string][]string
	AudioFiles    map[string][]string
	SubtitleFiles map[string][]string

	ProbeErrs     map[string]error
	VideoErrs     map[string]error
	AudioErrs     map[string]error
	SubtitleErrs  map[string]error
	ListErrs      map[string]error

	Calls []string
}

var _ svd.MediaExtractor = (*MediaExtractorFake)(nil)

func (fake *MediaExtractorFake) Probe(
	ctx context.Context,
	url string,
) (*svd.MediaInfo, error) {
	fake.Calls = append(fake.Calls, "probe:"+url)
	if err := fake.ProbeErrs[url]; err != nil {
		return nil, err
	}
	if info := fake.Infos[url]; info != nil {
		return info, nil
	}
	return &svd.MediaInfo{Title: "unknown"}, nil
}

func (fake *MediaExtractorFake) FetchVideo(
	ctx context.Context,
	url, outputTemplate string,
	withSubtitles bool,
) error {
	fake.Calls = append(fake.Calls, "video:"+url)
	if err := fake.VideoErrs[url]; err != nil {
		return err
	}
	return writeFiles(outputTemplate, fake.VideoFiles[url])
}

func (fake *MediaExtractorFake) FetchAudio(
	ctx context.Context,
	url, outputTemplate string,
) error {
	fake.Calls = append(fake.Calls, "audio:"+url)
	if err := fake.AudioErrs[url]; err != nil {
		return err
	}
	return writeFiles(outputTemplate, fake.AudioFiles[url])
}

func (fake *MediaExtractorFake) FetchSubtitles(
	ctx context.Context,
	url, outputTemplate string,
) error {
	fake.Calls = append(fake.Calls, "subtitles:"+url)
	if err := fake.SubtitleErrs[url]; err != nil {
		return err
	}
	return writeFiles(outputTemplate, fake.SubtitleFiles[url])
}

func (fake *MediaExtractorFake) ListEntries(
	ctx context.Context,
	url string,
) ([]svd.CollectionEntry, error) {
	fake.Calls = append(fake.Calls, "list:"+url)
	if err := fake.ListErrs[url]; err != nil {
		return nil, err
	}
	return fake.Entries[url], nil
}

func writeFiles(outputTemplate string, names []string) error {
	dir := filepath.Dir(outputTemplate)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			return err
		}
	}
	return nil
}
