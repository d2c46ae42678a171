package svd

import (
	"testing"

	"github.com/lrstanley/go-ytdlp"
)

func stringPtr(s string) *string  { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestMediaInfoFromExtracted(t *testing.T) {
	info := mediaInfoFromExtracted(&ytdlp.ExtractedInfo{
		Title:       stringPtr("a title"),
		Duration:    floatPtr(42.5),
		Uploader:    stringPtr("someone"),
		Description: stringPtr("about the item"),
		WebpageURL:  stringPtr("https://www.youtube.com/watch?v=AAA"),
		Thumbnail:   stringPtr("https://img.example.com/AAA.jpg"),
	})

	if info.Title != "a title" || info.Duration != 42.5 {
		t.Fatalf("wanted title and duration mapped; found `%+v`", info)
	}
	if info.Uploader != "someone" ||
		info.WebpageURL != "https://www.youtube.com/watch?v=AAA" {
		t.Fatalf("wanted uploader and webpage url mapped; found `%+v`", info)
	}
}

func TestMediaInfoFromExtractedNilFields(t *testing.T) {
	// flat playlist entries often carry almost no metadata
	info := mediaInfoFromExtracted(&ytdlp.ExtractedInfo{})
	if info.Title != "" || info.Duration != 0 {
		t.Fatalf("wanted zero values for nil fields; found `%+v`", info)
	}
}

func TestCollectionEntryFromExtracted(t *testing.T) {
	entry := collectionEntryFromExtracted(&ytdlp.ExtractedInfo{
		ID:    "AAA",
		URL:   stringPtr("https://www.youtube.com/watch?v=AAA"),
		Title: stringPtr("member"),
	})
	if entry.ID != "AAA" ||
		entry.URL != "https://www.youtube.com/watch?v=AAA" ||
		entry.Title != "member" {
		t.Fatalf("wanted all fields mapped; found `%+v`", entry)
	}

	bare := collectionEntryFromExtracted(&ytdlp.ExtractedInfo{ID: "BBB"})
	if bare.ID != "BBB" || bare.URL != "" {
		t.Fatalf("wanted id only; found `%+v`", bare)
	}
}
