package svd_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"socialdl/pkg/svd"
	"socialdl/pkg/svd/testsupport"
)

func TestIsCollection(t *testing.T) {
	for _, testCase := range []struct {
		name   string
		url    string
		wanted bool
	}{
		{
			name:   "youtube-playlist",
			url:    "https://www.youtube.com/playlist?list=PL123",
			wanted: true,
		},
		{
			name:   "youtube-watch-with-list-param",
			url:    "https://www.youtube.com/watch?v=AAA&list=PL123",
			wanted: false,
		},
		{
			name:   "youtube-channel",
			url:    "https://www.youtube.com/channel/UC123",
			wanted: true,
		},
		{
			name:   "youtube-handle",
			url:    "https://www.youtube.com/@creator",
			wanted: true,
		},
		{
			name:   "youtube-legacy-custom",
			url:    "https://www.youtube.com/c/creator",
			wanted: true,
		},
		{
			name:   "youtube-single",
			url:    "https://www.youtube.com/watch?v=jNQXAC9IVRw",
			wanted: false,
		},
		{
			name:   "tiktok-profile",
			url:    "https://www.tiktok.com/@user",
			wanted: true,
		},
		{
			name:   "tiktok-video",
			url:    "https://www.tiktok.com/@user/video/123",
			wanted: false,
		},
		{
			name:   "instagram-profile",
			url:    "https://www.instagram.com/@user",
			wanted: false,
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			if found := svd.IsCollection(testCase.url); found != testCase.wanted {
				t.Fatalf(
					"is collection: wanted `%t`; found `%t`",
					testCase.wanted,
					found,
				)
			}
		})
	}
}

func TestClassifyCollection(t *testing.T) {
	playlist := "https://www.youtube.com/playlist?list=PL123"
	if found := svd.ClassifyCollection(playlist); found != svd.CollectionKindPlaylist {
		t.Fatalf("kind: wanted `playlist`; found `%s`", found)
	}

	channel := "https://www.youtube.com/@creator"
	if found := svd.ClassifyCollection(channel); found != svd.CollectionKindChannel {
		t.Fatalf("kind: wanted `channel`; found `%s`", found)
	}
}

func TestExpandCollection(t *testing.T) {
	listErr := errors.New("network unreachable")

	for _, testCase := range []struct {
		name      string
		url       string
		extractor testsupport.MediaExtractorFake
		wanted    []string
		wantedErr func(error) error
	}{
		{
			name: "explicit-urls",
			url:  "https://www.youtube.com/playlist?list=PL123",
			extractor: testsupport.MediaExtractorFake{
				Entries: map[string][]svd.CollectionEntry{
					"https://www.youtube.com/playlist?list=PL123": {
						{ID: "AAA", URL: "https://www.youtube.com/watch?v=AAA"},
						{ID: "BBB", URL: "https://www.youtube.com/watch?v=BBB"},
					},
				},
			},
			wanted: []string{
				"https://www.youtube.com/watch?v=AAA",
				"https://www.youtube.com/watch?v=BBB",
			},
		},
		{
			name: "id-only-entries-use-watch-template",
			url:  "https://www.youtube.com/playlist?list=PL123",
			extractor: testsupport.MediaExtractorFake{
				Entries: map[string][]svd.CollectionEntry{
					"https://www.youtube.com/playlist?list=PL123": {
						{ID: "AAA"},
						{},
					},
				},
			},
			wanted: []string{"https://www.youtube.com/watch?v=AAA"},
		},
		{
			name: "listing-error-fails-everything",
			url:  "https://www.youtube.com/playlist?list=PL123",
			extractor: testsupport.MediaExtractorFake{
				ListErrs: map[string]error{
					"https://www.youtube.com/playlist?list=PL123": listErr,
				},
			},
			wantedErr: func(err error) error {
				e := svd.AsCollectionExpandErr(err)
				if e == nil {
					return fmt.Errorf(
						"wanted CollectionExpandErr; found `%v`",
						err,
					)
				}
				if !errors.Is(err, listErr) {
					return fmt.Errorf(
						"wanted wrapped listing error; found `%v`",
						err,
					)
				}
				return nil
			},
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			found, err := svd.ExpandCollection(
				context.Background(),
				&testCase.extractor,
				testCase.url,
			)

			if testCase.wantedErr != nil {
				if err == nil {
					t.Fatal("wanted error; found `nil`")
				}
				if e := testCase.wantedErr(err); e != nil {
					t.Fatal(e)
				}
				if len(found) != 0 {
					t.Fatalf("wanted zero members; found %d", len(found))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(found) != len(testCase.wanted) {
				t.Fatalf(
					"members: wanted `%v`; found `%v`",
					testCase.wanted,
					found,
				)
			}
			for i := range found {
				if found[i] != testCase.wanted[i] {
					t.Fatalf(
						"member %d: wanted `%s`; found `%s`",
						i,
						testCase.wanted[i],
						found[i],
					)
				}
			}
		})
	}
}
