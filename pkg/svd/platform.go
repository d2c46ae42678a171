package svd

import (
	"net/url"
	"strings"
)

// Platform is the closed set of services we know how to classify. URLs
// from anywhere else still download fine through the extraction library;
// they just carry the Unknown tag.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformUnknown   Platform = "unknown"
)

var platformHosts = []struct {
	host     string
	platform Platform
}{
	{"tiktok.com", PlatformTikTok},
	{"instagram.com", PlatformInstagram},
	{"facebook.com", PlatformFacebook},
	{"fb.com", PlatformFacebook},
	{"youtube.com", PlatformYouTube},
	{"youtu.be", PlatformYouTube},
	{"twitter.com", PlatformTwitter},
	{"x.com", PlatformTwitter},
}

// ClassifyPlatform tags a URL by hostname substring match. It never
// fails; parse errors and unrecognized hosts map to PlatformUnknown.
func ClassifyPlatform(rawURL string) Platform {
	u, err := url.Parse(rawURL)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(u.Host)
	for _, candidate := range platformHosts {
		if strings.Contains(host, candidate.host) {
			return candidate.platform
		}
	}
	return PlatformUnknown
}
