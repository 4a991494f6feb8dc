// Package identity supplies per-request HTTP headers for the portal client.
package identity

import (
	"log/slog"

	browser "github.com/EDDYCJY/fake-useragent"
)

// FallbackUserAgent is used whenever rotation is disabled or the
// generator comes back empty. Callers must never see a failure here.
const FallbackUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Provider hands out header sets, rotating the User-Agent per call when
// enabled.
type Provider struct {
	Rotate bool
}

// Headers returns the header set for one request. The User-Agent is
// freshly chosen on every call when rotation is on.
func (p Provider) Headers() map[string]string {
	return map[string]string{
		"User-Agent":      p.userAgent(),
		"Accept":          "application/json, text/plain, */*",
		"Accept-Language": "en-US,en;q=0.9",
		// gzip only: advertising encodings the client cannot decode
		// would hand the parser compressed bytes
		"Accept-Encoding":           "gzip",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	}
}

func (p Provider) userAgent() string {
	if !p.Rotate {
		return FallbackUserAgent
	}
	ua := browser.Random()
	if ua == "" {
		slog.Warn("user agent rotation yielded nothing, using fallback")
		return FallbackUserAgent
	}
	return ua
}
