package gstportal

import (
	"net/http/cookiejar"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"

	"gstscan-backend/lib/identity"
	"gstscan-backend/lib/telemetry"
	"gstscan-backend/lib/throttle"
)

const defaultBaseURL = "https://services.gst.gov.in"
const searchPath = "/services/searchtp"

type ClientOptions struct {
	// BaseURL defaults to the public portal, overridable for tests.
	BaseURL string
	// Timeout bounds one fetch attempt.
	Timeout time.Duration
	// MaxRetries is the total number of attempts per identifier.
	MaxRetries int
	// RotateUserAgent picks a fresh User-Agent per request.
	RotateUserAgent bool
	// RetryDelayMin/Max is the throttle window between attempts.
	RetryDelayMin time.Duration
	RetryDelayMax time.Duration
}

func (o *ClientOptions) applyDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}
	if o.Timeout <= 0 {
		o.Timeout = time.Second * 30
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 3
	}
	if o.RetryDelayMin <= 0 {
		o.RetryDelayMin = time.Second * 2
	}
	if o.RetryDelayMax < o.RetryDelayMin {
		o.RetryDelayMax = o.RetryDelayMin + time.Second*3
	}
}

// Client scrapes taxpayer records off the portal. One client owns one
// session (cookies, headers) and is meant to be driven sequentially,
// the throttle pacing is the only defense against the portal's rate
// limiting and concurrent fetches would defeat it.
type Client struct {
	http     *resty.Client
	identity identity.Provider
	opts     ClientOptions

	// swapped out by tests to observe throttle windows
	sleep throttle.Func
}

func NewClient(opts ClientOptions) (*Client, error) {
	opts.applyDefaults()

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "scrapers/gstportal/http")

	return &Client{
		http:     client,
		identity: identity.Provider{Rotate: opts.RotateUserAgent},
		opts:     opts,
		sleep:    throttle.Delay,
	}, nil
}
