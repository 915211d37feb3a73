package simsdk

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/simapi/pkg/httpx"
	"github.com/aussiebroadwan/simapi/pkg/slogx"
)

const (
	// DefaultBaseURL is the root of the 1NCE management API.
	DefaultBaseURL = "https://api.1nce.com/management-api"

	// APIVersionV1 is the only published API version.
	APIVersionV1 = "v1"

	// APN is the access point name 1NCE SIMs attach to. Informational only.
	APN = "iot.1nce.net"

	// DefaultTimeout bounds a single HTTP exchange when NewClient builds the HTTP client.
	DefaultTimeout = 30 * time.Second
)

// Client is a client for the SIM management API.
// Credentials are fixed at construction; the exported fields may be adjusted
// before first use.
type Client struct {
	BaseURL    string
	APIVersion string
	HTTPClient httpx.Doer

	// Logger receives debug records for each operation. When nil the logger
	// carried by the request context (or slog.Default) is used.
	Logger *slog.Logger

	clientID     string
	clientSecret string

	now func() time.Time
}

// NewClient creates a client for the given OAuth2 client credentials using
// the default base URL and API version.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		APIVersion: APIVersionV1,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		clientID:     clientID,
		clientSecret: clientSecret,
		now:          time.Now,
	}
}

// ClientID returns the OAuth2 client id the client authenticates with.
func (c *Client) ClientID() string {
	return c.clientID
}

// url joins the base URL and a path starting with "/".
func (c *Client) url(path string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + path
}

// apiURL builds {BaseURL}/{APIVersion}/{path}.
func (c *Client) apiURL(path string) string {
	version := c.APIVersion
	if version == "" {
		version = APIVersionV1
	}
	return c.url("/" + version + "/" + strings.TrimPrefix(path, "/"))
}

func (c *Client) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

func (c *Client) logger(ctx context.Context) *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slogx.FromContext(ctx)
}
