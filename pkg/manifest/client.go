package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/modsync/internal/version"
	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/logging"
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/rs/zerolog"
)

// Default endpoint paths
const (
	DefaultManifestPath = "/manifest"
	DefaultContentPath  = "/mods"
	DefaultTimeout      = 30 * time.Second
)

// Options configures a Client
type Options struct {
	BaseURL      string
	ManifestPath string
	ContentPath  string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// HTTPClient replaces the default client; Timeout is ignored when set
	HTTPClient *http.Client
}

// Client fetches the manifest and mod contents from a mod server
type Client struct {
	base         *url.URL
	manifestPath string
	contentPath  string
	http         *http.Client
	userAgent    string
	logger       zerolog.Logger
}

// NewClient creates a client for the server at opts.BaseURL
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New(errors.ErrInvalidInput, "mod server base URL is empty")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid mod server URL %q", opts.BaseURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported mod server URL scheme %q", base.Scheme)
	}

	c := &Client{
		base:         base,
		manifestPath: orDefault(opts.ManifestPath, DefaultManifestPath),
		contentPath:  orDefault(opts.ContentPath, DefaultContentPath),
		http:         opts.HTTPClient,
		userAgent:    "modsync/" + version.Version,
		logger:       logging.GetLogger("manifest"),
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		c.http = &http.Client{Timeout: timeout}
	}

	return c, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// ManifestURL returns the absolute URL of the manifest endpoint
func (c *Client) ManifestURL() string {
	return c.base.JoinPath(c.manifestPath).String()
}

// ContentURL returns the absolute URL serving the named mod
func (c *Client) ContentURL(name types.ModName) string {
	// JoinPath escapes each element, so names with spaces or '#' survive
	return c.base.JoinPath(c.contentPath, string(name)).String()
}

// FetchManifest returns the ordered list of mod names the server publishes
func (c *Client) FetchManifest(ctx context.Context) ([]types.ModName, error) {
	target := c.ManifestURL()

	body, err := c.get(ctx, target)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(body)
	if err != nil {
		if msErr, ok := err.(*errors.ModsyncError); ok {
			msErr.WithDetail(errors.DetailURL, target)
		}
		return nil, err
	}

	c.logger.Info().
		Str("url", target).
		Int("mods", len(doc.Mods)).
		Msg("Fetched manifest")

	return doc.Mods, nil
}

// FetchContent downloads the raw bytes of one mod
func (c *Client) FetchContent(ctx context.Context, name types.ModName) ([]byte, error) {
	if !name.Valid() {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid mod name %q", name).
			WithDetail(errors.DetailMod, string(name))
	}

	target := c.ContentURL(name)
	body, err := c.get(ctx, target)
	if err != nil {
		if msErr, ok := err.(*errors.ModsyncError); ok {
			msErr.WithDetail(errors.DetailMod, string(name))
		}
		return nil, err
	}

	c.logger.Debug().
		Str("mod", string(name)).
		Int("bytes", len(body)).
		Msg("Fetched mod content")

	return body, nil
}

// get performs a single GET and maps every failure onto a coded error
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot build request for %s", target).
			WithDetail(errors.DetailURL, target)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Trace().Str("url", target).Msg("GET")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNetwork, "request to %s failed", target).
			WithDetail(errors.DetailURL, target)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := statusReason(resp)
		return nil, errors.Newf(errors.ErrRemote, "GET %s: %d %s", target, resp.StatusCode, reason).
			WithDetail(errors.DetailStatusCode, resp.StatusCode).
			WithDetail(errors.DetailReason, reason).
			WithDetail(errors.DetailURL, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNetwork, "reading response from %s failed", target).
			WithDetail(errors.DetailURL, target)
	}

	return body, nil
}

// statusReason extracts the reason phrase, e.g. "Internal Server Error"
func statusReason(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	if reason == "" {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	return reason
}
