// ABOUTME: HTTPLoader fetches a JSON theme catalog over HTTP(S)
// ABOUTME: Bodies in legacy charsets are transcoded to UTF-8 before decoding

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/html/charset"

	xhttp "github.com/mauromedda/themeswitch/internal/http"
	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

// DefaultPath is where a catalog is served relative to a site root.
const DefaultPath = "/themes.json"

const defaultFetchTimeout = 15 * time.Second

// HTTPLoader loads a catalog from URL.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

// NewHTTPLoader returns an HTTPLoader for rawURL using the hardened client.
// A URL with no path gets DefaultPath appended.
func NewHTTPLoader(rawURL string) *HTTPLoader {
	return &HTTPLoader{
		URL:    withDefaultPath(rawURL),
		Client: xhttp.SecureHTTPClient(defaultFetchTimeout),
	}
}

func withDefaultPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = DefaultPath
	}
	return u.String()
}

// FetchThemes performs a GET against l.URL and decodes the JSON array body.
func (l *HTTPLoader) FetchThemes(ctx context.Context) ([]theme.Theme, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = xhttp.SecureHTTPClient(defaultFetchTimeout)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog %s: %w", l.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching catalog %s: unexpected status %s", l.URL, resp.Status)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, xhttp.MaxCatalogBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", l.URL, err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", l.URL, err)
	}
	return theme.DecodeCatalog(data)
}
