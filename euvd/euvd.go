package euvd

import (
	"encoding/json"
	"net/url"
	"time"

	"golang.org/x/xerrors"

	"github.com/vuln-tools/euvd-mcp/utils"
)

const (
	defaultBaseURL   = "https://euvdservices.enisa.europa.eu"
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultTimeout   = 30 * time.Second
	defaultRetry     = 3
)

type options struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	retry     int
}

type option func(*options)

func WithBaseURL(url string) option {
	return func(opts *options) {
		opts.baseURL = url
	}
}

func WithUserAgent(userAgent string) option {
	return func(opts *options) {
		opts.userAgent = userAgent
	}
}

func WithTimeout(timeout time.Duration) option {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

func WithRetry(retry int) option {
	return func(opts *options) {
		opts.retry = retry
	}
}

// Client talks to the EUVD service. All endpoints are unauthenticated and
// return JSON.
type Client struct {
	*options
}

func NewClient(opts ...option) Client {
	o := &options{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
		retry:     defaultRetry,
	}
	for _, opt := range opts {
		opt(o)
	}
	return Client{
		options: o,
	}
}

// LastVulnerabilities returns the latest vulnerability records. The service
// caps the list at 8 records.
func (c Client) LastVulnerabilities() (VulnerabilityList, error) {
	return c.vulnerabilityList("/api/lastvulnerabilities")
}

// ExploitedVulnerabilities returns the latest exploited vulnerability
// records. The service caps the list at 8 records.
func (c Client) ExploitedVulnerabilities() (VulnerabilityList, error) {
	return c.vulnerabilityList("/api/exploitedvulnerabilities")
}

// CriticalVulnerabilities returns the latest critical vulnerability records.
// The service caps the list at 8 records.
func (c Client) CriticalVulnerabilities() (VulnerabilityList, error) {
	return c.vulnerabilityList("/api/criticalvulnerabilities")
}

func (c Client) vulnerabilityList(path string) (VulnerabilityList, error) {
	body, err := c.get(path, nil)
	if err != nil {
		return nil, err
	}
	var list VulnerabilityList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, xerrors.Errorf("unable to decode %s response: %w", path, err)
	}
	return list, nil
}

// Search queries vulnerabilities with the given filters. An empty filter
// sends no query string at all.
func (c Client) Search(filter SearchFilter) (*SearchResult, error) {
	body, err := c.get("/api/search", filter.Params())
	if err != nil {
		return nil, err
	}
	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, xerrors.Errorf("unable to decode search response: %w", err)
	}
	return &result, nil
}

// VulnerabilityByID returns one vulnerability by its EUVD identifier, e.g.
// "EUVD-2024-45012".
func (c Client) VulnerabilityByID(enisaID string) (*Vulnerability, error) {
	body, err := c.get("/api/enisaid", map[string]string{"id": enisaID})
	if err != nil {
		return nil, err
	}
	var vuln Vulnerability
	if err := json.Unmarshal(body, &vuln); err != nil {
		return nil, xerrors.Errorf("unable to decode vulnerability %q: %w", enisaID, err)
	}
	return &vuln, nil
}

// AdvisoryByID returns one advisory by its identifier, e.g.
// "cisco-sa-ata19x-multi-RDTEqRsy".
func (c Client) AdvisoryByID(advisoryID string) (*Advisory, error) {
	body, err := c.get("/api/advisory", map[string]string{"id": advisoryID})
	if err != nil {
		return nil, err
	}
	var advisory Advisory
	if err := json.Unmarshal(body, &advisory); err != nil {
		return nil, xerrors.Errorf("unable to decode advisory %q: %w", advisoryID, err)
	}
	return &advisory, nil
}

func (c Client) get(path string, params map[string]string) ([]byte, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, xerrors.Errorf("unable to parse %q base url: %w", c.baseURL, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for name, value := range params {
			q.Set(name, value)
		}
		u.RawQuery = q.Encode()
	}

	body, err := utils.FetchURL(u.String(), c.headers(), c.timeout, c.retry)
	if err != nil {
		return nil, xerrors.Errorf("failed to fetch %s: %w", path, err)
	}
	return body, nil
}

// headers returns the browser-like request headers the service expects.
func (c Client) headers() map[string]string {
	return map[string]string{
		"User-Agent":      c.userAgent,
		"Accept":          "application/json, text/plain, */*",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         defaultBaseURL + "/",
		"Origin":          defaultBaseURL,
	}
}
