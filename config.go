package mifosx

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// Config is the immutable configuration for talking to one MifosX tenant.
// Construct it with NewConfig; the zero value is not usable.
type Config struct {
	baseURL    *url.URL
	tenant     string
	username   string
	password   string
	httpClient *http.Client
}

// Option configures a Config during construction.
type Option func(*configBuilder)

type configBuilder struct {
	baseURL    string
	tenant     string
	username   string
	password   string
	httpClient *http.Client
}

// WithBaseURL sets the platform API base URL, e.g.
// "https://demo.openmf.org/mifosng-provider/api/v1".
func WithBaseURL(baseURL string) Option {
	return func(b *configBuilder) {
		b.baseURL = baseURL
	}
}

// WithTenant sets the platform tenant identifier.
func WithTenant(tenant string) Option {
	return func(b *configBuilder) {
		b.tenant = tenant
	}
}

// WithCredentials sets the basic-auth username and password.
func WithCredentials(username, password string) Option {
	return func(b *configBuilder) {
		b.username = username
		b.password = password
	}
}

// WithHTTPClient overrides the HTTP client used by the REST sender.
// Timeouts, TLS settings, and proxies belong to this client; the SDK adds
// none of its own.
func WithHTTPClient(client *http.Client) Option {
	return func(b *configBuilder) {
		b.httpClient = client
	}
}

// NewConfig validates the options and returns an immutable Config.
// The base URL, tenant, and credentials are all required.
func NewConfig(opts ...Option) (Config, error) {
	var b configBuilder
	for _, opt := range opts {
		opt(&b)
	}

	if b.baseURL == "" {
		return Config{}, errors.New("mifosx: base URL is required")
	}
	parsed, err := url.Parse(b.baseURL)
	if err != nil {
		return Config{}, errors.New("mifosx: base URL is not a valid URL")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, errors.New("mifosx: base URL must be absolute")
	}
	if b.tenant == "" {
		return Config{}, errors.New("mifosx: tenant is required")
	}
	if b.username == "" || b.password == "" {
		return Config{}, errors.New("mifosx: username and password are required")
	}

	// Normalize so path joining never drops the final base segment.
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return Config{
		baseURL:    parsed,
		tenant:     b.tenant,
		username:   b.username,
		password:   b.password,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns a copy of the parsed base URL.
func (c Config) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Tenant returns the tenant identifier.
func (c Config) Tenant() string {
	return c.tenant
}

// AuthenticationKey returns the basic-auth token derived from the
// credentials, without the "Basic " prefix.
func (c Config) AuthenticationKey() string {
	return base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
}

// HTTPClient returns the HTTP client to issue requests with.
func (c Config) HTTPClient() *http.Client {
	return c.httpClient
}
