// Package backupapi is a client for the backup server API.
//
// Every API is a single form POST containing the operation arguments and
// the Username, AuthType, and Password authentication fields. Failures come
// in two flavours. When the HTTP round trip fails or the HTTP status code is
// 400 or greater, we return the transport error unmodified. When the server
// replies with an envelope whose Status is not 200 or 201, we return an
// [*APIError] containing the envelope Status and Message.
package backupapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vaultline/backupsdk/internal/httpapi"
	"github.com/vaultline/backupsdk/internal/model"
	"github.com/vaultline/backupsdk/internal/version"
)

// Config contains OPTIONAL settings for [NewClient]. A nil or zero
// value Config is valid and selects the defaults.
type Config struct {
	// HTTPClient is the OPTIONAL HTTP client. When nil, we use [http.DefaultClient].
	//
	// We do not configure any timeout: set one here or pass to each
	// API a context that expires.
	HTTPClient model.HTTPClient

	// Logger is the OPTIONAL logger. When nil, we don't log.
	Logger model.Logger

	// UserAgent is the OPTIONAL user-agent. When empty, we use DefaultUserAgent.
	UserAgent string

	// LogBody OPTIONALLY logs request and response bodies at debug
	// level. We always scrub passwords and other secrets.
	LogBody bool
}

// DefaultUserAgent is the default user-agent.
var DefaultUserAgent = "backupsdk-go/" + version.Version

// ErrInvalidServerAddress indicates that the server address is not an absolute http or https URL.
var ErrInvalidServerAddress = errors.New("backupapi: invalid server address")

// Client is a client for the backup server API. The zero value is invalid; construct
// using [NewClient]. A Client is safe for concurrent use as long as the
// underlying HTTP client is.
type Client struct {
	endpoint      *httpapi.Endpoint
	logBody       bool
	password      string
	serverAddress string
	username      string
}

// NewClient creates a new [*Client] for the server at serverAddress (e.g.,
// https://backup.example.com/), which authenticates every request using the
// given username and password. The config argument MAY be nil.
func NewClient(serverAddress, username, password string, config *Config) (*Client, error) {
	URL, err := url.Parse(serverAddress)
	if err != nil || URL.Host == "" || (URL.Scheme != "http" && URL.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServerAddress, serverAddress)
	}
	if config == nil {
		config = &Config{}
	}
	endpoint := &httpapi.Endpoint{
		BaseURL:    serverAddress,
		HTTPClient: config.HTTPClient,
		Logger:     model.ValidLoggerOrDefault(config.Logger),
		UserAgent:  config.UserAgent,
	}
	if endpoint.HTTPClient == nil {
		endpoint.HTTPClient = http.DefaultClient
	}
	if endpoint.UserAgent == "" {
		endpoint.UserAgent = DefaultUserAgent
	}
	c := &Client{
		endpoint:      endpoint,
		logBody:       config.LogBody,
		password:      password,
		serverAddress: serverAddress,
		username:      username,
	}
	return c, nil
}

// ServerAddress returns the server address.
func (c *Client) ServerAddress() string {
	return c.serverAddress
}

// Username returns the username we use to authenticate.
func (c *Client) Username() string {
	return c.username
}

// Password returns the password we use to authenticate.
func (c *Client) Password() string {
	return c.password
}
