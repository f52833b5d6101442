package client

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dyaksa/courier"
	"github.com/dyaksa/courier/locale"
	"github.com/dyaksa/courier/version"
)

const (
	// DefaultTimeout bounds every call unless overridden per call.
	DefaultTimeout = 20 * time.Second

	// AuthTypeBearer is the only supported authorization scheme.
	AuthTypeBearer = "Bearer"

	maxTokenAttempts = 3
)

type Config struct {
	// BaseURL is the absolute http(s) prefix every route is appended to.
	BaseURL string

	// Language selects the message table for user-facing errors. Defaults to locale.EN.
	Language locale.Language

	// AuthType is the authorization scheme. Only "Bearer" is supported.
	AuthType string
	Auth     courier.AuthProvider

	// OnAuthFailure runs once after token acquisition gives up and the principal was signed out.
	OnAuthFailure func()

	Timeout time.Duration

	// OnTimeout runs with the route of a call whose timeout expired, before the call is aborted.
	OnTimeout func(route string)

	// Headers are sent with every call; per-call headers win. Keys are case-insensitive.
	Headers map[string]string

	// ClientVersion is sent as X-Client-Version unless the caller sets it. Defaults to version.Version().
	ClientVersion string

	// RequestIDHeader, when set, is stamped with a random UUID unless the caller sets it.
	RequestIDHeader string

	HTTPClient *http.Client

	// Tracing wraps the transport with OpenTelemetry instrumentation.
	Tracing bool

	Logger *zerolog.Logger

	// TokenRetrier schedules the wait after a failed token request. Defaults to courier.DefaultTokenRetrier.
	TokenRetrier courier.Retriable

	// PrincipalWait schedules the wait while no principal is signed in. Defaults to courier.DefaultPrincipalWait.
	PrincipalWait courier.Retriable

	Plugins []courier.Plugin
}

type Client struct {
	httpClient *http.Client
	log        zerolog.Logger

	baseURL       string
	language      locale.Language
	messages      locale.Messages
	authType      string
	auth          courier.AuthProvider
	onAuthFailure func()
	timeout       time.Duration
	onTimeout     func(route string)

	headers         atomic.Pointer[map[string]string]
	clientVersion   string
	requestIDHeader string

	tokenRetrier  courier.Retriable
	principalWait courier.Retriable
	sleep         func(ctx context.Context, d time.Duration) error

	plugins map[string][]courier.Plugin
}

var _ courier.Client = (*Client)(nil)

// New validates cfg and returns a ready client. It fails with *ConfigError
// when the base URL is missing, malformed or not http(s), or when the
// language or auth type is unsupported.
func New(cfg Config) (*Client, error) {
	lang := cfg.Language
	if lang == "" {
		lang = locale.Default
	}
	if !lang.Valid() {
		return nil, &ConfigError{Field: "language", Message: locale.For(locale.Default).UnsupportedLanguage(string(lang))}
	}
	messages := locale.For(lang)

	if err := validateBaseURL(cfg.BaseURL, messages); err != nil {
		return nil, err
	}

	authType := cfg.AuthType
	if authType == "" {
		authType = AuthTypeBearer
	}
	if authType != AuthTypeBearer {
		return nil, &ConfigError{Field: "authType", Message: "unsupported auth type " + authType}
	}

	c := &Client{
		httpClient:      createHTTPClient(cfg.HTTPClient, cfg.Tracing),
		log:             zerolog.Nop(),
		baseURL:         cfg.BaseURL,
		language:        lang,
		messages:        messages,
		authType:        authType,
		auth:            cfg.Auth,
		onAuthFailure:   cfg.OnAuthFailure,
		timeout:         cfg.Timeout,
		onTimeout:       cfg.OnTimeout,
		clientVersion:   cfg.ClientVersion,
		requestIDHeader: cfg.RequestIDHeader,
		tokenRetrier:    cfg.TokenRetrier,
		principalWait:   cfg.PrincipalWait,
		sleep:           sleepContext,
		plugins:         make(map[string][]courier.Plugin),
	}

	if cfg.Logger != nil {
		c.log = *cfg.Logger
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.clientVersion == "" {
		c.clientVersion = version.Version()
	}
	if c.tokenRetrier == nil {
		c.tokenRetrier = courier.DefaultTokenRetrier
	}
	if c.principalWait == nil {
		c.principalWait = courier.DefaultPrincipalWait
	}

	headers := make(map[string]string, len(cfg.Headers))
	for key, value := range cfg.Headers {
		headers[key] = value
	}
	c.headers.Store(&headers)

	c.AddPlugin(cfg.Plugins...)

	return c, nil
}

func validateBaseURL(baseURL string, messages locale.Messages) error {
	if baseURL == "" {
		return &ConfigError{Field: "baseURL", Message: messages.MissingBaseURL()}
	}

	u, err := url.Parse(baseURL)
	if err != nil || !u.IsAbs() {
		return &ConfigError{Field: "baseURL", Message: messages.InvalidBaseURL(baseURL), Err: err}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return &ConfigError{Field: "baseURL", Message: messages.InvalidProtocol(baseURL)}
	}

	if u.Host == "" {
		return &ConfigError{Field: "baseURL", Message: messages.InvalidBaseURL(baseURL)}
	}

	return nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Language() locale.Language {
	return c.language
}

// Headers returns a copy of the current default headers.
func (c *Client) Headers() map[string]string {
	current := *c.headers.Load()
	out := make(map[string]string, len(current))
	for key, value := range current {
		out[key] = value
	}
	return out
}

// UpdateHeaders merges headers into the default headers. Keys match
// case-insensitively and the new spelling replaces the old one. Calls started
// afterwards observe the merged set; concurrent updates are last-write-wins.
func (c *Client) UpdateHeaders(headers map[string]string) {
	merged := c.Headers()
	for key, value := range headers {
		for existing := range merged {
			if strings.EqualFold(existing, key) {
				delete(merged, existing)
			}
		}
		merged[key] = value
	}
	c.headers.Store(&merged)
}

// AddPlugin registers plugins. Call it before the client is used concurrently.
func (c *Client) AddPlugin(plugins ...courier.Plugin) {
	for _, plugin := range plugins {
		if plugin == nil {
			continue
		}
		pluginType := plugin.Type()
		c.plugins[pluginType] = append(c.plugins[pluginType], plugin)
	}
}

func (c *Client) Get(ctx context.Context, route string, options ...courier.RequestOption) (*courier.Result, error) {
	return c.Do(ctx, http.MethodGet, route, options...)
}

func (c *Client) Post(ctx context.Context, route string, options ...courier.RequestOption) (*courier.Result, error) {
	return c.Do(ctx, http.MethodPost, route, options...)
}

func (c *Client) Put(ctx context.Context, route string, options ...courier.RequestOption) (*courier.Result, error) {
	return c.Do(ctx, http.MethodPut, route, options...)
}

func (c *Client) Patch(ctx context.Context, route string, options ...courier.RequestOption) (*courier.Result, error) {
	return c.Do(ctx, http.MethodPatch, route, options...)
}

func (c *Client) Delete(ctx context.Context, route string, options ...courier.RequestOption) (*courier.Result, error) {
	return c.Do(ctx, http.MethodDelete, route, options...)
}

// Do sends one request and decodes its response. The route is appended to
// the base URL verbatim.
func (c *Client) Do(ctx context.Context, method, route string, options ...courier.RequestOption) (*courier.Result, error) {
	opts := courier.NewRequestOptions(options...)

	if (method == http.MethodGet || method == http.MethodDelete) && opts.Data != nil {
		return nil, &UsageError{Method: method, Message: c.messages.InvalidGetData(method)}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	controller := opts.Controller
	if controller == nil {
		controller = courier.NewController(ctx)
		defer controller.Abort()
	}

	timer := time.AfterFunc(timeout, func() {
		if c.onTimeout != nil {
			c.onTimeout(route)
		}
		controller.Abort()
	})
	defer timer.Stop()

	// The call ends when either ctx or the controller is done.
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(controller.Context(), cancel)
	defer stop()

	body, contentType, err := encodeBody(opts.Data)
	if err != nil {
		return nil, err
	}

	headers, err := c.resolveHeaders(reqCtx, opts, contentType)
	if err != nil {
		return nil, err
	}

	var url bytes.Buffer
	url.WriteString(c.baseURL)
	url.WriteString(route)

	req, err := http.NewRequestWithContext(reqCtx, method, url.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header = headers

	c.reportRequest(req)

	resp, err := c.httpClient.Do(req)
	timer.Stop()
	if err != nil {
		c.reportError(req, err)
		return nil, errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	c.reportResponse(req, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.handleError(resp)
	}

	return c.handleSuccess(reqCtx, resp)
}

func (c *Client) reportRequest(req *http.Request) {
	for _, plugin := range c.plugins["logger"] {
		if logger, ok := plugin.(courier.LoggerPlugins); ok {
			logger.OnRequestStart(req)
		}
	}
}

func (c *Client) reportResponse(req *http.Request, res *http.Response) {
	for _, plugin := range c.plugins["logger"] {
		if logger, ok := plugin.(courier.LoggerPlugins); ok {
			logger.OnRequestEnd(req, res)
		}
	}
}

func (c *Client) reportError(req *http.Request, err error) {
	for _, plugin := range c.plugins["logger"] {
		if logger, ok := plugin.(courier.LoggerPlugins); ok {
			logger.OnRequestError(req, err)
		}
	}
}
