// Package client implements the HTTP transport to the Slack Web API,
// authenticated with browser session tokens.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/chrisguillory/slack-cli/pkg/auth"
	"github.com/chrisguillory/slack-cli/pkg/envelope"
	"github.com/chrisguillory/slack-cli/pkg/limiter"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://slack.com/api"

	callTimeout     = 30 * time.Second
	downloadTimeout = 60 * time.Second

	maxDownloadRedirects = 5
)

// Client issues Web API calls with the xoxc token as a bearer header and
// the xoxd token as the d session cookie. One Client serves one logical
// operation at a time; it keeps no state between calls.
type Client struct {
	creds   *auth.Credentials
	httpc   *fasthttp.Client
	limiter *rate.Limiter
	baseURL string
	logger  *zap.Logger
}

type Option func(*Client)

// OptionBaseURL overrides the API endpoint, mainly for tests.
func OptionBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// OptionLimiter replaces the default Tier 2 rate limiter.
func OptionLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

func New(creds *auth.Credentials, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		creds:   creds,
		httpc:   &fasthttp.Client{},
		limiter: limiter.Tier2.Limiter(),
		baseURL: defaultBaseURL,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call issues one API request and always returns an envelope: transport
// faults, timeouts and non-200 statuses are folded into an ok=false
// envelope with a descriptive error, never surfaced as a raw transport
// error. With a body the request is a JSON POST, otherwise a GET with
// query parameters.
func (c *Client) Call(ctx context.Context, method string, params url.Values, body any) *envelope.Envelope {
	if err := c.limiter.Wait(ctx); err != nil {
		return envelope.Failure(err.Error())
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	uri := c.baseURL + "/" + method
	if len(params) > 0 {
		uri += "?" + params.Encode()
	}
	req.SetRequestURI(uri)
	c.authenticate(req)

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return envelope.Failure(fmt.Sprintf("encoding request: %v", err))
		}
		req.Header.SetMethod(fasthttp.MethodPost)
		req.Header.SetContentType("application/json; charset=utf-8")
		req.SetBody(data)
	} else {
		req.Header.SetMethod(fasthttp.MethodGet)
	}

	c.logger.Debug("Calling Slack API", zap.String("method", method))

	if err := c.httpc.DoTimeout(req, resp, callTimeout); err != nil {
		c.logger.Error("Slack API request failed",
			zap.String("method", method),
			zap.Error(err))
		return envelope.Failure(fmt.Sprintf("request failed: %v", err))
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		c.logger.Error("Slack API returned non-200 status",
			zap.String("method", method),
			zap.Int("status", code))
		return envelope.Failure(fmt.Sprintf("HTTP %d: %s", code, fasthttp.StatusMessage(code)))
	}

	env, err := envelope.Parse(resp.Body())
	if err != nil {
		c.logger.Error("Failed to decode Slack API response",
			zap.String("method", method),
			zap.Error(err))
		return envelope.Failure(err.Error())
	}
	return env
}

func (c *Client) authenticate(req *fasthttp.Request) {
	req.Header.Set("Authorization", "Bearer "+c.creds.XOXC)
	req.Header.Set("Cookie", "d="+c.creds.XOXD)
}
