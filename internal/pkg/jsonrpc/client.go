// Package jsonrpc posts JSON-RPC 2.0 requests with named params to an ibrio node.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	protocolVersion = "2.0"
	requestID       = 1
)

// ErrEmptyResult is returned when the node answers with neither result nor error.
var ErrEmptyResult = errors.New("empty result")

// Config selects the node endpoint and transport behaviour.
type Config struct {
	Endpoint string
	// Debug logs every request body and raw response body.
	Debug bool
	// Timeout bounds a single request. Zero disables it.
	Timeout time.Duration
	// RateLimit caps requests per second. Zero means unlimited.
	RateLimit int
}

type request struct {
	ID      int    `json:"id"`
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type response struct {
	Result json.RawMessage   `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
}

// Client is a JSON-RPC client bound to a single endpoint.
type Client struct {
	http     *resty.Client
	endpoint string
	debug    bool
	limiter  ratelimit.Limiter
	logger   *zap.Logger
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parse rpc endpoint")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Errorf("rpc endpoint scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc endpoint missing host")
	}

	httpClient := resty.New().
		SetLogger(logger.Sugar()).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RateLimit > 0 {
		limiter = ratelimit.New(cfg.RateLimit)
	}

	return &Client{
		http:     httpClient,
		endpoint: cfg.Endpoint,
		debug:    cfg.Debug,
		limiter:  limiter,
		logger:   logger,
	}, nil
}

// Call invokes method with params and decodes the result into result.
// A nil result discards the payload. Node-side failures are returned as
// *btcjson.RPCError.
func (c *Client) Call(ctx context.Context, method string, params, result any) error {
	if params == nil {
		params = struct{}{}
	}
	body, err := json.Marshal(request{
		ID:      requestID,
		JSONRPC: protocolVersion,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.Wrapf(err, "encode %s request", method)
	}

	c.limiter.Take()
	if c.debug {
		c.logger.Info("rpc request", zap.String("method", method), zap.ByteString("body", body))
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return errors.Wrapf(err, "post %s", method)
	}
	if c.debug {
		c.logger.Info("rpc response",
			zap.String("method", method),
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()),
		)
	}

	var envelope response
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return errors.Wrapf(err, "decode %s response", method)
	}
	if envelope.Error != nil {
		return errors.WithMessage(envelope.Error, method)
	}
	if result == nil {
		return nil
	}
	if isNull(envelope.Result) {
		return errors.WithMessage(ErrEmptyResult, method)
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return errors.Wrapf(err, "decode %s result", method)
	}
	return nil
}

// IsRPCError reports whether err carries an error object returned by the node,
// as opposed to a transport or decoding failure.
func IsRPCError(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
