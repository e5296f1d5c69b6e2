package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"restofresh-web/internal/logger"

	"go.uber.org/zap"
)

// The upstream API is the sole source of truth for menu, orders and
// reservations; every client in this module goes through this package.

const requestTimeout = 20 * time.Second

var (
	// ErrUnauthorized is returned on a 401. The stored credentials are
	// cleared before it is returned; the session must re-authenticate.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned on a 404.
	ErrNotFound = errors.New("not found")
)

// APIError carries a non-2xx response that is not a 401 or 404.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// TokenSource supplies the bearer token for authenticated requests and is
// told to drop it when the server rejects it.
type TokenSource interface {
	Token() string
	ClearAuth()
}

// NoAuth is a TokenSource for unauthenticated clients.
type NoAuth struct{}

func (NoAuth) Token() string { return "" }
func (NoAuth) ClearAuth()    {}

// Client is the shared JSON transport for all resource clients.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	if tokens == nil {
		tokens = NoAuth{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		tokens: tokens,
	}
}

// WithTokens returns a client that shares the transport but authenticates
// with a different token source.
func (c *Client) WithTokens(tokens TokenSource) *Client {
	clone := *c
	clone.tokens = tokens
	return &clone
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// PostMultipart uploads a single file under field, e.g. for menu images.
func (c *Client) PostMultipart(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	log := logger.FromCtx(req.Context()).With(
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("api request failed", zap.Error(err))
		return fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read api response", zap.Error(err))
		return fmt.Errorf("read api response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Session-fatal: the token is dead, force re-authentication.
		c.tokens.ClearAuth()
		log.Warn("api rejected credentials")
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		log.Error("api returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return &APIError{Status: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			log.Error("failed decoding api response", zap.Error(err))
			return fmt.Errorf("decode api response: %w", err)
		}
	}
	return nil
}

// errorMessage pulls a human-readable message out of an upstream error body.
func errorMessage(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, m := range []string{payload.Detail, payload.Error, payload.Message} {
			if m != "" {
				return m
			}
		}
	}
	return string(body)
}
