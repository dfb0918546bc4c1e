// Package client implements the transport to the upstream course platform API
package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type (
	sessionKey   struct{}
	requestIDKey struct{}
)

// WithSession returns a context carrying the Cookie header to send upstream
func WithSession(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, sessionKey{}, cookie)
}

func sessionFrom(ctx context.Context) string {
	if cookie, ok := ctx.Value(sessionKey{}).(string); ok {
		return cookie
	}
	return ""
}

// WithRequestID returns a context carrying the X-Request-ID to send upstream
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id carried by ctx, if any
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Client issues authenticated JSON requests against the upstream API
type Client struct {
	http          *resty.Client
	sessionCookie string
	logger        *zap.Logger
}

// New creates a new upstream client.
//
// "sessionCookie" is sent on requests whose context carries no session of its own.
func New(baseURL string, timeout time.Duration, sessionCookie string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:          httpClient,
		sessionCookie: sessionCookie,
		logger:        logger,
	}
}

// Get decodes the envelope data of a GET request into out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	body, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return DecodeEnvelope(body, out)
}

// Post sends body as JSON and decodes the envelope data into out (out may be nil)
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	resp, err := c.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return DecodeEnvelope(resp, out)
}

// Patch sends body as JSON and decodes the envelope data into out (out may be nil)
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	resp, err := c.Do(ctx, http.MethodPatch, path, body)
	if err != nil {
		return err
	}
	return DecodeEnvelope(resp, out)
}

// Delete issues a DELETE request and discards the response body
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)
	return err
}

// Do executes a JSON request and returns the raw response body of a 2xx response
func (c *Client) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := c.request(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	return c.execute(req, method, path)
}

// DoMultipart executes a multipart/form-data request.
//
// "fields" become plain form fields, "files" are keyed by their form parameter name.
func (c *Client) DoMultipart(ctx context.Context, method, path string, fields map[string]string, files map[string]*models.UploadFile) ([]byte, error) {
	req := c.request(ctx)
	if len(fields) > 0 {
		req.SetFormData(fields)
	}
	for param, file := range files {
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		req.SetMultipartField(param, file.Filename, contentType, bytes.NewReader(file.Data))
	}
	return c.execute(req, method, path)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)

	cookie := sessionFrom(ctx)
	if cookie == "" {
		cookie = c.sessionCookie
	}
	if cookie != "" {
		req.SetHeader("Cookie", cookie)
	}
	if id := RequestIDFrom(ctx); id != "" {
		req.SetHeader("X-Request-ID", id)
	}

	return req
}

func (c *Client) execute(req *resty.Request, method, path string) ([]byte, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("upstream request failed",
			zap.String("request_id", RequestIDFrom(req.Context())),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	status := resp.StatusCode()
	c.logger.Debug("upstream request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
	)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		apiErr := newAPIError(status, resp.Body())
		c.logger.Warn("upstream error response",
			zap.String("request_id", RequestIDFrom(req.Context())),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("message", apiErr.Message),
		)
		return nil, apiErr
	}

	return resp.Body(), nil
}
