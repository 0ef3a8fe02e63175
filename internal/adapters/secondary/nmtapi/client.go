// Package nmtapi is the REST client for the NMT backend service.
package nmtapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"release-management-service/internal/config"
	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

// Client implements every backend port over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	timeout    time.Duration
}

var _ ports.BackendClient = (*Client)(nil)

// NewClient creates a backend client. cfg.Token is used only when the request
// context carries no access token.
//
// cfg.Timeout bounds JSON calls end to end. File uploads and downloads are
// only bounded until the response headers arrive, so a slow stream is not
// cut off halfway.
func NewClient(cfg *config.BackendConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout

	return &Client{
		httpClient: &http.Client{Transport: transport},
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		token:      cfg.Token,
		timeout:    timeout,
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("create backend request: %w", err)
	}

	token := domain.AccessTokenFrom(ctx)
	if token == "" {
		token = c.token
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := domain.RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do executes req and turns transport failures and error statuses into errors.
// On success the caller owns resp.Body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)

	fields := log.Fields{
		"method":     req.Method,
		"url":        req.URL.Path,
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if id := req.Header.Get("X-Request-ID"); id != "" {
		fields["request_id"] = id
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Debug("backend request failed")
		return nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrBackendUnavailable, timeoutCause(err))
	}
	fields["status"] = resp.StatusCode
	log.WithFields(fields).Debug("backend request completed")

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, newAPIError(resp.StatusCode, body)
	}
	return resp, nil
}

// timeoutCause makes transport timeouts match context.DeadlineExceeded.
func timeoutCause(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return err
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode backend request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodDelete, path, query, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// sendMultipart streams fields and files as multipart/form-data.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields url.Values, files []domain.FileUpload, out any) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeMultipart(mw, fields, files))
	}()

	req, err := c.newRequest(ctx, method, path, nil, pr)
	if err != nil {
		pr.Close()
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		pr.CloseWithError(err)
		return err
	}
	return decode(resp, out)
}

func writeMultipart(mw *multipart.Writer, fields url.Values, files []domain.FileUpload) error {
	for key, values := range fields {
		for _, v := range values {
			if err := mw.WriteField(key, v); err != nil {
				return err
			}
		}
	}
	for _, f := range files {
		if f.Content == nil {
			continue
		}
		part, err := mw.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("copy %s: %w", f.FileName, err)
		}
	}
	return mw.Close()
}

// download returns the response body as a stream. fallback is used when the
// backend does not name the file.
func (c *Client) download(ctx context.Context, path string, query url.Values, fallback string) (*domain.Download, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return &domain.Download{
		FileName:    fileName(resp.Header.Get("Content-Disposition"), fallback),
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}, nil
}

func fileName(contentDisposition, fallback string) string {
	if contentDisposition == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(contentDisposition)
	if err != nil {
		return fallback
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return fallback
}
