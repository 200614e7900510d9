// file: client/client.go

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ged-apae-console/logger"
	"ged-apae-console/repository"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const maxResponseBody = 10 << 20

// Options configures a Client.
type Options struct {
	BaseURL     string
	Timeout     time.Duration
	Tokens      repository.ITokenRepository
	ExemptPaths []string
	// OnSessionInvalidated is installed on the AuthTransport.
	OnSessionInvalidated func(req *http.Request)
	// Transport is the underlying round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
}

// Client calls the GED REST backend. Every request goes through an AuthTransport.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	transport  *AuthTransport
}

// New creates a Client for the backend at opts.BaseURL.
func New(opts Options) (*Client, error) {
	if opts.Tokens == nil {
		return nil, errors.New("client requires a token repository")
	}
	baseURL, err := url.ParseRequestURI(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}

	transport := NewAuthTransport(opts.Transport, opts.Tokens, baseURL.Path, opts.ExemptPaths)
	transport.OnSessionInvalidated = opts.OnSessionInvalidated

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		transport: transport,
	}, nil
}

// Transport returns the interceptor installed on the client.
func (c *Client) Transport() *AuthTransport {
	return c.transport
}

// FilePart is one file field of a multipart request.
type FilePart struct {
	Field    string
	FileName string
	Content  []byte
}

// Do sends body (when non-nil) as JSON and decodes a JSON answer into out (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, path, out)
}

// DoMultipart sends fields and files as multipart/form-data.
func (c *Client) DoMultipart(ctx context.Context, method, path string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("writing form field %s: %w", name, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.FileName)
		if err != nil {
			return fmt.Errorf("creating form file %s: %w", file.Field, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("writing form file %s: %w", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	return c.send(req, path, out)
}

// File is a backend answer handed to the caller unread. Body must be closed.
type File struct {
	Body        io.ReadCloser
	ContentType string
	FileName    string
	// Size is -1 when the backend did not announce a length.
	Size int64
}

// Download issues a GET for path and streams the body back. A non-2xx answer
// is read and returned as an *APIError.
func (c *Client) Download(ctx context.Context, path string) (*File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, nil), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   path,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, ErrSessionInvalidated) {
			return nil, err
		}
		log.WithError(err).Error("Download from backend failed")
		return nil, fmt.Errorf("%s %s: %w", req.Method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		log.WithField("status", resp.StatusCode).Warn("Backend answered with an error")
		return nil, newAPIError(resp.StatusCode, path, data)
	}

	file := &File{
		Body:        resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		file.FileName = params["filename"]
	}
	log.WithField("content_type", file.ContentType).Debug("Backend download started")
	return file, nil
}

func (c *Client) send(req *http.Request, path string, out any) error {
	log := logger.Log.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   path,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, ErrSessionInvalidated) {
			return err
		}
		log.WithError(err).Error("Request to backend failed")
		return fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		log.WithError(err).Error("Failed to read backend response")
		return fmt.Errorf("reading response of %s %s: %w", req.Method, path, err)
	}

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"latency": time.Since(start),
	})
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("Backend answered with an error")
		return newAPIError(resp.StatusCode, path, data)
	}
	log.Debug("Backend request completed")

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.WithError(err).Error("Failed to decode backend response")
		return fmt.Errorf("decoding response of %s %s: %w", req.Method, path, err)
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
