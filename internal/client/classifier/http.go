package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/ecorewards/internal/logging"
	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

// HTTPClient is a client of the classification JSON API rooted at baseURL.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewHTTPClient builds a client for baseURL. A zero timeout selects the
// default of ten seconds.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("adapter", "classifier"),
	}
}

// Classify uploads image as a data URL and returns the service's verdict.
func (c *HTTPClient) Classify(ctx context.Context, image []byte) waste.Result {
	body, err := json.Marshal(waste.ClassifyRequest{Image: dataURL(image)})
	if err != nil {
		return waste.Failure(fmt.Errorf("%w: %v", ErrRejected, err))
	}

	var out waste.ClassifyResponse
	status, err := c.do(ctx, http.MethodPost, "/classify", bytes.NewReader(body), &out)
	if err != nil {
		c.logger.Warn(ctx, "classify request failed", "status", status, "error", err)
		return waste.Failure(err)
	}
	if !out.Success || out.Classification == nil {
		return waste.Failure(fmt.Errorf("%w: unsuccessful classification", ErrRejected))
	}

	c.logger.Debug(ctx, "classify response",
		"class", out.Classification.PredictedClass,
		"type", out.Classification.WasteType,
		"confidence", out.Classification.Confidence)

	return waste.Success(*out.Classification)
}

func (c *HTTPClient) Health(ctx context.Context) (waste.HealthResponse, error) {
	var out waste.HealthResponse
	_, err := c.do(ctx, http.MethodGet, "/health", nil, &out)
	return out, err
}

func (c *HTTPClient) Info(ctx context.Context) (waste.InfoResponse, error) {
	var out waste.InfoResponse
	_, err := c.do(ctx, http.MethodGet, "/info", nil, &out)
	return out, err
}

// ModelLoaded asks /health whether the model is ready.
func (c *HTTPClient) ModelLoaded(ctx context.Context) (bool, error) {
	h, err := c.Health(ctx)
	if err != nil {
		return false, err
	}
	return h.ModelLoaded, nil
}

// do sends one request and decodes a 2xx JSON body into out. It returns the
// HTTP status (0 when no response arrived) and an error wrapping one of the
// package sentinels.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read body: %v", ErrBadResponse, err)
	}

	switch {
	case resp.StatusCode >= 500:
		return resp.StatusCode, fmt.Errorf("%w: status %d%s", ErrUnavailable, resp.StatusCode, errorSuffix(raw))
	case resp.StatusCode >= 300:
		return resp.StatusCode, fmt.Errorf("%w: status %d%s", ErrRejected, resp.StatusCode, errorSuffix(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return resp.StatusCode, nil
}

// errorSuffix extracts the service's {"error": "..."} message, if any.
func errorSuffix(raw []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &e) != nil || e.Error == "" {
		return ""
	}
	return ": " + e.Error
}

func dataURL(image []byte) string {
	mime := http.DetectContentType(image)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)
}
