package httpapi

//
// Calling HTTP APIs.
//

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vaultline/backupsdk/internal/model"
)

// joinURLPath appends |resourcePath| to |urlPath|.
func joinURLPath(urlPath, resourcePath string) string {
	if resourcePath == "" {
		if urlPath == "" {
			return "/"
		}
		return urlPath
	}
	if !strings.HasSuffix(urlPath, "/") {
		urlPath += "/"
	}
	resourcePath = strings.TrimPrefix(resourcePath, "/")
	return urlPath + resourcePath
}

// newRequest creates a new http.Request from the given |ctx|, |endpoint|, and |desc|.
func newRequest(ctx context.Context, endpoint *Endpoint, desc *Descriptor, logger model.Logger) (*http.Request, error) {
	URL, err := url.Parse(endpoint.BaseURL)
	if err != nil {
		return nil, err
	}
	// BaseURL and resource URL are joined if they have a path
	URL.Path = joinURLPath(URL.Path, desc.URLPath)
	URL.RawQuery = "" // as documented we never send a query
	var reqBody io.Reader
	if len(desc.Form) > 0 {
		encoded := desc.Form.Encode()
		reqBody = strings.NewReader(encoded)
		logger.Debugf("httpapi: request body length: %d", len(encoded))
		if desc.LogBody {
			logger.Debugf("httpapi: request body: %s", redactForm(desc.Form))
		}
	}
	request, err := http.NewRequestWithContext(ctx, desc.Method, URL.String(), reqBody)
	if err != nil {
		return nil, err
	}
	if desc.ContentType != "" {
		request.Header.Set("Content-Type", desc.ContentType)
	}
	if desc.Accept != "" {
		request.Header.Set("Accept", desc.Accept)
	}
	if endpoint.UserAgent != "" {
		request.Header.Set("User-Agent", endpoint.UserAgent)
	}
	return request, nil
}

// ErrHTTPRequestFailed indicates that the server returned >= 400.
type ErrHTTPRequestFailed struct {
	// StatusCode is the status code that failed.
	StatusCode int
}

// Error implements error.
func (err *ErrHTTPRequestFailed) Error() string {
	return fmt.Sprintf("httpapi: http request failed: %d", err.StatusCode)
}

// ErrBodyTooLarge indicates that the response body exceeds the descriptor's MaxBodySize.
var ErrBodyTooLarge = errors.New("httpapi: response body too large")

// readBody reads the whole body unless it exceeds |maxBodySize|, in which case it
// returns ErrBodyTooLarge. A negative |maxBodySize| disables the limit.
func readBody(body io.Reader, maxBodySize int64) ([]byte, error) {
	if maxBodySize < 0 {
		return io.ReadAll(body)
	}
	data, err := io.ReadAll(io.LimitReader(body, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBodySize {
		return nil, ErrBodyTooLarge
	}
	return data, nil
}

// docall calls the API represented by the given request |req| on the given |endpoint|
// and returns the response body or an error.
func docall(endpoint *Endpoint, desc *Descriptor, request *http.Request, logger model.Logger) ([]byte, string, error) {
	response, err := endpoint.HTTPClient.Do(request)
	if err != nil {
		return nil, outcomeNetworkError, err
	}
	defer response.Body.Close()
	// Implementation note: always read and log the response body since
	// it's quite useful to see the response JSON on API error.
	maxBodySize := desc.MaxBodySize
	if maxBodySize == 0 {
		maxBodySize = DefaultMaxBodySize // as documented
	}
	data, err := readBody(response.Body, maxBodySize)
	if errors.Is(err, ErrBodyTooLarge) {
		return nil, outcomeBodyTooLarge, err
	}
	if err != nil {
		return nil, outcomeNetworkError, err
	}
	logger.Debugf("httpapi: response body length: %d bytes", len(data))
	if desc.LogBody {
		logger.Debugf("httpapi: response body: %s", string(data))
	}
	if response.StatusCode >= 400 {
		return nil, outcomeHTTPError, &ErrHTTPRequestFailed{response.StatusCode}
	}
	return data, outcomeOK, nil
}

// Call invokes the API described by |desc| on the given HTTP |endpoint| and
// returns the response body (as a slice of bytes) or an error.
//
// Note: this function returns ErrHTTPRequestFailed if the HTTP status code is
// greater or equal than 400. You could use errors.As to obtain a copy of the
// error that was returned and see for yourself the actual status code.
//
// We do not add any timeout: use |ctx| or the |endpoint| HTTP client for that.
func Call(ctx context.Context, desc *Descriptor, endpoint *Endpoint) ([]byte, error) {
	logger := model.ValidLoggerOrDefault(endpoint.Logger)
	request, err := newRequest(ctx, endpoint, desc, logger)
	if err != nil {
		return nil, err
	}
	logger.Debugf("httpapi: %s %s", desc.Method, request.URL.Path)
	t0 := time.Now()
	data, outcome, err := docall(endpoint, desc, request, logger)
	metricRequestDurationSeconds.WithLabelValues(desc.URLPath).Observe(time.Since(t0).Seconds())
	metricRequestsCount.WithLabelValues(desc.URLPath, outcome).Inc()
	if err != nil {
		logger.Debugf("httpapi: %s %s: %s", desc.Method, request.URL.Path, err.Error())
	}
	return data, err
}
