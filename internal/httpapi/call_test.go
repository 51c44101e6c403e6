package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vaultline/backupsdk/internal/model"
	"github.com/vaultline/backupsdk/internal/model/mocks"
)

func Test_joinURLPath(t *testing.T) {
	tests := []struct {
		name         string
		urlPath      string
		resourcePath string
		want         string
	}{{
		name:         "whole path inside urlPath and empty resourcePath",
		urlPath:      "/api/v1/admin/list-users",
		resourcePath: "",
		want:         "/api/v1/admin/list-users",
	}, {
		name:         "empty urlPath and slash-prefixed resourcePath",
		urlPath:      "",
		resourcePath: "/foo",
		want:         "/foo",
	}, {
		name:         "empty urlPath and empty resourcePath",
		urlPath:      "",
		resourcePath: "",
		want:         "/",
	}, {
		name:         "non-slash-terminated urlPath and slash-prefixed resourcePath",
		urlPath:      "/backup",
		resourcePath: "/api/v1/admin/meta/version",
		want:         "/backup/api/v1/admin/meta/version",
	}, {
		name:         "slash-terminated urlPath and slash-prefixed resourcePath",
		urlPath:      "/backup/",
		resourcePath: "/api/v1",
		want:         "/backup/api/v1",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinURLPath(tt.urlPath, tt.resourcePath)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func Test_newRequest(t *testing.T) {
	t.Run("url.Parse fails", func(t *testing.T) {
		endpoint := &Endpoint{BaseURL: "\t\t\t"} // does not parse!
		desc := NewPOSTFormDescriptor("/api/v1/x", nil)
		_, err := newRequest(context.Background(), endpoint, desc, model.DiscardLogger)
		if err == nil || !strings.HasSuffix(err.Error(), "invalid control character in URL") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("http.NewRequestWithContext fails", func(t *testing.T) {
		endpoint := &Endpoint{BaseURL: "https://example.com/"}
		desc := NewPOSTFormDescriptor("/api/v1/x", nil)
		//lint:ignore SA1012 we want to see the request creation failing
		_, err := newRequest(nil, endpoint, desc, model.DiscardLogger)
		if err == nil || err.Error() != "net/http: nil Context" {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("we build a form POST with the right headers", func(t *testing.T) {
		endpoint := &Endpoint{
			BaseURL:   "https://backup.example.com/prefix?x=1",
			UserAgent: "backupsdk-go/0.0.1",
		}
		form := url.Values{"Username": {"admin"}, "TargetUser": {"alice"}}
		desc := NewPOSTFormDescriptor("/api/v1/admin/get-user-profile", form)
		req, err := newRequest(context.Background(), endpoint, desc, model.DiscardLogger)
		if err != nil {
			t.Fatal(err)
		}
		if req.Method != http.MethodPost {
			t.Fatal("invalid method", req.Method)
		}
		if req.URL.String() != "https://backup.example.com/prefix/api/v1/admin/get-user-profile" {
			t.Fatal("invalid URL", req.URL.String())
		}
		if req.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
			t.Fatal("invalid content-type")
		}
		if req.Header.Get("Accept") != "application/json" {
			t.Fatal("invalid accept")
		}
		if req.Header.Get("User-Agent") != "backupsdk-go/0.0.1" {
			t.Fatal("invalid user-agent")
		}
		data, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("TargetUser=alice&Username=admin", string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("without a form we send no body", func(t *testing.T) {
		endpoint := &Endpoint{BaseURL: "https://example.com/"}
		desc := NewPOSTFormDescriptor("/api/v1/x", nil)
		req, err := newRequest(context.Background(), endpoint, desc, model.DiscardLogger)
		if err != nil {
			t.Fatal(err)
		}
		if req.Body != nil {
			t.Fatal("expected nil body")
		}
	})
}

func TestCall(t *testing.T) {
	t.Run("successful call", func(t *testing.T) {
		var gotForm url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				w.WriteHeader(500)
				return
			}
			gotForm = r.PostForm
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"Status":200,"Message":"OK"}`))
		}))
		defer srv.Close()
		endpoint := &Endpoint{BaseURL: srv.URL, HTTPClient: http.DefaultClient}
		form := url.Values{"Username": {"admin"}, "AuthType": {"Password"}}
		before := testutil.ToFloat64(metricRequestsCount.WithLabelValues("/api/v1/test/ok", outcomeOK))
		data, err := Call(context.Background(), NewPOSTFormDescriptor("/api/v1/test/ok", form), endpoint)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(`{"Status":200,"Message":"OK"}`, string(data)); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff(form, gotForm); diff != "" {
			t.Fatal(diff)
		}
		after := testutil.ToFloat64(metricRequestsCount.WithLabelValues("/api/v1/test/ok", outcomeOK))
		if after != before+1 {
			t.Fatal("the requests counter has not been incremented")
		}
	})

	t.Run("status code >= 400", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"Status":403,"Message":"denied"}`))
		}))
		defer srv.Close()
		endpoint := &Endpoint{BaseURL: srv.URL, HTTPClient: http.DefaultClient}
		data, err := Call(context.Background(), NewPOSTFormDescriptor("/api/v1/test/forbidden", nil), endpoint)
		var failure *ErrHTTPRequestFailed
		if !errors.As(err, &failure) || failure.StatusCode != http.StatusForbidden {
			t.Fatal("unexpected error", err)
		}
		if data != nil {
			t.Fatal("expected nil data")
		}
		count := testutil.ToFloat64(metricRequestsCount.WithLabelValues("/api/v1/test/forbidden", outcomeHTTPError))
		if count < 1 {
			t.Fatal("the http_error counter has not been incremented")
		}
	})

	t.Run("the round trip fails", func(t *testing.T) {
		expected := errors.New("mocked error")
		endpoint := &Endpoint{
			BaseURL: "https://backup.example.com/",
			HTTPClient: &mocks.HTTPClient{
				MockDo: func(req *http.Request) (*http.Response, error) {
					return nil, expected
				},
			},
		}
		_, err := Call(context.Background(), NewPOSTFormDescriptor("/api/v1/test/network", nil), endpoint)
		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
		if testutil.CollectAndCount(metricRequestDurationSeconds) < 1 {
			t.Fatal("expected at least a duration sample")
		}
	})

	t.Run("reading the body fails", func(t *testing.T) {
		expected := errors.New("mocked read error")
		endpoint := &Endpoint{
			BaseURL: "https://backup.example.com/",
			HTTPClient: &mocks.HTTPClient{
				MockDo: func(req *http.Request) (*http.Response, error) {
					return &http.Response{
						StatusCode: 200,
						Body:       io.NopCloser(&failingReader{err: expected}),
					}, nil
				},
			},
		}
		_, err := Call(context.Background(), NewPOSTFormDescriptor("/api/v1/test/body", nil), endpoint)
		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("we honour MaxBodySize", func(t *testing.T) {
		newEndpoint := func(body string) *Endpoint {
			return &Endpoint{
				BaseURL: "https://backup.example.com/",
				HTTPClient: &mocks.HTTPClient{
					MockDo: func(req *http.Request) (*http.Response, error) {
						return &http.Response{
							StatusCode: 200,
							Body:       io.NopCloser(strings.NewReader(body)),
						}, nil
					},
				},
			}
		}

		t.Run("a body exceeding the limit is an error", func(t *testing.T) {
			desc := NewPOSTFormDescriptor("/api/v1/test/limit", nil)
			desc.MaxBodySize = 4
			data, err := Call(context.Background(), desc, newEndpoint("01234"))
			if !errors.Is(err, ErrBodyTooLarge) {
				t.Fatal("unexpected error", err)
			}
			if data != nil {
				t.Fatal("expected nil data")
			}
		})

		t.Run("a body as large as the limit is fine", func(t *testing.T) {
			desc := NewPOSTFormDescriptor("/api/v1/test/limit", nil)
			desc.MaxBodySize = 4
			data, err := Call(context.Background(), desc, newEndpoint("0123"))
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != "0123" {
				t.Fatal("unexpected body", string(data))
			}
		})

		t.Run("the default limit applies when MaxBodySize is zero", func(t *testing.T) {
			desc := NewPOSTFormDescriptor("/api/v1/test/limit", nil)
			desc.MaxBodySize = 0
			body := strings.Repeat("x", DefaultMaxBodySize+100)
			if _, err := Call(context.Background(), desc, newEndpoint(body)); !errors.Is(err, ErrBodyTooLarge) {
				t.Fatal("unexpected error", err)
			}
		})

		t.Run("text descriptors read the whole body", func(t *testing.T) {
			desc := NewPOSTFormTextDescriptor("/api/v1/test/text", nil)
			body := strings.Repeat("x", DefaultMaxBodySize+100)
			data, err := Call(context.Background(), desc, newEndpoint(body))
			if err != nil {
				t.Fatal(err)
			}
			if len(data) != len(body) {
				t.Fatal("expected", len(body), "bytes, got", len(data))
			}
		})
	})

	t.Run("with body logging we scrub secrets", func(t *testing.T) {
		var (
			lines []string
			mu    sync.Mutex
		)
		logger := &mocks.Logger{
			MockDebugf: func(format string, v ...interface{}) {
				mu.Lock()
				lines = append(lines, fmt.Sprintf(format, v...))
				mu.Unlock()
			},
		}
		endpoint := &Endpoint{
			BaseURL: "https://backup.example.com/",
			HTTPClient: &mocks.HTTPClient{
				MockDo: func(req *http.Request) (*http.Response, error) {
					return &http.Response{
						StatusCode: 200,
						Body:       io.NopCloser(strings.NewReader(`[]`)),
					}, nil
				},
			},
			Logger: logger,
		}
		form := url.Values{"Username": {"admin"}, "Password": {"hunter2"}, "TargetPassword": {"s3cret"}}
		desc := NewPOSTFormDescriptor("/api/v1/test/logging", form).WithBodyLogging(true)
		if _, err := Call(context.Background(), desc, endpoint); err != nil {
			t.Fatal(err)
		}
		joined := strings.Join(lines, "\n")
		if strings.Contains(joined, "hunter2") || strings.Contains(joined, "s3cret") {
			t.Fatal("secrets leaked into the logs", joined)
		}
		if !strings.Contains(joined, "Username=admin") {
			t.Fatal("expected to see the username", joined)
		}
		if !strings.Contains(joined, "httpapi: response body: []") {
			t.Fatal("expected to see the response body", joined)
		}
	})
}

type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func TestRedactForm(t *testing.T) {
	form := url.Values{
		"Username":   {"admin"},
		"Password":   {"a"},
		"SessionKey": {"b"},
		"TOTPKey":    {"c"},
	}
	expect := "Password=%5Bscrubbed%5D&SessionKey=%5Bscrubbed%5D&TOTPKey=%5Bscrubbed%5D&Username=admin"
	if diff := cmp.Diff(expect, redactForm(form)); diff != "" {
		t.Fatal(diff)
	}
}
