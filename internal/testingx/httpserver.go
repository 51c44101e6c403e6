package testingx

//
// HTTP server for tests
//

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
)

// HTTPServer is an HTTP server for tests that counts the requests it receives.
type HTTPServer struct {
	// URL is the server base URL (e.g., http://127.0.0.1:54321).
	URL string

	requests atomic.Int64
	srv      *httptest.Server
}

// MustNewHTTPServer starts an [*HTTPServer] serving handler on the loopback
// interface. This function panics if we cannot listen. Remember to call Close.
func MustNewHTTPServer(handler http.Handler) *HTTPServer {
	hs := &HTTPServer{}
	hs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hs.requests.Add(1)
		handler.ServeHTTP(w, r)
	}))
	hs.URL = hs.srv.URL
	return hs
}

// Requests returns the number of requests received so far.
func (hs *HTTPServer) Requests() int64 {
	return hs.requests.Load()
}

// Close shuts down the server.
func (hs *HTTPServer) Close() {
	hs.srv.Close()
}
