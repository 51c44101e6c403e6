package model

//
// HTTP client abstraction
//

import "net/http"

// HTTPClient is the interface of the HTTP client used to speak with the
// backup server. The stdlib's [*http.Client] implements this interface. Callers
// may provide a custom implementation (e.g., with a proxy or custom TLS settings).
type HTTPClient interface {
	// Do should work like [*http.Client.Do].
	Do(req *http.Request) (*http.Response, error)
}

// ContentTypeFormURLEncoded is the content type of every API request body.
const ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"

// ContentTypeJSON is the content type we accept in API responses.
const ContentTypeJSON = "application/json"
