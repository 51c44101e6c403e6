package httpapi

import "github.com/vaultline/backupsdk/internal/model"

// Endpoint is an HTTP endpoint serving the backup server API.
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Endpoint struct {
	// BaseURL is the MANDATORY endpoint base URL. We will honour the
	// path of this URL and prepend it to the actual path specified inside
	// a |Descriptor.URLPath|. However, we will always discard any query
	// that may have been set inside the BaseURL.
	BaseURL string

	// HTTPClient is the MANDATORY HTTP client to use.
	HTTPClient model.HTTPClient

	// Logger is the OPTIONAL logger to use. When nil, we don't log.
	Logger model.Logger

	// UserAgent is the OPTIONAL user-agent to use.
	UserAgent string
}
