package httpapi

//
// HTTP API descriptor (e.g., POST /api/v1/admin/list-users)
//

import (
	"net/http"
	"net/url"

	"github.com/vaultline/backupsdk/internal/model"
)

// Descriptor contains the parameters for calling a given HTTP
// API (e.g., POST /api/v1/admin/list-users).
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Descriptor struct {
	// Accept contains the OPTIONAL accept header.
	Accept string

	// ContentType is the OPTIONAL content-type header.
	ContentType string

	// Form contains the OPTIONAL form fields we send as the request body.
	Form url.Values

	// LogBody OPTIONALLY enables logging bodies. We always redact
	// secret form fields before logging them.
	LogBody bool

	// MaxBodySize is the OPTIONAL maximum response body size. If
	// not set, we use the |DefaultMaxBodySize| constant. A negative
	// value means there is no limit. Bodies exceeding the limit cause
	// Call to fail with ErrBodyTooLarge.
	MaxBodySize int64

	// Method is the MANDATORY request method.
	Method string

	// URLPath is the MANDATORY URL path.
	URLPath string
}

// WithBodyLogging returns a SHALLOW COPY of |Descriptor| with LogBody set to |value|. You SHOULD
// only use this method when initializing the descriptor you want to use.
func (desc *Descriptor) WithBodyLogging(value bool) *Descriptor {
	out := &Descriptor{}
	*out = *desc
	out.LogBody = value
	return out
}

// DefaultMaxBodySize is the default value for the maximum
// body size you can fetch using the httpapi package.
const DefaultMaxBodySize = 1 << 24

// NewPOSTFormDescriptor creates a descriptor that POSTs the given |form|
// using the application/x-www-form-urlencoded encoding and expects a JSON
// document (or, for some APIs, plain text) in response.
func NewPOSTFormDescriptor(urlPath string, form url.Values) *Descriptor {
	return &Descriptor{
		Accept:      model.ContentTypeJSON,
		ContentType: model.ContentTypeFormURLEncoded,
		Form:        form,
		LogBody:     false,
		MaxBodySize: DefaultMaxBodySize,
		Method:      http.MethodPost,
		URLPath:     urlPath,
	}
}

// NewPOSTFormTextDescriptor is like NewPOSTFormDescriptor but for APIs returning
// plain text (e.g., job logs), whose size we do not limit.
func NewPOSTFormTextDescriptor(urlPath string, form url.Values) *Descriptor {
	desc := NewPOSTFormDescriptor(urlPath, form)
	desc.MaxBodySize = -1
	return desc
}
