package httpapi

//
// Scrubbing secrets before logging
//

import (
	"net/url"
	"strings"
)

// redacted replaces secret values inside logs.
const redacted = "[scrubbed]"

// secretFieldSuffixes contains lowercase suffixes of form fields carrying secrets.
var secretFieldSuffixes = []string{
	"password",
	"sessionkey",
	"totpkey",
	"totpcode",
	"secretkey",
	"recoverycode",
}

// isSecretField returns whether the form field called |name| carries a secret.
func isSecretField(name string) bool {
	name = strings.ToLower(name)
	for _, suffix := range secretFieldSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// redactForm returns the encoding of |form| with secret values scrubbed.
func redactForm(form url.Values) string {
	scrubbed := url.Values{}
	for name, values := range form {
		if !isSecretField(name) {
			scrubbed[name] = values
			continue
		}
		for range values {
			scrubbed.Add(name, redacted)
		}
	}
	return scrubbed.Encode()
}
