// Package must contains functions that panic on error.
package must

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/vaultline/backupsdk/internal/runtimex"
)

// Fprintf is like [fmt.Fprintf] but calls
// [runtimex.PanicOnError] on failure.
func Fprintf(w io.Writer, format string, v ...any) {
	_, err := fmt.Fprintf(w, format, v...)
	runtimex.PanicOnError(err, "fmt.Fprintf failed")
}

// ParseURL is like [url.Parse] but calls
// [runtimex.PanicOnError] on failure.
func ParseURL(URL string) *url.URL {
	parsed, err := url.Parse(URL)
	runtimex.PanicOnError(err, "url.Parse failed")
	return parsed
}

// ParseQuery is like [url.ParseQuery] but calls
// [runtimex.PanicOnError] on failure.
func ParseQuery(query string) url.Values {
	values, err := url.ParseQuery(query)
	runtimex.PanicOnError(err, "url.ParseQuery failed")
	return values
}

// MarshalJSON is like [json.Marshal] but calls
// [runtimex.PanicOnError] on failure.
func MarshalJSON(v any) []byte {
	data, err := json.Marshal(v)
	runtimex.PanicOnError(err, "json.Marshal failed")
	return data
}

// UnmarshalJSON is like [json.Unmarshal] but calls
// [runtimex.PanicOnError] on failure.
func UnmarshalJSON(data []byte, v any) {
	err := json.Unmarshal(data, v)
	runtimex.PanicOnError(err, "json.Unmarshal failed")
}

// ReadAll is like [io.ReadAll] but calls
// [runtimex.PanicOnError] on failure.
func ReadAll(r io.Reader) []byte {
	data, err := io.ReadAll(r)
	runtimex.PanicOnError(err, "io.ReadAll failed")
	return data
}
