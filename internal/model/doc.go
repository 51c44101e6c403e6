// Package model contains the interfaces shared by the SDK packages.
//
// This package should only contain small interfaces and the related
// default implementations, so that the transport, the API client and
// the CLI can depend on each other's behavior without depending on
// each other's implementation. In particular:
//
// - http.go: the HTTP client abstraction used by internal/httpapi;
//
// - logger.go: an apex/log compatible logger interface.
package model
