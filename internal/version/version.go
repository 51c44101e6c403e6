// Package version contains the SDK version.
package version

// Version is the software version.
const Version = "0.4.0"
