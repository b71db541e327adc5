// Package resources holds canned provider payloads used by the mock maps
// client and by tests.
package resources

import "embed"

//go:embed *.json
var FS embed.FS
