// Package clients holds thin HTTP clients for the ML sidecar services the
// pipeline delegates to: diarization, forced alignment, POS tagging and
// diarization scoring.
package clients

import (
	"net/http"
	"time"
)

type HTTP struct{ c *http.Client }

func NewHTTP(timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTP{c: &http.Client{Timeout: timeout}}
}
