// Package audioinfo probes audio files for metadata the evaluation
// summaries need.
package audioinfo

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// WavDuration returns the length of a WAV file in seconds, derived from
// its header (frame count over sample rate).
func WavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	d, err := dec.Duration()
	if err != nil {
		return 0, fmt.Errorf("audioinfo: %s: %w", path, err)
	}
	return d.Seconds(), nil
}
