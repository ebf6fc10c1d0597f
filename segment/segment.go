// Package segment holds the speaker-attributed time interval model and the
// transformations the annotation pipeline runs over interval sequences.
package segment

import "errors"

// ErrEmptyInput is returned when a transformation is invoked on an empty
// segment sequence.
var ErrEmptyInput = errors.New("segment: empty input sequence")

// DefaultMergeGap is the gap threshold, in seconds, below which two
// consecutive same-speaker segments are coalesced.
const DefaultMergeGap = 0.5

// Segment is one speaker-attributed time interval.
type Segment struct {
	Start   float64 // sec
	End     float64 // sec
	Speaker string  // "SPEAKER_00"...
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 { return s.End - s.Start }

// Merge coalesces consecutive segments whose gap (next start minus current
// end) is strictly below the given threshold. Merging chains: a coalesced
// segment keeps absorbing followers as long as each successive gap stays
// below the threshold, and it keeps the speaker label of the run's first
// segment. The input must be ordered by start time.
func Merge(segs []Segment, gap float64) ([]Segment, error) {
	if len(segs) == 0 {
		return nil, ErrEmptyInput
	}
	merged := make([]Segment, 0, len(segs))
	merged = append(merged, segs[0])
	for _, s := range segs[1:] {
		last := &merged[len(merged)-1]
		if s.Start-last.End < gap {
			last.End = s.End
		} else {
			merged = append(merged, s)
		}
	}
	return merged, nil
}
