package align

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LiRem101/playing-with-voices/rttm"
	"github.com/LiRem101/playing-with-voices/segment"
)

// ToSpeakerSegments turns a speaker-assigned word table into one
// chronological segment sequence: rows are grouped by speaker (keeping row
// order within each group), each speaker's run is gap-merged independently,
// and the flattened result is stably sorted by start time. That final sort
// is the only point where cross-speaker order is established.
func ToSpeakerSegments(rows []SpeakerRow, gap float64) ([]segment.Segment, error) {
	if len(rows) == 0 {
		return nil, segment.ErrEmptyInput
	}

	groups := make(map[string][]segment.Segment)
	var order []string
	for _, r := range rows {
		if _, ok := groups[r.Speaker]; !ok {
			order = append(order, r.Speaker)
		}
		groups[r.Speaker] = append(groups[r.Speaker], segment.Segment{
			Start:   r.Start,
			End:     r.End,
			Speaker: r.Speaker,
		})
	}

	var flat []segment.Segment
	for _, spk := range order {
		merged, err := segment.Merge(groups[spk], gap)
		if err != nil {
			return nil, err
		}
		flat = append(flat, merged...)
	}
	sort.SliceStable(flat, func(i, j int) bool { return flat[i].Start < flat[j].Start })
	return flat, nil
}

// ConvertFile converts a speaker-assigned alignment CSV into an RTTM file
// using the given merge gap. The source file's base name, stripped of
// extensions, becomes the RTTM file id.
func ConvertFile(csvPath, rttmPath string, gap float64) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := ReadSpeakerTable(f, csvPath)
	if err != nil {
		return err
	}
	segs, err := ToSpeakerSegments(rows, gap)
	if err != nil {
		return fmt.Errorf("align: convert %s: %w", csvPath, err)
	}
	return rttm.WriteFile(rttmPath, FileID(csvPath), segs)
}

// FileID derives the annotation file id from a path: the base name up to
// its first dot.
func FileID(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}
