// Package rttm reads and writes Rich Transcription Time-Marked files, the
// line-oriented annotation format used for speaker-segmented audio.
//
// A record line carries ten whitespace-separated fields:
//
//	SPEAKER {file_id} 1 {start:.2f} {duration:.2f} <NA> <NA> {speaker} <NA> <NA>
//
// Only fields 3 (start), 4 (duration) and 7 (speaker label) are meaningful;
// the rest are fixed placeholders reproduced verbatim.
package rttm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/LiRem101/playing-with-voices/segment"
)

const minFields = 8

// MalformedRecordError reports a record line that does not match the
// expected field count or types.
type MalformedRecordError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("rttm: malformed record at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("rttm: %s: malformed record at line %d: %s", e.Path, e.Line, e.Reason)
}

// Parse reads RTTM records into a segment sequence. Empty lines are
// skipped; each record's end time is start plus duration. The path is only
// used to annotate errors.
func Parse(r io.Reader, path string) ([]segment.Segment, error) {
	var segs []segment.Segment
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < minFields {
			return nil, &MalformedRecordError{Path: path, Line: line,
				Reason: fmt.Sprintf("got %d fields, want at least %d", len(fields), minFields)}
		}
		start, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, &MalformedRecordError{Path: path, Line: line,
				Reason: fmt.Sprintf("bad start time %q", fields[3])}
		}
		dur, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, &MalformedRecordError{Path: path, Line: line,
				Reason: fmt.Sprintf("bad duration %q", fields[4])}
		}
		segs = append(segs, segment.Segment{
			Start:   start,
			End:     start + dur,
			Speaker: fields[7],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rttm: read %s: %w", path, err)
	}
	return segs, nil
}

// ParseFile parses the RTTM file at the given path.
func ParseFile(path string) ([]segment.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// FormatSegment renders one canonical record line. Time fields are fixed to
// two decimal places.
func FormatSegment(fileID string, s segment.Segment) string {
	return fmt.Sprintf("SPEAKER %s 1 %.2f %.2f <NA> <NA> %s <NA> <NA>",
		fileID, s.Start, s.Duration(), s.Speaker)
}

// Format renders a segment sequence as newline-joined record lines, without
// a trailing newline.
func Format(fileID string, segs []segment.Segment) string {
	lines := make([]string, len(segs))
	for i, s := range segs {
		lines[i] = FormatSegment(fileID, s)
	}
	return strings.Join(lines, "\n")
}

// WriteFile writes the sequence to path as RTTM in a single buffered write.
func WriteFile(path, fileID string, segs []segment.Segment) error {
	return os.WriteFile(path, []byte(Format(fileID, segs)), 0o644)
}

// CountSpeakers returns the number of distinct speaker labels in the
// sequence.
func CountSpeakers(segs []segment.Segment) int {
	seen := make(map[string]struct{}, 4)
	for _, s := range segs {
		seen[s.Speaker] = struct{}{}
	}
	return len(seen)
}

// CountSpeakersFile parses the file at path and counts its distinct
// speaker labels.
func CountSpeakersFile(path string) (int, error) {
	segs, err := ParseFile(path)
	if err != nil {
		return 0, err
	}
	return CountSpeakers(segs), nil
}
