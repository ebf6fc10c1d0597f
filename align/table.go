// Package align handles the per-word alignment tables produced by forced
// alignment and their conversion into per-speaker RTTM segments.
package align

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LiRem101/playing-with-voices/rttm"
)

// WordTableHeader is the header of the per-word alignment table. The "_ms"
// columns hold second-valued data; the misnomer is preserved for downstream
// consumers that select columns by name.
const WordTableHeader = "Word, Start_ms, End_ms, Score"

// WordRow is one aligned word with its time span and confidence.
type WordRow struct {
	Word  string
	Start float64 // sec
	End   float64 // sec
	Score float64
}

// SpeakerRow is a word row after a diarization pass has joined a speaker
// label onto it.
type SpeakerRow struct {
	Word    string
	Start   float64 // sec
	End     float64 // sec
	Score   float64
	Speaker string
}

// WriteWordTable writes the header and one row per word.
func WriteWordTable(w io.Writer, rows []WordRow) error {
	if _, err := fmt.Fprintln(w, WordTableHeader); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s, %s, %s, %s\n",
			r.Word, formatFloat(r.Start), formatFloat(r.End), formatFloat(r.Score))
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadSpeakerTable reads a speaker-assigned alignment table. The header
// line is skipped; each row has five comma-space separated fields of which
// start, end and speaker are used. The path only annotates errors.
func ReadSpeakerTable(r io.Reader, path string) ([]SpeakerRow, error) {
	var rows []SpeakerRow
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if line == 1 || strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, ", ")
		if len(fields) < 5 {
			return nil, &rttm.MalformedRecordError{Path: path, Line: line,
				Reason: fmt.Sprintf("got %d fields, want 5", len(fields))}
		}
		start, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &rttm.MalformedRecordError{Path: path, Line: line,
				Reason: fmt.Sprintf("bad start time %q", fields[1])}
		}
		end, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, &rttm.MalformedRecordError{Path: path, Line: line,
				Reason: fmt.Sprintf("bad end time %q", fields[2])}
		}
		score, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, &rttm.MalformedRecordError{Path: path, Line: line,
				Reason: fmt.Sprintf("bad score %q", fields[3])}
		}
		rows = append(rows, SpeakerRow{
			Word:    fields[0],
			Start:   start,
			End:     end,
			Score:   score,
			Speaker: fields[4],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("align: read %s: %w", path, err)
	}
	return rows, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
