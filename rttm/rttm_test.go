package rttm

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiRem101/playing-with-voices/segment"
)

func TestParse(t *testing.T) {
	in := "SPEAKER rec1 1 0.50 1.25 <NA> <NA> SPEAKER_00 <NA> <NA>\n" +
		"\n" +
		"SPEAKER rec1 1 2.00 0.40 <NA> <NA> SPEAKER_01 <NA> <NA>\n"
	segs, err := Parse(strings.NewReader(in), "rec1.rttm")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, segment.Segment{Start: 0.5, End: 1.75, Speaker: "SPEAKER_00"}, segs[0])
	assert.Equal(t, segment.Segment{Start: 2.0, End: 2.4, Speaker: "SPEAKER_01"}, segs[1])
}

func TestParseTooFewFields(t *testing.T) {
	_, err := Parse(strings.NewReader("SPEAKER rec1 1 0.50 1.25 <NA>\n"), "bad.rttm")
	var mre *MalformedRecordError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, 1, mre.Line)
	assert.Equal(t, "bad.rttm", mre.Path)
}

func TestParseNonNumericTimes(t *testing.T) {
	_, err := Parse(strings.NewReader("SPEAKER rec1 1 zero 1.25 <NA> <NA> A <NA> <NA>\n"), "")
	var mre *MalformedRecordError
	require.ErrorAs(t, err, &mre)

	_, err = Parse(strings.NewReader("SPEAKER rec1 1 0.50 long <NA> <NA> A <NA> <NA>\n"), "")
	require.ErrorAs(t, err, &mre)
}

func TestFormatSegment(t *testing.T) {
	line := FormatSegment("rec1", segment.Segment{Start: 0.5, End: 1.75, Speaker: "SPEAKER_00"})
	assert.Equal(t, "SPEAKER rec1 1 0.50 1.25 <NA> <NA> SPEAKER_00 <NA> <NA>", line)
}

func TestRoundTrip(t *testing.T) {
	line := "SPEAKER rec1 1 0.50 1.25 <NA> <NA> SPEAKER_00 <NA> <NA>"
	segs, err := Parse(strings.NewReader(line), "")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, line, FormatSegment("rec1", segs[0]))
}

func TestFormatJoinsWithoutTrailingNewline(t *testing.T) {
	segs := []segment.Segment{
		{Start: 0, End: 1, Speaker: "A"},
		{Start: 2, End: 3, Speaker: "B"},
	}
	out := Format("rec", segs)
	assert.Equal(t, 2, len(strings.Split(out, "\n")))
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestCountSpeakers(t *testing.T) {
	segs := []segment.Segment{
		{Start: 0, End: 1, Speaker: "A"},
		{Start: 1, End: 2, Speaker: "B"},
		{Start: 2, End: 3, Speaker: "A"},
	}
	assert.Equal(t, 2, CountSpeakers(segs))
	assert.Equal(t, 0, CountSpeakers(nil))
}

func TestWriteAndCountSpeakersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.rttm")
	segs := []segment.Segment{
		{Start: 0, End: 1, Speaker: "A"},
		{Start: 1, End: 2, Speaker: "B"},
		{Start: 2, End: 3, Speaker: "A"},
	}
	require.NoError(t, WriteFile(path, "rec", segs))

	n, err := CountSpeakersFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	parsed, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, segs, parsed)
}
