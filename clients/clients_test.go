package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempWav(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rec.wav")
	require.NoError(t, os.WriteFile(path, []byte("not-really-audio"), 0o644))
	return path
}

func TestDiarize(t *testing.T) {
	var gotSpeakers, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/diarize", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		gotSpeakers = r.FormValue("num_speakers")
		gotAuth = r.Header.Get("Authorization")
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		json.NewEncoder(w).Encode(DiarizeResp{
			Segments:    []DiarSeg{{Start: 0, End: 1.5, Speaker: "SPEAKER_00"}},
			NumSpeakers: 1,
		})
	}))
	defer srv.Close()

	h := NewHTTP(5 * time.Second)
	resp, err := h.Diarize(context.Background(), srv.URL, writeTempWav(t), 2, "tok123")
	require.NoError(t, err)
	assert.Equal(t, "2", gotSpeakers)
	assert.Equal(t, "Bearer tok123", gotAuth)

	segs := resp.SegmentSequence()
	require.Len(t, segs, 1)
	assert.Equal(t, "SPEAKER_00", segs[0].Speaker)
	assert.InDelta(t, 1.5, segs[0].End, 1e-9)
}

func TestDiarizeOmitsOptionalFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Empty(t, r.FormValue("num_speakers"))
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(DiarizeResp{})
	}))
	defer srv.Close()

	h := NewHTTP(5 * time.Second)
	_, err := h.Diarize(context.Background(), srv.URL, writeTempWav(t), 0, "")
	require.NoError(t, err)
}

func TestAlign(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/align", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "hello world", r.FormValue("transcript"))
		json.NewEncoder(w).Encode(AlignResp{Spans: []TokenSpan{
			{Word: "hello", Start: 0.1, End: 0.4, Score: 0.95},
			{Word: "world", Start: 0.5, End: 0.9, Score: 0.9},
		}})
	}))
	defer srv.Close()

	h := NewHTTP(5 * time.Second)
	resp, err := h.Align(context.Background(), srv.URL, writeTempWav(t), []string{"hello", "world"})
	require.NoError(t, err)
	require.Len(t, resp.Spans, 2)
	assert.Equal(t, "world", resp.Spans[1].Word)
}

func TestTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tag", r.URL.Path)
		var req TagReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "um well yes", req.Text)
		json.NewEncoder(w).Encode(TagResp{Tokens: []TaggedToken{
			{Text: "um", POS: "INTJ"},
			{Text: "well", POS: "INTJ"},
			{Text: "yes", POS: "ADV"},
		}})
	}))
	defer srv.Close()

	h := NewHTTP(5 * time.Second)
	resp, err := h.Tag(context.Background(), srv.URL, "um well yes")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CountPOS("INTJ"))
}

func TestScoreAndRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/score", r.URL.Path)
		var req ScoreReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 0.5, req.Collar, 1e-9)
		json.NewEncoder(w).Encode(ScoreResp{FalseAlarm: 1, MissedDetection: 2, Confusion: 3, Total: 10})
	}))
	defer srv.Close()

	h := NewHTTP(5 * time.Second)
	resp, err := h.Score(context.Background(), srv.URL, "REF", "HYP", 0.5)
	require.NoError(t, err)

	der, confusion, falseAlarm, missed := resp.Rates()
	assert.InDelta(t, 0.6, der, 1e-9)
	assert.InDelta(t, 0.3, confusion, 1e-9)
	assert.InDelta(t, 0.1, falseAlarm, 1e-9)
	assert.InDelta(t, 0.2, missed, 1e-9)
}

func TestRatesZeroTotal(t *testing.T) {
	r := &ScoreResp{FalseAlarm: 1, MissedDetection: 1, Confusion: 1, Total: 0}
	der, confusion, falseAlarm, missed := r.Rates()
	assert.Zero(t, der)
	assert.Zero(t, confusion)
	assert.Zero(t, falseAlarm)
	assert.Zero(t, missed)
}

func TestErrorStatusSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	h := NewHTTP(5 * time.Second)
	_, err := h.Tag(context.Background(), srv.URL, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}
