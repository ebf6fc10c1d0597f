package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/LiRem101/playing-with-voices/segment"
)

// --- Diarization (/diarize) ---

type DiarSeg struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}

type DiarizeResp struct {
	Segments    []DiarSeg `json:"segments"`
	NumSpeakers int       `json:"num_speakers"`
}

// SegmentSequence converts the response into the pipeline's segment model.
func (r *DiarizeResp) SegmentSequence() []segment.Segment {
	segs := make([]segment.Segment, 0, len(r.Segments))
	for _, s := range r.Segments {
		segs = append(segs, segment.Segment{Start: s.Start, End: s.End, Speaker: s.Speaker})
	}
	return segs
}

// Diarize uploads the audio file for speaker diarization. numSpeakers > 0
// pins the expected speaker count; 0 lets the model decide. The access
// token, when set, is forwarded so the sidecar can pull gated model
// weights.
func (h *HTTP) Diarize(ctx context.Context, url, wavPath string, numSpeakers int, accessToken string) (*DiarizeResp, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := w.CreateFormFile("file", filepath.Base(wavPath))
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(wavPath)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	if _, err = io.Copy(fw, fd); err != nil {
		return nil, err
	}
	if numSpeakers > 0 {
		_ = w.WriteField("num_speakers", strconv.Itoa(numSpeakers))
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/diarize", &b)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("diarizer %s: %s", resp.Status, string(body))
	}

	var out DiarizeResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("diarizer decode: %w", err)
	}
	return &out, nil
}
