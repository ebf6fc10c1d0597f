package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// --- Diarization scoring (/score) ---

type ScoreReq struct {
	Reference  string  `json:"reference"`
	Hypothesis string  `json:"hypothesis"`
	Collar     float64 `json:"collar"`
}

// ScoreResp carries the diarization error components in seconds. Collar
// handling happens inside the scoring service.
type ScoreResp struct {
	FalseAlarm      float64 `json:"false_alarm"`
	MissedDetection float64 `json:"missed_detection"`
	Confusion       float64 `json:"confusion"`
	Total           float64 `json:"total"`
}

// Rates normalizes the error components by total reference speech time and
// returns the diarization error rate as their sum. A zero total yields all
// zeros.
func (r *ScoreResp) Rates() (der, confusion, falseAlarm, missed float64) {
	if r.Total == 0 {
		return 0, 0, 0, 0
	}
	falseAlarm = r.FalseAlarm / r.Total
	missed = r.MissedDetection / r.Total
	confusion = r.Confusion / r.Total
	der = falseAlarm + missed + confusion
	return der, confusion, falseAlarm, missed
}

// Score submits reference and hypothesis RTTM blobs for diarization error
// scoring.
func (h *HTTP) Score(ctx context.Context, url, referenceRTTM, hypothesisRTTM string, collar float64) (*ScoreResp, error) {
	payload, _ := json.Marshal(ScoreReq{Reference: referenceRTTM, Hypothesis: hypothesisRTTM, Collar: collar})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/score", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("scorer %s: %s", resp.Status, string(body))
	}

	var out ScoreResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("scorer decode: %w", err)
	}
	return &out, nil
}
