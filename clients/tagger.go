package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// --- POS tagging (/tag) ---

type TagReq struct {
	Text string `json:"text"`
}

// TaggedToken carries a token and its universal POS tag ("INTJ", "NOUN"...).
type TaggedToken struct {
	Text string `json:"text"`
	POS  string `json:"pos"`
}

type TagResp struct {
	Tokens []TaggedToken `json:"tokens"`
}

// CountPOS returns how many tokens carry the given tag.
func (r *TagResp) CountPOS(tag string) int {
	n := 0
	for _, t := range r.Tokens {
		if t.POS == tag {
			n++
		}
	}
	return n
}

func (h *HTTP) Tag(ctx context.Context, url, text string) (*TagResp, error) {
	payload, _ := json.Marshal(TagReq{Text: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/tag", bytes.NewReader(payload))
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
		return nil, fmt.Errorf("tagger %s: %s", resp.Status, string(body))
	}

	var out TagResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("tagger decode: %w", err)
	}
	return &out, nil
}
