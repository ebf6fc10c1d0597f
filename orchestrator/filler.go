package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LiRem101/playing-with-voices/align"
)

// FillerHeader is the filler-word summary header.
const FillerHeader = "file, total_amount_filler_words, relative_amount_filler_words"

// interjection is the universal POS tag counted as a filler word.
const interjection = "INTJ"

// FillerWordsAll counts interjection-tagged tokens in every .txt file in
// txtDir and writes one summary row per file: the absolute count and the
// count per word (0 for an empty text).
func (p *Pipeline) FillerWordsAll(ctx context.Context, txtDir, resultFile string) error {
	names, err := ListFiles(txtDir, ".txt")
	if err != nil {
		return err
	}
	p.log.WithField("routine", "fillerwords").WithField("files", len(names)).Info("starting batch")

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, Job{
			FileID:     align.FileID(name),
			Name:       name,
			Transcript: filepath.Join(txtDir, name),
		})
	}

	return p.runRows(ctx, "fillerwords", resultFile, FillerHeader, jobs, func(ctx context.Context, job Job) (string, error) {
		raw, err := os.ReadFile(job.Transcript)
		if err != nil {
			return "", err
		}
		text := string(raw)
		resp, err := p.http.Tag(ctx, p.cfg.Services.Tagger.URL, text)
		if err != nil {
			return "", err
		}
		total := resp.CountPOS(interjection)
		words := len(strings.Fields(text))
		relative := 0.0
		if words > 0 {
			relative = float64(total) / float64(words)
		}
		return strings.Join([]string{job.Name, strconv.Itoa(total), fmtFloat(relative)}, ", "), nil
	})
}
