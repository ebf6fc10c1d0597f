package orchestrator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/LiRem101/playing-with-voices/align"
)

// AlignOptions configures the forced-alignment batch. Transcripts are
// expected as <base>.txt files matching the audio base names.
type AlignOptions struct {
	AudioDir      string
	TranscriptDir string
	ResultDir     string
}

// AlignAll force-aligns every audio file against its transcript and writes
// one per-word alignment table per input.
func (p *Pipeline) AlignAll(ctx context.Context, opts AlignOptions) error {
	names, err := ListFiles(opts.AudioDir, p.cfg.Audio.Format)
	if err != nil {
		return err
	}
	p.log.WithField("routine", "align").WithField("files", len(names)).Info("starting batch")

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		id := align.FileID(name)
		jobs = append(jobs, Job{
			FileID:     id,
			Name:       name,
			Audio:      filepath.Join(opts.AudioDir, name),
			Transcript: filepath.Join(opts.TranscriptDir, id+".txt"),
		})
	}

	return p.runEach(ctx, "align", jobs, func(ctx context.Context, job Job) error {
		if !fileExists(job.Transcript) {
			return &MissingFileError{Path: job.Transcript}
		}
		raw, err := os.ReadFile(job.Transcript)
		if err != nil {
			return err
		}
		tokens := align.NormalizeTranscript(string(raw))
		resp, err := p.http.Align(ctx, p.cfg.Services.Aligner.URL, job.Audio, tokens)
		if err != nil {
			return err
		}

		rows := make([]align.WordRow, 0, len(resp.Spans))
		for _, s := range resp.Spans {
			rows = append(rows, align.WordRow{Word: s.Word, Start: s.Start, End: s.End, Score: s.Score})
		}
		var buf bytes.Buffer
		if err := align.WriteWordTable(&buf, rows); err != nil {
			return err
		}
		out := filepath.Join(opts.ResultDir, job.FileID+".csv")
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return err
		}
		p.log.WithField("file", job.FileID).WithField("words", len(rows)).Debug("aligned")
		return nil
	})
}
