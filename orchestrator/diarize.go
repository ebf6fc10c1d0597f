package orchestrator

import (
	"context"
	"path/filepath"

	"github.com/LiRem101/playing-with-voices/align"
	"github.com/LiRem101/playing-with-voices/rttm"
)

// DiarizeOptions configures the diarization batch.
type DiarizeOptions struct {
	AudioDir  string
	ResultDir string
	// ReferenceDir holds reference RTTMs; only read when ConsiderSpeakers
	// is set, to pin the expected speaker count per file.
	ReferenceDir     string
	ConsiderSpeakers bool
	AccessToken      string
}

// DiarizeAll diarizes every audio file in the batch and writes one RTTM
// file per input next to the configured result directory.
func (p *Pipeline) DiarizeAll(ctx context.Context, opts DiarizeOptions) error {
	names, err := ListFiles(opts.AudioDir, p.cfg.Audio.Format)
	if err != nil {
		return err
	}
	p.log.WithField("routine", "diarize").WithField("files", len(names)).Info("starting batch")

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		id := align.FileID(name)
		jobs = append(jobs, Job{
			FileID:    id,
			Name:      name,
			Audio:     filepath.Join(opts.AudioDir, name),
			Reference: joinIf(opts.ReferenceDir, id+".rttm"),
		})
	}

	return p.runEach(ctx, "diarize", jobs, func(ctx context.Context, job Job) error {
		numSpeakers := 0
		if opts.ConsiderSpeakers {
			if !fileExists(job.Reference) {
				return &MissingFileError{Path: job.Reference}
			}
			n, err := rttm.CountSpeakersFile(job.Reference)
			if err != nil {
				return err
			}
			numSpeakers = n
		}
		resp, err := p.http.Diarize(ctx, p.cfg.Services.Diarizer.URL, job.Audio, numSpeakers, opts.AccessToken)
		if err != nil {
			return err
		}
		out := filepath.Join(opts.ResultDir, job.FileID+".rttm")
		if err := rttm.WriteFile(out, job.FileID, resp.SegmentSequence()); err != nil {
			return err
		}
		p.log.WithField("file", job.FileID).
			WithField("speakers", rttm.CountSpeakers(resp.SegmentSequence())).
			Debug("diarized")
		return nil
	})
}
