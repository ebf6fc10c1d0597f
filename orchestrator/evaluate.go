package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LiRem101/playing-with-voices/align"
	"github.com/LiRem101/playing-with-voices/audioinfo"
	"github.com/LiRem101/playing-with-voices/rttm"
)

// EvaluateHeader is the evaluation summary header, kept byte-identical to
// the files earlier pipeline versions produced.
const EvaluateHeader = "file, audio_length_s, speaker_number_reference, speaker_number_hypothesis, " +
	"speaker_no_relative_difference, diarization_error, confusion, false_alarm, missed_detection"

// EvaluateOptions configures the diarization evaluation batch. Reference
// RTTMs are paired with same-named hypothesis RTTMs and same-based audio
// files; pairs with a missing side are skipped.
type EvaluateOptions struct {
	ReferenceDir  string
	HypothesisDir string
	AudioDir      string
	ResultFile    string
}

// EvaluateAll scores every reference/hypothesis RTTM pair and writes one
// summary row per pair.
func (p *Pipeline) EvaluateAll(ctx context.Context, opts EvaluateOptions) error {
	names, err := ListFiles(opts.ReferenceDir, ".rttm")
	if err != nil {
		return err
	}
	p.log.WithField("routine", "evaluate").WithField("files", len(names)).Info("starting batch")

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		id := align.FileID(name)
		jobs = append(jobs, Job{
			FileID:     id,
			Name:       name,
			Reference:  filepath.Join(opts.ReferenceDir, name),
			Hypothesis: filepath.Join(opts.HypothesisDir, name),
			Audio:      filepath.Join(opts.AudioDir, id+p.cfg.Audio.Format),
		})
	}

	return p.runRows(ctx, "evaluate", opts.ResultFile, EvaluateHeader, jobs, p.evaluatePair)
}

func (p *Pipeline) evaluatePair(ctx context.Context, job Job) (string, error) {
	if !fileExists(job.Hypothesis) {
		return "", &MissingFileError{Path: job.Hypothesis}
	}
	if !fileExists(job.Audio) {
		return "", &MissingFileError{Path: job.Audio}
	}

	length, err := audioinfo.WavDuration(job.Audio)
	if err != nil {
		return "", err
	}
	refBlob, err := os.ReadFile(job.Reference)
	if err != nil {
		return "", err
	}
	hypBlob, err := os.ReadFile(job.Hypothesis)
	if err != nil {
		return "", err
	}
	refSegs, err := rttm.Parse(strings.NewReader(string(refBlob)), job.Reference)
	if err != nil {
		return "", err
	}
	hypSegs, err := rttm.Parse(strings.NewReader(string(hypBlob)), job.Hypothesis)
	if err != nil {
		return "", err
	}

	speakersRef := rttm.CountSpeakers(refSegs)
	speakersHyp := rttm.CountSpeakers(hypSegs)
	relative := 0.0
	if speakersRef != 0 {
		relative = float64(speakersHyp) / float64(speakersRef)
	}

	score, err := p.http.Score(ctx, p.cfg.Services.Scorer.URL, string(refBlob), string(hypBlob), p.cfg.Analysis.Collar)
	if err != nil {
		return "", err
	}
	der, confusion, falseAlarm, missed := score.Rates()

	cells := []string{
		job.FileID,
		fmtFloat(length),
		strconv.Itoa(speakersRef),
		strconv.Itoa(speakersHyp),
		fmtFloat(relative),
		fmtFloat(der),
		fmtFloat(confusion),
		fmtFloat(falseAlarm),
		fmtFloat(missed),
	}
	return strings.Join(cells, ", "), nil
}
