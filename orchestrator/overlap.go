package orchestrator

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/LiRem101/playing-with-voices/align"
	"github.com/LiRem101/playing-with-voices/rttm"
	"github.com/LiRem101/playing-with-voices/segment"
)

// OverlapHeader is the overlap summary header. The "_ms" column holds
// second-valued totals; the misnomer is preserved for downstream consumers.
const OverlapHeader = "file, total_overlap_time_ms, relative_overlap_time"

// OverlapAll computes total and relative overlapping speech for every RTTM
// file in rttmDir and writes one summary row per file.
func (p *Pipeline) OverlapAll(ctx context.Context, rttmDir, resultFile string) error {
	names, err := ListFiles(rttmDir, ".rttm")
	if err != nil {
		return err
	}
	p.log.WithField("routine", "overlap").WithField("files", len(names)).Info("starting batch")

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, Job{
			FileID:    align.FileID(name),
			Name:      name,
			Reference: filepath.Join(rttmDir, name),
		})
	}

	return p.runRows(ctx, "overlap", resultFile, OverlapHeader, jobs, func(ctx context.Context, job Job) (string, error) {
		segs, err := rttm.ParseFile(job.Reference)
		if err != nil {
			return "", err
		}
		st, err := segment.Overlap(segs)
		if err != nil {
			return "", err
		}
		return strings.Join([]string{job.Name, fmtFloat(st.Total), fmtFloat(st.Relative)}, ", "), nil
	})
}
