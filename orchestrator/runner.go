package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ListFiles enumerates the regular files in dir with the given extension,
// sorted by name. Directory-scanning policy lives here so the drivers only
// ever see explicit job lists.
func ListFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// runEach fans the jobs out over the worker pool. Each job writes its own
// output file, so no write serialization is needed; per-job failures are
// logged and skipped.
func (p *Pipeline) runEach(ctx context.Context, routine string, jobs []Job, fn func(context.Context, Job) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := fn(gctx, job); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				p.warn(routine, job, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// runRows fans the jobs out over the worker pool and streams the produced
// summary rows to a single writer goroutine, so concurrent results never
// interleave within the output file. The header is written once, before the
// first row.
func (p *Pipeline) runRows(ctx context.Context, routine, outPath, header string, jobs []Job, fn func(context.Context, Job) (string, error)) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := fmt.Fprintln(out, header); err != nil {
		return err
	}

	rows := make(chan string)
	writerDone := make(chan struct{})
	var writeErr error
	go func() {
		defer close(writerDone)
		for row := range rows {
			if writeErr != nil {
				continue
			}
			if _, err := fmt.Fprintln(out, row); err != nil {
				writeErr = err
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			row, err := fn(gctx, job)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				p.warn(routine, job, err)
				return nil
			}
			select {
			case rows <- row:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	err = g.Wait()
	close(rows)
	<-writerDone
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}
	return out.Close()
}

func (p *Pipeline) warn(routine string, job Job, err error) {
	entry := p.log.WithField("routine", routine).WithField("file", job.FileID)
	var miss *MissingFileError
	if errors.As(err, &miss) {
		entry.WithField("path", miss.Path).Warn("skipping file, paired input missing")
		return
	}
	entry.WithError(err).Warn("skipping file")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func joinIf(dir, name string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}

// fmtFloat renders a float with the shortest round-trip representation,
// matching the summary files produced by earlier versions of the pipeline.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
