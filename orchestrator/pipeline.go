// Package orchestrator drives the per-directory batch routines: each
// routine enumerates its input files up front, fans the per-file work out
// over a bounded worker pool and funnels summary rows through a single
// writer. Files are independent, so a failed file is logged and skipped
// without aborting the batch.
package orchestrator

import (
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/LiRem101/playing-with-voices/clients"
	"github.com/LiRem101/playing-with-voices/config"
)

type Pipeline struct {
	cfg  *config.Root
	http *clients.HTTP
	log  *logrus.Logger
}

func New(cfg *config.Root, log *logrus.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, http: clients.NewHTTP(cfg.Timeout()), log: log}
}

func (p *Pipeline) workers() int {
	if n := p.cfg.Analysis.Workers; n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}
