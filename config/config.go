package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Service struct {
	URL string `yaml:"url"`
}
type Services struct {
	Diarizer Service `yaml:"diarizer"`
	Aligner  Service `yaml:"aligner"`
	Tagger   Service `yaml:"tagger"`
	Scorer   Service `yaml:"scorer"`
}
type Audio struct {
	Format string `yaml:"format"` // ".wav", ".flac"...
}
type Analysis struct {
	MergeGap float64 `yaml:"merge_gap"` // sec
	Collar   float64 `yaml:"collar"`    // sec, applied by the scorer
	Workers  int     `yaml:"workers"`   // 0 = GOMAXPROCS
}
type Root struct {
	Pipeline struct {
		Name   string `yaml:"name"`
		LogLvl string `yaml:"log_level"`
	} `yaml:"pipeline"`
	Audio       Audio    `yaml:"audio"`
	Services    Services `yaml:"services"`
	Analysis    Analysis `yaml:"analysis"`
	HTTPTimeout int      `yaml:"http_timeout_s"`
}

// Default returns the configuration used when no config file is present.
func Default() *Root {
	var c Root
	c.Pipeline.Name = "playing-with-voices"
	c.Pipeline.LogLvl = "info"
	c.Audio.Format = ".wav"
	c.Analysis.MergeGap = 0.5
	c.Analysis.Collar = 0.5
	c.HTTPTimeout = 300
	return &c
}

// Load reads the first config file found among the candidate paths and
// falls back to defaults when none exists. CONFIG_ENV selects the
// environment directory.
func Load() (*Root, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	guess := []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	}
	for _, p := range guess {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		defer f.Close()
		cfg := Default()
		if err = yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Default(), nil
}

// Timeout returns the sidecar HTTP timeout.
func (r *Root) Timeout() time.Duration { return time.Duration(r.HTTPTimeout) * time.Second }
