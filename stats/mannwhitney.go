// Package stats runs the significance tests used for hypothesis testing
// over the derived per-file metrics.
package stats

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	moremath "github.com/aclements/go-moremath/stats"
)

// Alternative selects the alternative hypothesis of a test.
type Alternative string

const (
	TwoSided Alternative = "two-sided"
	Greater  Alternative = "greater"
	Less     Alternative = "less"
)

// MannWhitney runs the Mann-Whitney U test on two independent samples and
// returns the U statistic and p-value.
func MannWhitney(a, b []float64, alt Alternative) (u, p float64, err error) {
	var hyp moremath.LocationHypothesis
	switch alt {
	case TwoSided:
		hyp = moremath.LocationDiffers
	case Greater:
		hyp = moremath.LocationGreater
	case Less:
		hyp = moremath.LocationLess
	default:
		return 0, 0, fmt.Errorf("stats: unknown alternative %q", alt)
	}
	res, err := moremath.MannWhitneyUTest(a, b, hyp)
	if err != nil {
		return 0, 0, fmt.Errorf("stats: mann-whitney: %w", err)
	}
	return res.U, res.P, nil
}

// LoadSamples reads one float per line. Blank lines are skipped.
func LoadSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []float64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("stats: %s line %d: %w", path, line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
