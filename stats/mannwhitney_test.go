package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMannWhitney(t *testing.T) {
	a := []float64{1.1, 2.3, 3.7, 4.2, 5.9}
	b := []float64{10.4, 11.8, 12.1, 13.6, 14.9}
	u, p, err := MannWhitney(a, b, TwoSided)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, u, 0.0)
	assert.Greater(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestMannWhitneyAlternatives(t *testing.T) {
	a := []float64{1.1, 2.3, 3.7, 4.2}
	b := []float64{10.4, 11.8, 12.1, 13.6}
	_, pLess, err := MannWhitney(a, b, Less)
	require.NoError(t, err)
	_, pGreater, err := MannWhitney(a, b, Greater)
	require.NoError(t, err)
	// a sits entirely below b, so "less" should be the more convincing story.
	assert.Less(t, pLess, pGreater)
}

func TestMannWhitneyUnknownAlternative(t *testing.T) {
	_, _, err := MannWhitney([]float64{1}, []float64{2}, "sideways")
	assert.Error(t, err)
}

func TestLoadSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.5\n\n2.25\n-3\n"), 0o644))
	got, err := LoadSamples(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.25, -3}, got)
}

func TestLoadSamplesBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.5\nabc\n"), 0o644))
	_, err := LoadSamples(path)
	assert.Error(t, err)
}
