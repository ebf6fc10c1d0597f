package align

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWordTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWordTable(&buf, []WordRow{
		{Word: "hello", Start: 0.25, End: 0.75, Score: 0.91},
		{Word: "world", Start: 0.8, End: 1.2, Score: 0.87},
	})
	require.NoError(t, err)
	want := "Word, Start_ms, End_ms, Score\n" +
		"hello, 0.25, 0.75, 0.91\n" +
		"world, 0.8, 1.2, 0.87\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteWordTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWordTable(&buf, nil))
	assert.Equal(t, WordTableHeader+"\n", buf.String())
}
