package retrofit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/retrofit/embedding"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPipeline_Run(t *testing.T) {
	dir := t.TempDir()
	input := writeTempFile(t, dir, "vecs.txt", "a 1.0 0.0\nb 0.0 1.0\n")
	lex := writeTempFile(t, dir, "lexicon.txt", "a b\n")
	output := filepath.Join(dir, "out.txt")

	var progress bytes.Buffer
	pipeline := NewPipeline(&Config{Iterations: 1}, &progress)

	require.NoError(t, pipeline.Run(input, lex, output))

	refined, err := embedding.LoadFile(output)
	require.NoError(t, err)

	vecA, ok := refined.Vector("a")
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 0.5}, vecA)

	vecB, _ := refined.Vector("b")
	assert.Equal(t, []float64{0, 1}, vecB)

	assert.Contains(t, progress.String(), "Retrofitting 2 words for 1 iterations")
	assert.Contains(t, progress.String(), "Retrofitting complete")
}

func TestPipeline_RunJacobiVariant(t *testing.T) {
	dir := t.TempDir()
	input := writeTempFile(t, dir, "vecs.txt", "a 2.0 0.0\nb 0.0 2.0\n")
	lex := writeTempFile(t, dir, "lexicon.txt", "a b\nb a\n")
	output := filepath.Join(dir, "out.txt")

	pipeline := NewPipeline(&Config{Iterations: 1, Jacobi: true, PoolSize: 2}, nil)
	require.NoError(t, pipeline.Run(input, lex, output))

	refined, err := embedding.LoadFile(output)
	require.NoError(t, err)

	// Snapshot semantics: both words land on the midpoint
	vecA, _ := refined.Vector("a")
	assert.Equal(t, []float64{1, 1}, vecA)
	vecB, _ := refined.Vector("b")
	assert.Equal(t, []float64{1, 1}, vecB)
}

func TestPipeline_L2Normalize(t *testing.T) {
	dir := t.TempDir()
	input := writeTempFile(t, dir, "vecs.txt", "a 3.0 4.0\n")
	lex := writeTempFile(t, dir, "lexicon.txt", "\n")
	output := filepath.Join(dir, "out.txt")

	pipeline := NewPipeline(&Config{Iterations: 5, L2Normalize: true}, nil)
	require.NoError(t, pipeline.Run(input, lex, output))

	refined, err := embedding.LoadFile(output)
	require.NoError(t, err)

	// No graph overlap: the output is just the normalized input
	vecA, _ := refined.Vector("a")
	assert.InDelta(t, 0.6, vecA[0], 1e-5)
	assert.InDelta(t, 0.8, vecA[1], 1e-5)
}

func TestPipeline_MissingInput(t *testing.T) {
	dir := t.TempDir()
	lex := writeTempFile(t, dir, "lexicon.txt", "a b\n")

	pipeline := NewPipeline(nil, nil)
	err := pipeline.Run(filepath.Join(dir, "absent.txt"), lex, filepath.Join(dir, "out.txt"))
	assert.Error(t, err)
}
