package retrofit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/retrofit/core"
)

func TestRunJacobi_ZeroIterationsIsIdentity(t *testing.T) {
	table := buildTable(t, []string{"a", "b"}, [][]float64{{1, 0}, {0, 1}})
	graph := buildGraph(t, "a b\nb a\n")

	out, err := RunJacobi(table, graph, 0, 2)
	require.NoError(t, err)
	assert.True(t, table.Equal(out))
}

func TestRunJacobi_SingleNeighborMatchesReference(t *testing.T) {
	// With only one updated word per pass the snapshot read and the
	// in-pass read coincide, so both variants agree.
	table := buildTable(t, []string{"a", "b"}, [][]float64{{1, 0}, {0, 1}})
	graph := buildGraph(t, "a b\n")

	jacobi, err := RunJacobi(table, graph, 1, 2)
	require.NoError(t, err)

	reference, err := Run(table, graph, 1)
	require.NoError(t, err)

	assert.True(t, reference.Equal(jacobi))
}

func TestRunJacobi_SnapshotReadsDifferFromReference(t *testing.T) {
	table := buildTable(t, []string{"a", "b"}, [][]float64{{2, 0}, {0, 2}})
	graph := buildGraph(t, "a b\nb a\n")

	out, err := RunJacobi(table, graph, 1, 2)
	require.NoError(t, err)

	// Both words read the frozen previous-iteration values:
	// new a = (1*[2,0] + [0,2]) / 2, new b = (1*[0,2] + [2,0]) / 2.
	vecA, _ := out.Vector("a")
	assert.Equal(t, []float64{1, 1}, vecA)
	vecB, _ := out.Vector("b")
	assert.Equal(t, []float64{1, 1}, vecB)

	// The reference sweep sees the in-pass update of a and lands elsewhere
	reference, err := Run(table, graph, 1)
	require.NoError(t, err)

	refB, _ := reference.Vector("b")
	assert.Equal(t, []float64{0.5, 1.5}, refB)
	assert.False(t, reference.Equal(out))
}

func TestRunJacobi_DoesNotMutateCallerTable(t *testing.T) {
	table := buildTable(t, []string{"a", "b"}, [][]float64{{2, 0}, {0, 2}})
	graph := buildGraph(t, "a b\nb a\n")

	_, err := RunJacobi(table, graph, 10, 4)
	require.NoError(t, err)

	vecA, _ := table.Vector("a")
	assert.Equal(t, []float64{2, 0}, vecA)
}

func TestRunJacobi_DefaultPoolSize(t *testing.T) {
	table := buildTable(t, []string{"a", "b"}, [][]float64{{1, 0}, {0, 1}})
	graph := buildGraph(t, "a b\n")

	out, err := RunJacobi(table, graph, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())
}

func TestRunJacobi_LargerComponentDeterministic(t *testing.T) {
	words := []string{"a", "b", "c", "d"}
	vectors := [][]float64{{8, 0}, {0, 8}, {4, 4}, {2, 6}}
	graph := buildGraph(t, "a b c\nb a d\nc a\nd b\n")

	first, err := RunJacobi(buildTable(t, words, vectors), graph, 5, 3)
	require.NoError(t, err)

	second, err := RunJacobi(buildTable(t, words, vectors), graph, 5, 3)
	require.NoError(t, err)

	// Snapshot reads make the result independent of task scheduling
	assert.True(t, first.Equal(second))
}

func TestRunJacobi_ValidationErrors(t *testing.T) {
	graph := buildGraph(t, "a b\n")

	_, err := RunJacobi(nil, graph, 1, 2)
	assert.True(t, errors.Is(err, core.ErrEmptyTable))

	table := buildTable(t, []string{"a"}, [][]float64{{1}})
	_, err = RunJacobi(table, graph, -3, 2)
	assert.True(t, errors.Is(err, ErrNegativeIterations))
}
