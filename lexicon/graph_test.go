package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/retrofit/core"
)

func neighborSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func TestParse(t *testing.T) {
	input := "happy glad joyful\nsad unhappy\n"

	g, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, neighborSet("glad", "joyful"), g.Neighbors("happy"))
	assert.Equal(t, neighborSet("unhappy"), g.Neighbors("sad"))
}

func TestParse_NormalizesTokens(t *testing.T) {
	input := "Happy GLAD 42 !!!\n"

	g, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, g.Has("happy"))
	assert.Equal(t, neighborSet("glad", core.NumKey, core.PuncKey), g.Neighbors("happy"))
}

func TestParse_LastWriteWins(t *testing.T) {
	input := "happy glad\nhappy joyful cheerful\n"

	g, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	// The second line replaces, never merges
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, neighborSet("joyful", "cheerful"), g.Neighbors("happy"))
}

func TestParse_DuplicateNeighborsCollapse(t *testing.T) {
	g, err := Parse(strings.NewReader("happy glad GLAD glad\n"))
	require.NoError(t, err)

	assert.Equal(t, neighborSet("glad"), g.Neighbors("happy"))
}

func TestParse_ToleratesMalformedLines(t *testing.T) {
	input := "\nhappy glad\n\nlonely\n   \n"

	g, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())

	// A single-token line yields an empty neighbor set, not an error
	require.True(t, g.Has("lonely"))
	assert.Empty(t, g.Neighbors("lonely"))
}

func TestParse_EmptyInput(t *testing.T) {
	g, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Nil(t, g.Neighbors("anything"))
}

func TestGraph_Words(t *testing.T) {
	g, err := Parse(strings.NewReader("a b\nc d\n"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, g.Words())
}
