package suggest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinematch/internal/catalog"
)

func texts(s []Suggestion) []string {
	out := make([]string, len(s))
	for i, x := range s {
		out[i] = x.Text
	}
	return out
}

func TestShortQueriesReturnNothing(t *testing.T) {
	for _, q := range []string{"", " ", "a", " d ", "\tT\n"} {
		assert.Empty(t, Suggest(q, catalog.SampleTitles), "query %q", q)
	}
}

func TestDarkKnightHighlightOffset(t *testing.T) {
	got := Suggest("dark", []string{"Avatar", "The Dark Knight", "Titanic"})
	require.Len(t, got, 1)
	assert.Equal(t, "The Dark Knight", got[0].Text)
	assert.Equal(t, 4, got[0].MatchStart)

	prefix, match, suffix := got[0].Parts()
	assert.Equal(t, "The ", prefix)
	assert.Equal(t, "Dark", match)
	assert.Equal(t, " Knight", suffix)
}

func TestCaseInsensitive(t *testing.T) {
	lower := Suggest("matrix", catalog.SampleTitles)
	upper := Suggest("MATRIX", catalog.SampleTitles)
	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}

func TestQueryIsTrimmed(t *testing.T) {
	assert.Equal(t, Suggest("the", catalog.SampleTitles), Suggest("  the  ", catalog.SampleTitles))
}

func TestCapAndOrder(t *testing.T) {
	titles := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		titles = append(titles, fmt.Sprintf("Movie %02d", i))
	}

	got := Suggest("movie", titles)
	require.Len(t, got, DefaultMaxResults)
	assert.Equal(t, titles[:DefaultMaxResults], texts(got), "matches keep catalog order")
}

func TestOrderPreservedAcrossNonMatches(t *testing.T) {
	got := Suggest("the", catalog.SampleTitles)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), DefaultMaxResults)

	// every result appears in the catalog after the previous one
	last := -1
	for _, s := range got {
		idx := -1
		for i := last + 1; i < len(catalog.SampleTitles); i++ {
			if catalog.SampleTitles[i] == s.Text {
				idx = i
				break
			}
		}
		require.Greater(t, idx, last, "%q out of catalog order", s.Text)
		last = idx
	}
}

func TestFirstOccurrenceIsHighlighted(t *testing.T) {
	got := Suggest("an", []string{"Banana Man"})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].MatchStart)
	assert.Equal(t, 3, got[0].MatchEnd)
}

func TestCatalogIsNotMutated(t *testing.T) {
	titles := []string{"The Matrix", "Avatar"}
	before := append([]string(nil), titles...)
	_ = Suggest("ma", titles)
	assert.Equal(t, before, titles)
}

func TestEmptyAndNilCatalog(t *testing.T) {
	assert.Empty(t, Suggest("dark", nil))
	assert.Empty(t, Suggest("dark", []string{}))
}

func TestDuplicatesAreKept(t *testing.T) {
	got := Suggest("avatar", []string{"Avatar", "Avatar"})
	assert.Equal(t, []string{"Avatar", "Avatar"}, texts(got))
}

func TestNonASCIIOffsetsStayValid(t *testing.T) {
	got := Suggest("amélie", []string{"Le Fabuleux Destin d'AMÉLIE Poulain"})
	require.Len(t, got, 1)
	_, match, _ := got[0].Parts()
	assert.Equal(t, "AMÉLIE", match)
}

func TestEngineLimits(t *testing.T) {
	e := Engine{MinQuery: 3, MaxResults: 2}
	assert.Empty(t, e.Suggest("th", catalog.SampleTitles))
	assert.Len(t, e.Suggest("the", catalog.SampleTitles), 2)
}
