package search

import (
	"testing"

	"github.com/nikbrunner/emj/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func entry(code, name string) model.Entry {
	return model.NewEntry(model.NewEntryParams{Code: code, HasAnimation: true, Name: name})
}

func testCatalog() []model.Entry {
	return []model.Entry{
		entry("1f600", "Grinning Face"),
		entry("1f642", "Slightly Smiling Face"),
		entry("1f60a", "Smiling Face With Smiling Eyes"),
		entry("2764_fe0f", "Red Heart"),
		entry("1f431", "Cat Face"),
		entry("1f389", "Party Popper"),
		entry("1f476", "Baby"),
	}
}

func codes(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Code
	}
	return out
}

func TestFuzzyMatch_EmptyQueryMatchesAll(t *testing.T) {
	for _, name := range []string{"grinning face", "", "emoji_u1f600", "red heart"} {
		assert.Check(t, FuzzyMatch(name, ""), "name %q", name)
		assert.Check(t, FuzzyMatch(name, "   "), "name %q", name)
	}
}

func TestFuzzyMatch_PartialWord(t *testing.T) {
	e := entry("1f642", "Smiling Face")
	assert.Check(t, FuzzyMatch(e.NormalizedName, "smil"))
	assert.Check(t, FuzzyMatch(e.NormalizedName, "SMILES"), "stemmed query should still match")
}

func TestFuzzyMatch_OrderIndependent(t *testing.T) {
	name := entry("1f60a", "Smiling Face With Smiling Eyes").NormalizedName

	queries := [][2]string{
		{"face smiling", "smiling face"},
		{"eyes smil", "smil eyes"},
		{"face dog", "dog face"},
	}
	for _, q := range queries {
		assert.Equal(t, FuzzyMatch(name, q[0]), FuzzyMatch(name, q[1]), "queries %q / %q", q[0], q[1])
	}
}

func TestFuzzyMatch_EveryQueryTokenMustMatch(t *testing.T) {
	name := entry("1f431", "Cat Face").NormalizedName

	assert.Check(t, FuzzyMatch(name, "cat"))
	assert.Check(t, FuzzyMatch(name, "cats face"))
	assert.Check(t, !FuzzyMatch(name, "cat dog"))
}

func TestFuzzyMatch_DiacriticInsensitive(t *testing.T) {
	name := entry("1f1e8_1f1ee", "Flag: Côte D’Ivoire").NormalizedName
	assert.Check(t, FuzzyMatch(name, "cote"))
	assert.Check(t, FuzzyMatch(name, "CÔTE ivoire"))
}

func TestFilter_BlankQueryIsIdentity(t *testing.T) {
	catalog := testCatalog()

	for _, q := range []string{"", "   ", "\t"} {
		got := Filter(catalog, q)
		assert.DeepEqual(t, codes(got), codes(catalog))
	}
}

func TestFilter_ByName(t *testing.T) {
	got := Filter(testCatalog(), "smil")
	assert.DeepEqual(t, codes(got), []string{"1f642", "1f60a"})
}

func TestFilter_ByCode(t *testing.T) {
	// "Baby" shares nothing with the query; the codepoint path must match.
	got := Filter(testCatalog(), "1f476")
	assert.Check(t, is.Contains(codes(got), "1f476"))
}

func TestFilter_ByInternalID(t *testing.T) {
	got := Filter(testCatalog(), "emoji_u2764")
	assert.DeepEqual(t, codes(got), []string{"2764_fe0f"})
}

func TestFilter_CaseInsensitiveCode(t *testing.T) {
	got := Filter(testCatalog(), "1F389")
	assert.DeepEqual(t, codes(got), []string{"1f389"})
}

func TestFilter_NoMatch(t *testing.T) {
	got := Filter(testCatalog(), "xyzzy")
	assert.Check(t, is.Len(got, 0))
}

func TestFilter_PreservesCatalogOrder(t *testing.T) {
	catalog := testCatalog()
	queries := []string{"face", "f", "1f6", "heart face", "smiling", "a", "emoji"}

	for _, q := range queries {
		got := Filter(catalog, q)
		// got must be a subsequence of catalog
		j := 0
		for _, e := range catalog {
			if j < len(got) && got[j].Code == e.Code {
				j++
			}
		}
		assert.Equal(t, j, len(got), "query %q is not a subsequence of the catalog", q)
	}
}

func TestHighlight(t *testing.T) {
	got := Highlight("Grinning Face", "gf")
	assert.Assert(t, is.Len(got, 2))
	assert.Check(t, got[0] < got[1])
	assert.Equal(t, got[1], 9) // the only "f"

	assert.Check(t, is.Nil(Highlight("Grinning Face", "")))
	assert.Check(t, is.Nil(Highlight("Grinning Face", "zzz")))
}
