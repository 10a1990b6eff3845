package catalog

import (
	"testing"

	"github.com/coreybb/studio/datastore"
	"github.com/coreybb/studio/models"
)

func seedItems(t *testing.T) []models.ContentItem {
	t.Helper()
	seed, err := datastore.LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	return seed.Content
}

func ids(items []models.ContentItem) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isSubsequence reports whether sub appears in full in the same relative order.
func isSubsequence(sub, full []int64) bool {
	j := 0
	for _, id := range full {
		if j < len(sub) && sub[j] == id {
			j++
		}
	}
	return j == len(sub)
}

func TestApply_IdentityFilter(t *testing.T) {
	items := seedItems(t)
	got := Apply(items, NewFilter(All, All, ""))

	if !equalIDs(ids(got), ids(items)) {
		t.Errorf("Apply(all, all, \"\") = %v, expected %v", ids(got), ids(items))
	}
}

func TestApply(t *testing.T) {
	items := seedItems(t)

	tests := []struct {
		name     string
		filter   Filter
		expected []int64
	}{
		{"podcast type", NewFilter(All, "podcast", ""), []int64{4}},
		{"hashtag match", NewFilter(All, All, "react"), []int64{3}},
		{"upper case query", NewFilter(All, All, "REACT"), []int64{3}},
		{"mixed case query", NewFilter(All, All, "ReAcT"), []int64{3}},
		{"keyword match", NewFilter(All, All, "thermo"), []int64{2}},
		{"title match", NewFilter(All, All, "guide"), []int64{5}},
		{"category", NewFilter("Technology", All, ""), []int64{3}},
		{"category is case sensitive", NewFilter("technology", All, ""), []int64{}},
		{"category and type", NewFilter("Education", "pdf", ""), []int64{5}},
		{"all three criteria", NewFilter("Education", "video", "calc"), []int64{1}},
		{"criteria conflict", NewFilter("Technology", "video", ""), []int64{}},
		{"shared keyword", NewFilter(All, All, "productivity"), []int64{4}},
		{"hash symbol matches hashtags", NewFilter(All, All, "#"), []int64{1, 2, 3, 4, 5}},
		{"no match", NewFilter(All, All, "zzz"), []int64{}},
		{"unknown type", NewFilter(All, "webinar", ""), []int64{}},
		{"empty inputs mean all", NewFilter("", "", ""), []int64{1, 2, 3, 4, 5}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Apply(items, test.filter)
			if !equalIDs(ids(got), test.expected) {
				t.Errorf("Apply(%+v) = %v, expected %v", test.filter, ids(got), test.expected)
			}
			if !isSubsequence(ids(got), ids(items)) {
				t.Errorf("Apply(%+v) = %v is not an ordered subsequence of the catalog", test.filter, ids(got))
			}
		})
	}
}

func TestApply_HashtagOnlyMatch(t *testing.T) {
	items := seedItems(t)
	// "webdev" appears only in item 3's hashtags, not its title or keywords.
	got := Apply(items, NewFilter(All, All, "webdev"))
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("Apply(q=webdev) = %v, expected [3]", ids(got))
	}
}

func TestApply_EmptyCatalog(t *testing.T) {
	got := Apply(nil, NewFilter(All, All, "anything"))
	if got == nil {
		t.Error("Apply(nil) returned nil, expected an empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Apply(nil) returned %d items, expected 0", len(got))
	}
}

func TestMatches_NoHashtagsOrKeywords(t *testing.T) {
	item := models.ContentItem{ID: 9, Title: "Plain Title", Type: models.ContentTypeLink}

	if !NewFilter(All, All, "plain").Matches(item) {
		t.Error("expected title match")
	}
	if NewFilter(All, All, "tag").Matches(item) {
		t.Error("expected no match without hashtags or keywords")
	}
}

func TestMatches_WhitespaceQueryIsNotEmpty(t *testing.T) {
	withSpace := models.ContentItem{Title: "Two Words"}
	noSpace := models.ContentItem{Title: "Oneword"}
	f := NewFilter(All, All, " ")

	if !f.Matches(withSpace) {
		t.Error("expected a space query to match a title containing a space")
	}
	if f.Matches(noSpace) {
		t.Error("expected a space query not to match a title without spaces")
	}
}
