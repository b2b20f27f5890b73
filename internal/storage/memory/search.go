package memory

import (
	"sort"
	"strings"
	"unicode"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/pkg/model"
)

// search keeps items where any query term appears as a word in one of the
// stage paths, ordered by the number of matching terms (highest first).
func search(items []model.ContentItem, st listing.SearchStage) []model.ContentItem {
	terms := tokenize(st.Query)
	if len(terms) == 0 {
		return items[:0]
	}

	type scored struct {
		item  model.ContentItem
		score int
	}
	var hits []scored
	for _, c := range items {
		words := make(map[string]bool)
		for _, path := range st.Paths {
			for _, w := range tokenize(fieldText(c, path)) {
				words[w] = true
			}
		}
		score := 0
		for _, t := range terms {
			if words[t] {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{item: c, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := items[:0]
	for _, h := range hits {
		out = append(out, h.item)
	}
	return out
}

func fieldText(c model.ContentItem, path string) string {
	switch path {
	case model.FieldTitle:
		return c.Title
	case model.FieldDescription:
		return c.Description
	default:
		return ""
	}
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
