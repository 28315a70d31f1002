// Package search provides stateless content search over a
// caller-supplied document corpus.
//
// Every call scans the entries it is given; no index is built or
// retained between calls. Matching is case-insensitive in both exact
// and fuzzy mode, and reported spans are byte offsets into the
// lowercased content.
package search

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// Entry is one searchable document.
type Entry struct {
	// Path identifies the document.
	Path string `json:"path"`

	// Content is the text to scan.
	Content string `json:"content"`
}

// Span is a half-open [start, end) byte range in the lowercased content.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Match is one scored document in a search result.
type Match struct {
	Path      string  `json:"filePath"`
	Score     float64 `json:"score"`
	Positions []Span  `json:"positions"`
}

// Result is the outcome of one search call. TotalMatches counts
// matching documents, not individual spans.
type Result struct {
	Matches      []Match `json:"matches"`
	Query        string  `json:"query"`
	TotalMatches int     `json:"totalMatches"`
}

// Search scans every entry for the query and returns the matching
// documents scored and sorted by score descending, ties by path
// ascending. Documents without a single match are excluded. An empty
// query matches nothing.
func Search(query string, entries []Entry, fuzzy bool) Result {
	result := Result{Matches: []Match{}, Query: query}
	if query == "" {
		return result
	}

	needle := strings.ToLower(query)
	for _, entry := range entries {
		content := strings.ToLower(entry.Content)

		var spans []Span
		if fuzzy {
			spans = fuzzySpans(needle, content)
		} else {
			spans = exactSpans(needle, content)
		}
		if len(spans) == 0 {
			continue
		}

		result.Matches = append(result.Matches, Match{
			Path:      entry.Path,
			Score:     scoreEntry(spans, len(content)),
			Positions: spans,
		})
	}

	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Score != result.Matches[j].Score {
			return result.Matches[i].Score > result.Matches[j].Score
		}
		return result.Matches[i].Path < result.Matches[j].Path
	})
	result.TotalMatches = len(result.Matches)
	return result
}

// exactSpans scans left to right. The cursor advances one byte past
// each match start, so self-overlapping queries report overlapping
// spans ("aa" over "aaa" yields both {0,2} and {1,3}).
func exactSpans(needle, content string) []Span {
	var spans []Span
	cursor := 0
	for cursor <= len(content)-len(needle) {
		offset := strings.Index(content[cursor:], needle)
		if offset < 0 {
			break
		}
		start := cursor + offset
		spans = append(spans, Span{Start: start, End: start + len(needle)})
		cursor = start + 1
	}
	return spans
}

// fuzzySpans reports a single whole-content span when every query rune
// appears in order in the content, nothing otherwise. The span marks
// membership for ranking, not a highlight region.
func fuzzySpans(needle, content string) []Span {
	rest := content
	for _, r := range needle {
		idx := strings.IndexRune(rest, r)
		if idx < 0 {
			return nil
		}
		rest = rest[idx+utf8.RuneLen(r):]
	}
	return []Span{{Start: 0, End: len(content)}}
}

// scoreEntry scores a document from its match spans. Match count
// contributes up to 0.7 above the 0.3 floor; matches near the start of
// the content add up to a further 0.3. Scores cap at 1.0.
func scoreEntry(spans []Span, contentLen int) float64 {
	frequency := math.Min(float64(len(spans))*0.1, 0.7)

	positionBoost := 0.0
	if contentLen > 0 {
		total := 0.0
		for _, span := range spans {
			boost := 1.0 - float64(span.Start)/float64(contentLen)
			if boost < 0 {
				boost = 0
			}
			total += boost
		}
		positionBoost = total / float64(len(spans))
	}

	return math.Min(0.3+frequency+positionBoost*0.3, 1.0)
}
