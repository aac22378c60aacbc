package lunes

import (
	"regexp"
	"sort"
	"strings"
)

// whitespaceRegex collapses any run of whitespace in the input down to a
// single space before segmentation, so that layout differences in spacing
// never change how an otherwise-identical string segments.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Segmenter splits raw input strings into alternating literal and candidate
// segments, using a master regex built from every known keyword, prefix,
// and suffix string plus the two numeric shapes (bare 1-2 digit runs, and
// signed four-digit UTC offsets).
type Segmenter struct {
	compiled *regexp.Regexp
}

// NewSegmenter builds the master regex for the given pattern tables. Pattern
// strings are escaped and ordered longest-first, so that in a regex engine
// without defined leftmost-longest alternation semantics (RE2 included), the
// first alternative to match at a given position is still the longest one
// among all alternatives that could match there.
func NewSegmenter(keywords, prefixes, suffixes patternTable) *Segmenter {
	seen := map[string]struct{}{}
	var strs []string
	collect := func(t patternTable) {
		for k := range t {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				strs = append(strs, k)
			}
		}
	}
	collect(keywords)
	collect(prefixes)
	collect(suffixes)

	sort.Slice(strs, func(i, j int) bool {
		if len(strs[i]) != len(strs[j]) {
			return len(strs[i]) > len(strs[j])
		}
		return strs[i] > strs[j]
	})

	var b strings.Builder
	b.WriteString(`(\d{1,2}|[+-]\d{4}`)
	for _, s := range strs {
		b.WriteString("|")
		b.WriteString(regexp.QuoteMeta(s))
	}
	b.WriteString(")")

	return &Segmenter{compiled: regexp.MustCompile(`(?i)` + b.String())}
}

// Segment tokenizes s into alternating literal and candidate segments.
// The returned slice always has odd length: literal, candidate, literal,
// candidate, ..., literal (possibly empty strings at either end). An empty
// input, or an input with no candidate tokens, returns nil.
func (sg *Segmenter) Segment(s string) []string {
	s = whitespaceRegex.ReplaceAllString(s, " ")
	if s == "" {
		return nil
	}

	parts := sg.compiled.Split(s, -1)
	matches := sg.compiled.FindAllString(s, -1)
	if len(matches) == 0 {
		return nil
	}

	segments := make([]string, 0, len(parts)+len(matches))
	for i, p := range parts {
		segments = append(segments, p)
		if i < len(matches) {
			segments = append(segments, matches[i])
		}
	}
	return segments
}
