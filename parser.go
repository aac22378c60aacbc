package lunes

// LocaleSet is a compiled view of a Corpus: every weekday/month/am-pm/
// alt-digit word, sample-format prefix/suffix, and timezone short name,
// indexed for fast lookup by a Segmenter and by generateAssignments. Building
// one is the expensive, one-time step; a LocaleSet is immutable once built
// and safe to share across goroutines and across many Parser.Parse calls.
type LocaleSet struct {
	keywords patternTable
	prefixes patternTable
	suffixes patternTable
}

// NewLocaleSet compiles a LocaleSet from a corpus and a timezone provider. A
// nil tz omits timezone-name keywords entirely (offsets like -0700 are still
// recognized, since those come from the input's own shape, not the corpus).
func NewLocaleSet(c *Corpus, tz TimezoneProvider) (*LocaleSet, error) {
	if c == nil {
		return nil, &ErrMalformedCorpus{Reason: "nil corpus"}
	}
	interner := NewLocaleSetInterner()
	keywords := buildKeywords(interner, c, tz)
	prefixes, suffixes := buildPrefixesSuffixes(interner, c)
	return &LocaleSet{keywords: keywords, prefixes: prefixes, suffixes: suffixes}, nil
}

// DefaultLocaleSet builds a LocaleSet from the corpus bundled with this
// package (corpus_default.go) and DefaultTimezoneProvider, so that most
// callers never need to source or load their own corpus document.
func DefaultLocaleSet() (*LocaleSet, error) {
	return NewLocaleSet(defaultCorpus(), DefaultTimezoneProvider())
}

// Parser guesses strftime-style formats for input strings, against a fixed
// LocaleSet. A Parser is immutable once built and safe for concurrent use by
// multiple goroutines.
type Parser struct {
	ls  *LocaleSet
	seg *Segmenter
}

// NewParser compiles a Parser's Segmenter from ls. ls is retained, not
// copied, so mutating the Corpus used to build it after the fact has no
// effect on this Parser.
func NewParser(ls *LocaleSet) (*Parser, error) {
	if ls == nil {
		return nil, &ErrMalformedCorpus{Reason: "nil locale set"}
	}
	return &Parser{ls: ls, seg: NewSegmenter(ls.keywords, ls.prefixes, ls.suffixes)}, nil
}

// NewDefaultParser builds a Parser over DefaultLocaleSet, for callers that
// don't need a custom corpus.
func NewDefaultParser() (*Parser, error) {
	ls, err := DefaultLocaleSet()
	if err != nil {
		return nil, err
	}
	return NewParser(ls)
}

// Parse guesses every maximal-scoring strftime-style format for input,
// segmenting it against p's LocaleSet, enumerating every plausible per-field
// assignment, and searching for the best-scoring complete assignments. It
// returns nil if the Segmenter finds no candidate token in input. A candidate
// token that fits no field (such as a bare separator) still yields a
// Candidate whose Format is the input text and whose decoded fields are nil.
func (p *Parser) Parse(input string) []Candidate {
	segments := p.seg.Segment(input)
	if segments == nil {
		return nil
	}

	numPos := (len(segments) - 1) / 2
	optionsPerPos := make([][]assignment, numPos)
	for i := 0; i < numPos; i++ {
		raw := segments[2*i+1]
		var prevToken, nextToken string
		if i > 0 {
			prevToken = segments[2*i-1]
		}
		if i < numPos-1 {
			nextToken = segments[2*i+3]
		}
		optionsPerPos[i] = generateAssignments(p.ls, raw, prevToken, nextToken)
	}

	results := solve(optionsPerPos)
	return assembleCandidates(segments, results)
}
