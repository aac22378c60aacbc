package lunes

import (
	"reflect"
	"testing"
)

func TestSegmenterSplitsLiteralAndCandidates(t *testing.T) {
	kw := patternTable{}
	interner := NewLocaleSetInterner()
	kw.add(interner, "jan", byte(SpecMonthWrd), nil)
	_, suffixes := buildPrefixesSuffixes(interner, newCorpus())

	sg := NewSegmenter(kw, patternTable{}, suffixes)
	got := sg.Segment("2018-Jan-09")

	// The segmenter only recognizes 1-2 digit runs, so the four-digit year
	// splits into adjacent century/year candidates; the search engine is
	// what later reunites them into %C%y -> %Y. The "-" separators are global
	// suffix strings, so they are candidate tokens too, not literals.
	want := []string{"", "20", "", "18", "", "-", "", "Jan", "", "-", "", "09", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment(...) = %#v, want %#v", got, want)
	}
}

func TestSegmenterCollapsesWhitespace(t *testing.T) {
	sg := NewSegmenter(patternTable{}, patternTable{}, patternTable{})
	got := sg.Segment("21   04")
	want := []string{"", "21", " ", "04", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment(...) = %#v, want %#v", got, want)
	}
}

func TestSegmenterEmptyInputReturnsNil(t *testing.T) {
	sg := NewSegmenter(patternTable{}, patternTable{}, patternTable{})
	if got := sg.Segment(""); got != nil {
		t.Errorf("Segment(\"\") = %#v, want nil", got)
	}
	if got := sg.Segment("no digits or keywords here"); got != nil {
		t.Errorf("Segment(...) = %#v, want nil", got)
	}
}

func TestSegmenterLongestMatchWins(t *testing.T) {
	// "utc" is a global prefix and "t" is also a global prefix/suffix; the
	// master regex must prefer the 3-letter match over the 1-letter one.
	interner := NewLocaleSetInterner()
	prefixes, _ := buildPrefixesSuffixes(interner, newCorpus())
	sg := NewSegmenter(patternTable{}, prefixes, patternTable{})

	got := sg.Segment("utc21")
	want := []string{"", "utc", "", "21", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment(...) = %#v, want %#v", got, want)
	}
}
