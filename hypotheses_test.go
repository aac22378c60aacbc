package lunes

import (
	"testing"
)

func TestCandidateNumericSpecsRanges(t *testing.T) {
	cases := []struct {
		value int
		want  string // specifier bytes, in the fixed emission order
	}{
		{5, "CySMHdm"},  // every field reachable
		{13, "CySMHd"},  // too big for a month, still a valid day/hour
		{31, "CySMd"},   // a valid day, but too big for an hour or month
		{45, "CySM"},    // only century/year/second/minute reachable
		{59, "CySM"},
		{60, "CyS"},
		{99, "Cy"},
	}
	for _, c := range cases {
		got := string(candidateNumericSpecs(c.value))
		if got != c.want {
			t.Errorf("candidateNumericSpecs(%d) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestGenerateAssignmentsPlainDigitsIncludesLiteralFallback(t *testing.T) {
	ls := &LocaleSet{keywords: patternTable{}, prefixes: patternTable{}, suffixes: patternTable{}}
	out := generateAssignments(ls, "05", "", "")

	foundLiteral := false
	for _, a := range out {
		if a.spec == 0 {
			foundLiteral = true
		}
	}
	if !foundLiteral {
		t.Errorf("generateAssignments(%q) = %v, missing the literal (spec==0) fallback", "05", out)
	}
}

func TestGenerateAssignmentsSignedOffset(t *testing.T) {
	ls := &LocaleSet{keywords: patternTable{}, prefixes: patternTable{}, suffixes: patternTable{}}

	out := generateAssignments(ls, "-0700", "", "")
	var offset *assignment
	for i := range out {
		if out[i].spec == byte(SpecTZOffset) {
			offset = &out[i]
		}
	}
	if offset == nil {
		t.Fatalf("generateAssignments(%q) has no %%z assignment: %v", "-0700", out)
	}
	if offset.value != -(7*60 + 0) {
		t.Errorf("offset value = %d, want %d", offset.value, -(7 * 60))
	}

	// A signed offset token must not also be treated as a bare digit run.
	for _, a := range out {
		if a.spec != 0 && a.spec != byte(SpecTZOffset) {
			t.Errorf("unexpected non-offset numeric assignment for a signed token: %+v", a)
		}
	}
}

func TestGenerateAssignmentsKeywordMatch(t *testing.T) {
	interner := NewLocaleSetInterner()
	kw := patternTable{}
	kw.addIndexed(interner, "jan", byte(SpecMonthWrd), 0, []string{"en_US"})
	ls := &LocaleSet{keywords: kw, prefixes: patternTable{}, suffixes: patternTable{}}

	out := generateAssignments(ls, "Jan", "", "")
	var found *assignment
	for i := range out {
		if out[i].spec == byte(SpecMonthWrd) {
			found = &out[i]
		}
	}
	if found == nil {
		t.Fatalf("generateAssignments(%q) missing the %%b assignment: %v", "Jan", out)
	}
	if found.value != 1 {
		t.Errorf("value = %d, want 1 (January decodes to month 1)", found.value)
	}
	if len(found.locales) != 1 || found.locales[0] != "en_US" {
		t.Errorf("locales = %v, want [en_US]", found.locales)
	}
}

func TestGenerateAssignmentsAltDigitExpandsToEveryNumericSpecifier(t *testing.T) {
	interner := NewLocaleSetInterner()
	kw := patternTable{}
	kw.addIndexed(interner, "٥", byte(SpecAltDigit), 5, []string{"ar_EG"})
	ls := &LocaleSet{keywords: kw, prefixes: patternTable{}, suffixes: patternTable{}}

	out := generateAssignments(ls, "٥", "", "")
	seen := map[byte]bool{}
	for _, a := range out {
		if a.altDigit {
			seen[a.spec] = true
			if a.value != 5 {
				t.Errorf("alt-digit assignment value = %d, want 5", a.value)
			}
		}
	}
	for _, want := range []byte(numericSpecifiers) {
		if !seen[want] {
			t.Errorf("missing alt-digit assignment for specifier %q", string(want))
		}
	}
}

func TestGenerateAssignmentsAppliesPrefixAndSuffixHints(t *testing.T) {
	interner := NewLocaleSetInterner()
	prefixes := patternTable{}
	prefixes.add(interner, "-", byte(SpecYear), []string{"en_US"})
	suffixes := patternTable{}
	suffixes.add(interner, "-", byte(SpecYear), nil)
	ls := &LocaleSet{keywords: patternTable{}, prefixes: prefixes, suffixes: suffixes}

	out := generateAssignments(ls, "18", "-", "-")
	var year *assignment
	for i := range out {
		if out[i].spec == byte(SpecYear) {
			year = &out[i]
		}
	}
	if year == nil {
		t.Fatalf("generateAssignments(%q) missing %%y: %v", "18", out)
	}
	if year.prefixHint == nil || len(year.prefixHint.locales) != 1 || year.prefixHint.locales[0] != "en_US" {
		t.Errorf("prefixHint = %+v, want [en_US]", year.prefixHint)
	}
	if year.suffixHint == nil || !year.suffixHint.universal() {
		t.Errorf("suffixHint = %+v, want a universal hint", year.suffixHint)
	}
}

func TestIsAllDigits(t *testing.T) {
	cases := map[string]bool{
		"":     false,
		"5":    true,
		"05":   true,
		"-05":  false,
		"5a":   false,
		"  5":  false,
	}
	for in, want := range cases {
		if got := isAllDigits(in); got != want {
			t.Errorf("isAllDigits(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFindHintReturnsNilWhenAbsent(t *testing.T) {
	if h := findHint(nil, byte(SpecYear)); h != nil {
		t.Errorf("findHint(nil, ...) = %v, want nil", h)
	}
	entries := []patternEntry{{spec: byte(SpecMonth), index: -1, locales: nil}}
	if h := findHint(entries, byte(SpecYear)); h != nil {
		t.Errorf("findHint(...) = %v, want nil for a non-matching specifier", h)
	}
	if h := findHint(entries, byte(SpecMonth)); h == nil {
		t.Errorf("findHint(...) = nil, want a hint for the matching specifier")
	}
}
