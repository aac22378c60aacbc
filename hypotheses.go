package lunes

import (
	"regexp"
	"strconv"
)

// hint records what a neighbouring token's prefix/suffix-table entry says
// about a chosen specifier: either it's locale-agnostic (locales is an
// empty, non-nil slice) or it names the specific locales that use this
// ordering (a non-empty slice).
type hint struct {
	locales []string
}

// universal reports whether h names no specific locale -- i.e. it matches in
// every locale, and so contributes a flat scoring bonus rather than a
// per-locale one.
func (h *hint) universal() bool {
	return h != nil && len(h.locales) == 0
}

// assignment is one way a single candidate segment could be explained: a
// conversion specifier with a decoded value and the locales that support it
// (spec == 0 means "leave this segment as a literal" instead).
type assignment struct {
	spec       byte
	value      int
	locales    []string // nil: no locale evidence; non-nil: evidence, possibly empty meaning universal
	prefixHint *hint
	suffixHint *hint
	raw        string
	// altDigit marks an assignment decoded from a locale's alternate-digit
	// glyph set (e.g. Devanagari numerals), which must round-trip through the
	// %O modifier rather than a plain conversion specifier.
	altDigit bool
}

var offsetTokenRegex = regexp.MustCompile(`^[+-]\d{4}$`)

// candidateNumericSpecs lists which numeric field specifiers a plain digit
// token of the given value could plausibly fill: century and year accept
// anything, seconds up to 60 (leap second), minutes up to 59, hours up to
// 23, days 1..31, months 1..12.
func candidateNumericSpecs(value int) []byte {
	specs := []byte{byte(SpecCentury), byte(SpecYear)}
	if value > 60 {
		return specs
	}
	specs = append(specs, byte(SpecSecond))
	if value > 59 {
		return specs
	}
	specs = append(specs, byte(SpecMinute))
	if value <= 23 {
		specs = append(specs, byte(SpecHour))
	}
	if value >= 1 && value <= 31 {
		specs = append(specs, byte(SpecDay))
		if value <= 12 {
			specs = append(specs, byte(SpecMonth))
		}
	}
	return specs
}

// findHint looks up the entry for spec among a literal's recorded
// prefix/suffix entries.
func findHint(entries []patternEntry, spec byte) *hint {
	for _, e := range entries {
		if e.spec == spec {
			return &hint{locales: e.locales}
		}
	}
	return nil
}

// generateAssignments enumerates every assignment available for a candidate
// segment. prevToken and nextToken are the neighbouring candidate tokens (not
// the interleaved literal text): separator strings like "-" and ":" are
// themselves matched as candidates by the master regex, so it is the
// neighbouring token, looked up in the prefix/suffix tables, that carries the
// contextual hint. They are used only to compute those hints.
func generateAssignments(ls *LocaleSet, raw, prevToken, nextToken string) []assignment {
	var out []assignment

	prefixEntries := ls.prefixes[fold(prevToken)]
	suffixEntries := ls.suffixes[fold(nextToken)]

	addHints := func(a assignment) assignment {
		a.prefixHint = findHint(prefixEntries, a.spec)
		a.suffixHint = findHint(suffixEntries, a.spec)
		return a
	}

	folded := fold(raw)
	if entries, ok := ls.keywords[folded]; ok {
		for _, e := range entries {
			if e.spec == byte(SpecAltDigit) {
				for _, ns := range []byte(numericSpecifiers) {
					out = append(out, addHints(assignment{spec: ns, value: e.index, locales: e.locales, raw: raw, altDigit: true}))
				}
				continue
			}
			value := e.index
			if e.spec == byte(SpecMonthWrd) {
				// Month name lists are January-first, so ordinal 0 is month 1.
				value = e.index + 1
			}
			out = append(out, addHints(assignment{spec: e.spec, value: value, locales: e.locales, raw: raw}))
		}
	}

	if offsetTokenRegex.MatchString(raw) {
		sign := 1
		if raw[0] == '-' {
			sign = -1
		}
		hh, _ := strconv.Atoi(raw[1:3])
		mm, _ := strconv.Atoi(raw[3:5])
		out = append(out, addHints(assignment{spec: byte(SpecTZOffset), value: sign * (hh*60 + mm), raw: raw}))
	} else if isAllDigits(raw) {
		value, _ := strconv.Atoi(raw)
		for _, spec := range candidateNumericSpecs(value) {
			out = append(out, addHints(assignment{spec: spec, value: value, raw: raw}))
		}
	}

	out = append(out, assignment{spec: 0, raw: raw})
	return out
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
