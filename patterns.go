package lunes

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// fold case-folds a string the way every corpus key, segmenter token, and
// lookup key in this package is normalized before use. golang.org/x/text/cases
// gives correct Unicode case folding (e.g. German ß, Turkish dotless i)
// that strings.ToLower does not attempt. A cases.Caser is stateful and not
// safe for concurrent use, so one is made per call rather than shared; Parse
// must stay callable from multiple goroutines at once.
func fold(s string) string {
	return cases.Fold().String(s)
}

// ignorableClass is the character class that may surround a conversion
// specifier without carrying any semantic weight: whitespace, RTL markers,
// parens, the dot, and the wide family of Unicode comma variants. Matched
// occurrences of these characters immediately touching a %-specifier are
// dropped entirely, not attached to the neighbouring literal.
const ignorableClass = `[\s` +
	"‫‬" +
	`().` +
	",·՝،߸፣᠂᠈⹁⹌、꓾꘍꛵，" +
	`]*`

// fmtTokenRegex recognizes a single strftime-style conversion specifier,
// with its surrounding ignorable run, inside a sample format string. Group 1
// captures the final conversion letter, after any flag/width/E-or-O
// modifier.
var fmtTokenRegex = regexp.MustCompile(ignorableClass + `%[-_0^#]?\d*[EO]?([a-zA-Z+%])` + ignorableClass)

// splitFmtTokens walks v and returns the literal text between specifiers,
// and the folded specifier byte for each specifier found, such that
// len(literals) == len(specs)+1 and literals[i] lexically precedes specs[i]
// (which precedes literals[i+1]). Whatever else a match consumed (the
// ignorable runs around the specifier) is discarded entirely.
func splitFmtTokens(v string) (literals []string, specs []byte) {
	matches := fmtTokenRegex.FindAllStringSubmatchIndex(v, -1)
	if len(matches) == 0 {
		return []string{v}, nil
	}

	pos := 0
	for _, m := range matches {
		fullStart, fullEnd, gStart, gEnd := m[0], m[1], m[2], m[3]
		literals = append(literals, v[pos:fullStart])
		if gStart >= 0 {
			specs = append(specs, foldSpecifier(v[gStart:gEnd][0]))
		} else {
			specs = append(specs, 0)
		}
		pos = fullEnd
	}
	literals = append(literals, v[pos:])
	return literals, specs
}

// patternEntry is one (specifier, ordinal, locale set) fact recorded against
// a case-folded literal string. index is only meaningful for keyword
// entries (weekday/month/am-pm/alt-digit): it is the position the word held
// in its locale's ordered name list, which is what lets the same spelling
// decode to different values in different locales ("Ahad" is Sunday in
// ms_MY but Wednesday in kab_DZ). index is -1 for prefix/suffix/timezone
// entries, which never need to disambiguate an ordinal.
type patternEntry struct {
	spec    byte
	index   int
	locales []string
}

// patternTable maps a case-folded literal to the (possibly several)
// specifiers/ordinals it can denote, each with the locales in which that
// denotation holds.
type patternTable map[string][]patternEntry

func (t patternTable) add(interner *LocaleSetInterner, key string, spec byte, locales []string) {
	t.addIndexed(interner, key, spec, -1, locales)
}

func (t patternTable) addIndexed(interner *LocaleSetInterner, key string, spec byte, index int, locales []string) {
	key = fold(key)
	if key == "" {
		return
	}
	entries := t[key]
	for i := range entries {
		if entries[i].spec == spec && entries[i].index == index {
			merged := append(append([]string{}, entries[i].locales...), locales...)
			entries[i].locales = interner.Intern(merged)
			t[key] = entries
			return
		}
	}
	t[key] = append(entries, patternEntry{spec: spec, index: index, locales: interner.Intern(locales)})
}

func (t patternTable) setLocales(interner *LocaleSetInterner, key string, spec byte, index int, locales []string) {
	key = fold(key)
	entries := t[key]
	for i := range entries {
		if entries[i].spec == spec && entries[i].index == index {
			entries[i].locales = interner.Intern(locales)
			t[key] = entries
			return
		}
	}
	t[key] = append(entries, patternEntry{spec: spec, index: index, locales: interner.Intern(locales)})
}

// globalPrefixes and globalSuffixes are patterns common to enough locales
// that they carry no locale-distinguishing power; they are recorded with an
// empty (universal) locale set for every LocaleSet built by this package.
var globalPrefixes = []struct {
	text  string
	specs string
}{
	{":", "MS"},
	{"/", "Cymd"},
	{"-", "Cymd"},
	{"utc", "z"},
	{"t", "H"},
}

var globalSuffixes = []struct {
	text  string
	specs string
}{
	{":", "HM"},
	{"/", "ymd"},
	{"-", "ymd"},
	{"t", "d"},
}

// mergePatterns lists the keyword-string groups whose locale sets must be
// unioned after extraction, because they denote the same field/ordinal
// under different spellings (e.g. "am" and "a.m." both mean am-pm index 0).
var mergePatterns = []struct {
	spec  byte
	index int
	words []string
}{
	{byte(SpecAMPM), 0, []string{"am", "a.m."}},
	{byte(SpecAMPM), 1, []string{"pm", "p.m."}},
}

// buildKeywords populates the keywords table from day/mon/am_pm/alt_digits
// and the timezone provider.
func buildKeywords(interner *LocaleSetInterner, c *Corpus, tz TimezoneProvider) patternTable {
	kw := patternTable{}

	addKeywordField(interner, kw, c.Day, byte(SpecWeekday))
	addKeywordField(interner, kw, c.Mon, byte(SpecMonthWrd))
	addKeywordField(interner, kw, c.AmPm, byte(SpecAMPM))
	addKeywordField(interner, kw, c.AltDigits, byte(SpecAltDigit))

	for _, m := range mergePatterns {
		merged := map[string]struct{}{}
		for _, w := range m.words {
			for _, loc := range lookupLocalesFor(kw, fold(w), m.spec, m.index) {
				merged[loc] = struct{}{}
			}
		}
		mergedSlice := make([]string, 0, len(merged))
		for loc := range merged {
			mergedSlice = append(mergedSlice, loc)
		}
		for _, w := range m.words {
			kw.setLocales(interner, w, m.spec, m.index, mergedSlice)
		}
	}

	if tz != nil {
		for _, zone := range tz.Zones() {
			for _, name := range tz.ShortNames(zone) {
				if name == "" || name[0] == '+' || name[0] == '-' {
					continue
				}
				kw.add(interner, name, byte(SpecTZName), nil)
			}
		}
	}

	return kw
}

func addKeywordField(interner *LocaleSetInterner, kw patternTable, field map[string][]string, spec byte) {
	for value, locales := range field {
		words := strings.Split(value, ";")
		for idx, word := range words {
			word = strings.TrimSpace(word)
			if word == "" {
				continue
			}
			kw.addIndexed(interner, word, spec, idx, locales)
		}
	}
}

func lookupLocalesFor(kw patternTable, key string, spec byte, index int) []string {
	for _, e := range kw[key] {
		if e.spec == spec && e.index == index {
			return e.locales
		}
	}
	return nil
}

// buildPrefixesSuffixes walks every sample format string and records the
// literal immediately before (prefix) and after (suffix) each numeric
// conversion specifier, then layers in the fixed global patterns.
func buildPrefixesSuffixes(interner *LocaleSetInterner, c *Corpus) (prefixes, suffixes patternTable) {
	prefixes = patternTable{}
	suffixes = patternTable{}

	// TODO: extract patterns from era definitions (Corpus.Era).

	for v, locales := range c.Formats {
		literals, specs := splitFmtTokens(v)
		if len(specs) == 0 {
			continue
		}
		prefix := literals[0]
		for i, spec := range specs {
			suffix := literals[i+1]
			// Weekday, month, and am/pm names are recognized by the word
			// itself, not by surrounding context; both cases of each letter
			// count (%A/%B are the wide variants of %a/%b).
			if low := spec | 0x20; low != 'a' && low != 'b' && low != 'p' {
				if prefix != "" {
					prefixes.add(interner, prefix, spec, locales)
				}
				if suffix != "" {
					suffixes.add(interner, suffix, spec, locales)
				}
			}
			prefix = suffix
		}
	}

	// Global patterns replace whatever corpus-derived entries exist for the
	// same literal: a separator this common carries no locale-distinguishing
	// power, so keeping a narrower per-locale entry beside the universal one
	// would just penalize locales whose corpus happened not to sample it.
	for _, g := range globalPrefixes {
		prefixes[fold(g.text)] = universalEntries(interner, g.specs)
	}
	for _, g := range globalSuffixes {
		suffixes[fold(g.text)] = universalEntries(interner, g.specs)
	}

	return prefixes, suffixes
}

func universalEntries(interner *LocaleSetInterner, specs string) []patternEntry {
	entries := make([]patternEntry, 0, len(specs))
	for i := 0; i < len(specs); i++ {
		entries = append(entries, patternEntry{spec: specs[i], index: -1, locales: interner.Intern(nil)})
	}
	return entries
}
