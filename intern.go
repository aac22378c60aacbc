package lunes

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Intern is a deduplicating cache: the first call with a given value stores
// it and returns it back; every later call with an equal value returns the
// exact instance stored the first time. It is used for locale identifiers
// and for sorted tuples of them, so that equal locale sets end up sharing
// storage and can later be compared cheaply.
type Intern[T comparable] struct {
	values map[T]T
}

// NewIntern creates an empty intern table.
func NewIntern[T comparable]() *Intern[T] {
	return &Intern[T]{values: make(map[T]T)}
}

// Get returns the canonical stored instance equal to v, storing v itself if
// this is the first time an equal value has been seen.
func (t *Intern[T]) Get(v T) T {
	if existing, ok := t.values[v]; ok {
		return existing
	}
	t.values[v] = v
	return v
}

// LocaleSetInterner deduplicates sets of locale identifiers. Locale
// identifier strings are interned individually via strings; the sorted tuple
// of a given set is keyed by its joined form in tuples (identifiers are
// never allowed to contain the join separator, so the join is unambiguous),
// which maps that key to the canonical []string handed back for every equal
// set.
type LocaleSetInterner struct {
	strings *Intern[string]
	// tuples maps the joined key of an already-seen, sorted locale set to
	// the exact []string returned the first time that set was interned, so
	// later calls with an equal set hand back the same backing array instead
	// of allocating a new one.
	tuples map[string][]string
}

// NewLocaleSetInterner constructs an empty interner.
func NewLocaleSetInterner() *LocaleSetInterner {
	return &LocaleSetInterner{
		strings: NewIntern[string](),
		tuples:  make(map[string][]string),
	}
}

const localeJoinSep = "\x00"

// Intern sorts, deduplicates, and interns a set of locale identifiers,
// returning a canonical, shared []string. A nil or empty input interns to an
// empty (non-nil) slice representing "matches any locale."
func (in *LocaleSetInterner) Intern(locales []string) []string {
	if len(locales) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(locales))
	out := make([]string, 0, len(locales))
	for _, l := range locales {
		l = in.strings.Get(l)
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sortLocales(out)

	key := strings.Join(out, localeJoinSep)
	if existing, ok := in.tuples[key]; ok {
		return existing
	}
	in.tuples[key] = out
	return out
}

// sortLocales orders locale identifiers for stable, deterministic output.
// Identifiers that parse as BCP 47-ish tags (after normalizing the glibc-
// style "en_US" underscore separator to a hyphen) sort by language then
// region, purely as a display nicety; unparseable identifiers fall back to a
// plain byte-wise comparison. The identifiers themselves are never rewritten
// -- only the sort key is derived from the parse.
func sortLocales(locales []string) {
	sort.Slice(locales, func(i, j int) bool {
		ti, oki := localeSortKey(locales[i])
		tj, okj := localeSortKey(locales[j])
		if oki && okj && ti != tj {
			return ti < tj
		}
		return locales[i] < locales[j]
	})
}

func localeSortKey(locale string) (string, bool) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}
