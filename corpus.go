package lunes

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-playground/locales"
)

// Corpus is structured information about how a set of locales express dates
// and times: the raw material NewLocaleSet compiles its lookup tables from.
// Every field is a mapping from a string (semicolon-separated, for every
// field but Formats) to the set of locale identifiers that use it.
type Corpus struct {
	// Formats holds sample strftime-style format strings, used to extract
	// prefix/suffix context.
	Formats map[string][]string `json:"formats"`
	// Day holds ";"-joined, Sunday-first weekday name lists.
	Day map[string][]string `json:"day"`
	// Mon holds ";"-joined, January-first month name lists.
	Mon map[string][]string `json:"mon"`
	// AmPm holds "am-text;pm-text" pairs.
	AmPm map[string][]string `json:"am_pm"`
	// AltDigits holds ";"-joined non-Unicode-digit numeral lists.
	AltDigits map[string][]string `json:"alt_digits"`
	// Era holds opaque era definitions. Carried but not interpreted.
	Era map[string][]string `json:"era"`
}

// ErrMalformedCorpus indicates that a corpus document failed to decode, or
// decoded into a structurally invalid shape.
type ErrMalformedCorpus struct {
	Reason string
}

func (e *ErrMalformedCorpus) Error() string {
	return fmt.Sprintf("malformed locale corpus: %s", e.Reason)
}

func (e *ErrMalformedCorpus) Is(err error) bool {
	var target *ErrMalformedCorpus
	if ok := errors.As(err, &target); ok {
		return e.Reason == target.Reason
	}
	return false
}

func newCorpus() *Corpus {
	return &Corpus{
		Formats:   map[string][]string{},
		Day:       map[string][]string{},
		Mon:       map[string][]string{},
		AmPm:      map[string][]string{},
		AltDigits: map[string][]string{},
		Era:       map[string][]string{},
	}
}

// LoadCorpusJSON decodes a locale corpus document from r. Any of the six
// top-level keys may be absent; absent keys default to empty. Unknown keys
// are ignored.
func LoadCorpusJSON(r io.Reader) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrMalformedCorpus{Reason: err.Error()}
	}

	c := newCorpus()
	if len(strings.TrimSpace(string(data))) == 0 {
		return c, nil
	}

	if err := json.Unmarshal(data, c); err != nil {
		return nil, &ErrMalformedCorpus{Reason: err.Error()}
	}
	if c.Formats == nil {
		c.Formats = map[string][]string{}
	}
	if c.Day == nil {
		c.Day = map[string][]string{}
	}
	if c.Mon == nil {
		c.Mon = map[string][]string{}
	}
	if c.AmPm == nil {
		c.AmPm = map[string][]string{}
	}
	if c.AltDigits == nil {
		c.AltDigits = map[string][]string{}
	}
	if c.Era == nil {
		c.Era = map[string][]string{}
	}
	return c, nil
}

// LoadCorpusFromTranslators builds a Corpus from a set of go-playground/locales
// translators. Each translator contributes both its wide and abbreviated day
// and month name lists. Translators never expose am/pm or era facts through
// the public locales.Translator interface, so those fields are left empty
// for every locale contributed this way.
func LoadCorpusFromTranslators(ts ...locales.Translator) *Corpus {
	c := newCorpus()
	for _, t := range ts {
		loc := t.Locale()

		addCorpusNames(c.Day, t.WeekdaysWide(), loc)
		addCorpusNames(c.Day, t.WeekdaysAbbreviated(), loc)
		addCorpusNames(c.Mon, t.MonthsWide(), loc)
		addCorpusNames(c.Mon, t.MonthsAbbreviated(), loc)
	}
	return c
}

func addCorpusNames(dst map[string][]string, names []string, locale string) {
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			// Some translators reserve index 0 of their months slice; a list
			// containing a blank name is skipped whole rather than recorded
			// as a degenerate key.
			return
		}
	}
	key := strings.Join(names, ";")
	if key == "" {
		return
	}
	dst[key] = append(dst[key], locale)
}

// MergeCorpus unions src's locale lists into dst, field by field and key by
// key, mutating dst in place.
func MergeCorpus(dst, src *Corpus) {
	mergeCorpusMap(dst.Formats, src.Formats)
	mergeCorpusMap(dst.Day, src.Day)
	mergeCorpusMap(dst.Mon, src.Mon)
	mergeCorpusMap(dst.AmPm, src.AmPm)
	mergeCorpusMap(dst.AltDigits, src.AltDigits)
	mergeCorpusMap(dst.Era, src.Era)
}

func mergeCorpusMap(dst, src map[string][]string) {
	for k, v := range src {
		dst[k] = append(dst[k], v...)
	}
}

// TimezoneProvider supplies the set of short (non-offset) names ever used by
// a timezone. Callers with richer timezone databases can substitute their
// own; this package ships one stdlib-backed convenience implementation.
type TimezoneProvider interface {
	// Zones lists every timezone identifier this provider knows about.
	Zones() []string
	// ShortNames returns every short name (e.g. "PST", "PDT") a zone has
	// ever used. Offset-shaped names (starting with '+' or '-') need not be
	// filtered by implementations; callers of this interface do that.
	ShortNames(zone string) []string
}

// stdTimezoneProvider is a convenience TimezoneProvider backed by the
// standard library's IANA timezone database. It exists so DefaultLocaleSet
// works out of the box without requiring every caller to supply their own
// provider.
type stdTimezoneProvider struct {
	zones []string
}

// sampleYears is deliberately small: enough to observe both sides of most
// DST transitions without the cost of scanning every year a zone has
// existed.
var sampleYears = []int{1975, 2000, 2020}

func newStdTimezoneProvider(zones []string) TimezoneProvider {
	return &stdTimezoneProvider{zones: zones}
}

func (p *stdTimezoneProvider) Zones() []string {
	out := make([]string, len(p.zones))
	copy(out, p.zones)
	return out
}

func (p *stdTimezoneProvider) ShortNames(zone string) []string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil
	}

	seen := map[string]struct{}{}
	var out []string
	record := func(t time.Time) {
		name, _ := t.In(loc).Zone()
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, year := range sampleYears {
		for month := 1; month <= 12; month++ {
			record(time.Date(year, time.Month(month), 1, 12, 0, 0, 0, time.UTC))
		}
	}
	return out
}

// commonZones is a representative slice of IANA zone identifiers. pytz
// ships the full olson database; this list covers the same spirit (broad
// geographic and DST-rule coverage) without requiring this package to bundle
// or parse the zoneinfo database itself.
var commonZones = []string{
	"UTC", "America/New_York", "America/Chicago", "America/Denver",
	"America/Los_Angeles", "America/Anchorage", "America/Sao_Paulo",
	"Europe/London", "Europe/Paris", "Europe/Berlin", "Europe/Moscow",
	"Europe/Madrid", "Asia/Tokyo", "Asia/Shanghai", "Asia/Kolkata",
	"Asia/Dubai", "Asia/Jakarta", "Australia/Sydney", "Australia/Perth",
	"Pacific/Auckland", "Africa/Johannesburg", "Africa/Cairo",
}

// DefaultTimezoneProvider returns the convenience stdlib-backed
// TimezoneProvider used by DefaultLocaleSet.
func DefaultTimezoneProvider() TimezoneProvider {
	return newStdTimezoneProvider(commonZones)
}
