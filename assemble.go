package lunes

import (
	"strings"

	"github.com/go-chrono/chrono"
)

// Candidate is one guessed format string together with the value it decodes
// the input to, and the locales (if any) under which that decoding holds.
type Candidate struct {
	// Format is a strftime-style pattern that reproduces the matched
	// segments of the input when every %-specifier is substituted back in.
	Format string
	// Date holds a decoded value when the input carried date fields but no
	// time fields.
	Date *chrono.LocalDate
	// Time holds a decoded value when the input carried time fields but no
	// date fields.
	Time *chrono.LocalTime
	// DateTime holds a decoded value when the input carried both.
	DateTime *chrono.LocalDateTime
	// Offset holds a decoded UTC offset when a %z field was assigned,
	// independent of whether Date/Time/DateTime is also set.
	Offset *chrono.Offset
	// LeapSecond reports whether the matched seconds field was 60. chrono's
	// LocalTime has no representation for a leap second (it panics above 59,
	// see makeTime), so Time/DateTime are built with second 59 in this case
	// and the true value is recovered here instead.
	LeapSecond bool
	// Locales lists the locale identifiers consistent with this candidate.
	// Nil means every locale is consistent with it.
	Locales []string
}

// assembleCandidates turns the search engine's raw results back into
// Candidate values: splicing chosen specifiers into the literal skeleton
// produced by the Segmenter, collapsing %C%y into %Y, and decoding the
// matched fields into chrono values.
func assembleCandidates(segments []string, results []searchResult) []Candidate {
	if len(segments) == 0 {
		return nil
	}
	numPos := (len(segments) - 1) / 2

	out := make([]Candidate, 0, len(results))
	for _, r := range results {
		byPos := map[int]chosenEntry{}
		byCat := map[Specifier]assignment{}
		for _, e := range r.entries {
			byPos[e.pos] = e
			byCat[e.cat] = e.a
		}

		var sb strings.Builder
		sb.WriteString(segments[0])
		for i := 0; i < numPos; i++ {
			if e, ok := byPos[i]; ok {
				sb.WriteByte('%')
				if e.a.altDigit {
					sb.WriteByte('O')
				}
				sb.WriteByte(e.a.spec)
			} else {
				sb.WriteString(segments[2*i+1])
			}
			sb.WriteString(segments[2*i+2])
		}
		format := strings.ReplaceAll(sb.String(), "%C%y", "%Y")

		c := Candidate{Format: format, Locales: r.locales}

		_, hasHour := byCat[SpecHour]
		hasTime := hasHour

		var datePtr *chrono.LocalDate
		var timePtr *chrono.LocalTime

		if r.hasDate {
			month := byCat[SpecMonth].value
			day := byCat[SpecDay].value
			d := chrono.LocalDateOf(r.resolvedYear, chrono.Month(month), day)
			datePtr = &d
		}
		if hasTime {
			hour := byCat[SpecHour].value
			minute := byCat[SpecMinute].value
			second := 0
			if s, ok := byCat[SpecSecond]; ok {
				second = s.value
			}
			if p, ok := byCat[SpecAMPM]; ok {
				if hour == 12 {
					hour = 12 * p.value
				} else {
					hour = hour + 12*p.value
				}
			}
			// chrono.LocalTimeOf panics on second > 59 (makeTime); a leap
			// second is valid input but has no chrono representation, so
			// it's clamped here and signalled through Candidate.LeapSecond
			// instead.
			chronoSecond := second
			if chronoSecond > 59 {
				chronoSecond = 59
				c.LeapSecond = true
			}
			t := chrono.LocalTimeOf(hour, minute, chronoSecond, 0)
			timePtr = &t
		}

		switch {
		case datePtr != nil && timePtr != nil:
			dt := chrono.OfLocalDateAndTime(*datePtr, *timePtr)
			c.DateTime = &dt
		case datePtr != nil:
			c.Date = datePtr
		case timePtr != nil:
			c.Time = timePtr
		}

		if z, ok := byCat[SpecTZName]; ok && z.spec == byte(SpecTZOffset) {
			mins := z.value
			off := chrono.OffsetOf(mins/60, mins%60)
			c.Offset = &off
		}

		out = append(out, c)
	}
	return out
}
