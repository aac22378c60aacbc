//go:build ignore

// gen_corpus builds a full-coverage alternative to the day/month/am-pm
// vocabulary of the bundled default corpus (corpus_default.go, which takes
// that vocabulary from go-playground/locales translators) from the live
// Unicode CLDR dataset, written to its own file (-out, corpus_cldr.json by
// default): it fetches core.zip, decodes every locale's gregorian-calendar XML, walks
// locales parent-first (so e.g. "en-001" can inherit and then override
// "en"'s tables), and emits a Corpus-shaped "day"/"mon"/"am_pm" JSON
// document for LoadCorpusJSON. Format inference only ever needs to know
// which locales a given weekday/month *spelling* could belong to, never a
// fixed per-language table indexed by BCP 47 tag, which is why the output is
// keyed by the joined name lists rather than by locale.
package main

import (
	"archive/zip"
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

func main() {
	cldrVersion := flag.Int("cldr", 45, "CLDR version")
	cldrZipFilePath := flag.String("file", "", "CLDR core.zip path")
	outPath := flag.String("out", "corpus_cldr.json", "output corpus JSON path")
	flag.Parse()

	models, err := readCLDRCoreFile(*cldrZipFilePath, *cldrVersion)
	if err != nil {
		log.Fatalf("failed to read CLDR zip: %v", err)
	}

	sortedTags := buildLanguageGraph(models).getSorted()

	locales := map[string]*localeGregorianData{}
	var nonEmpty []string
	for _, tag := range sortedTags {
		model := models[tag]

		var data localeGregorianData
		if parsed := language.Make(tag); parsed.Parent() != language.Und {
			if existing, ok := locales[model.Parent]; ok {
				data = existing.clone()
			}
		}

		if cal := findGregorianCalendar(model.LDML); cal != nil {
			if err := fillLocaleData(tag, cal, &data); err != nil {
				log.Fatal(err)
			}
		}

		if !data.isEmpty() {
			locales[tag] = &data
			nonEmpty = append(nonEmpty, tag)
		}
	}
	sort.Strings(nonEmpty)

	doc := corpusDoc{Day: map[string][]string{}, Mon: map[string][]string{}, AmPm: map[string][]string{}}
	for _, tag := range nonEmpty {
		data := locales[tag]
		if key := joinOrdered(data.longDayNames, stdSundayFirst); key != "" {
			doc.Day[key] = append(doc.Day[key], tag)
		}
		if key := joinOrdered(data.shortDayNames, stdSundayFirst); key != "" {
			doc.Day[key] = append(doc.Day[key], tag)
		}
		if key := joinOrdered(data.longMonthNames, stdJanuaryFirst); key != "" {
			doc.Mon[key] = append(doc.Mon[key], tag)
		}
		if key := joinOrdered(data.shortMonthNames, stdJanuaryFirst); key != "" {
			doc.Mon[key] = append(doc.Mon[key], tag)
		}
		if data.amPm != nil && data.amPm["AM"] != "" && data.amPm["PM"] != "" {
			key := data.amPm["AM"] + ";" + data.amPm["PM"]
			doc.AmPm[key] = append(doc.AmPm[key], tag)
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *outPath, err)
	}
	fmt.Printf("wrote %s (%d day keys, %d mon keys, %d am_pm keys)\n", *outPath, len(doc.Day), len(doc.Mon), len(doc.AmPm))
}

type corpusDoc struct {
	Day  map[string][]string `json:"day"`
	Mon  map[string][]string `json:"mon"`
	AmPm map[string][]string `json:"am_pm"`
}

var stdSundayFirst = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
var stdJanuaryFirst = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

func joinOrdered(table map[string]string, order []string) string {
	if table == nil {
		return ""
	}
	parts := make([]string, 0, len(order))
	for _, k := range order {
		v, ok := table[k]
		if !ok {
			return ""
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, ";")
}

func fillLocaleData(tag string, cal *Calendar, data *localeGregorianData) error {
	if cal.Months != nil {
		for _, mc := range cal.Months.MonthContext {
			if mc.Type != "format" {
				continue
			}
			for _, mw := range mc.MonthWidth {
				switch mw.Type {
				case "abbreviated":
					m, err := monthMap(data.shortMonthNames, mw.Month)
					if err != nil {
						return fmt.Errorf("%s: short months: %w", tag, err)
					}
					data.shortMonthNames = m
				case "wide":
					m, err := monthMap(data.longMonthNames, mw.Month)
					if err != nil {
						return fmt.Errorf("%s: long months: %w", tag, err)
					}
					data.longMonthNames = m
				}
			}
		}
	}

	if cal.Days != nil {
		for _, dc := range cal.Days.DayContext {
			if dc.Type != "format" {
				continue
			}
			for _, dw := range dc.DayWidth {
				switch dw.Type {
				case "abbreviated":
					data.shortDayNames = dayMap(data.shortDayNames, dw.Day)
				case "wide":
					data.longDayNames = dayMap(data.longDayNames, dw.Day)
				}
			}
		}
	}

	if cal.DayPeriods != nil {
		for _, pc := range cal.DayPeriods.DayPeriodContext {
			if pc.Type != "format" {
				continue
			}
			periods := map[string]string{}
			for _, pw := range pc.DayPeriodWidth {
				if pw.Type != "abbreviated" {
					continue
				}
				for _, p := range pw.DayPeriod {
					if p.Type == "am" || p.Type == "pm" {
						periods[strings.ToUpper(p.Type)] = p.CharData
					}
				}
			}
			if len(periods) == 2 {
				data.amPm = periods
				break
			}
		}
	}

	return nil
}

func monthMap(curr map[string]string, months []*MonthWidth) (map[string]string, error) {
	if curr == nil && len(months) == 0 {
		return nil, nil
	}
	val := make(map[string]string, 12)
	maps.Copy(val, curr)
	for _, m := range months {
		n, err := strconv.Atoi(m.Type)
		if err != nil {
			return nil, err
		}
		val[strconv.Itoa(n)] = m.CharData
	}
	return val, nil
}

var dayTypeToKey = map[string]string{
	"sun": "sun", "mon": "mon", "tue": "tue", "wed": "wed", "thu": "thu", "fri": "fri", "sat": "sat",
}

func dayMap(curr map[string]string, days []*Common) map[string]string {
	if curr == nil && len(days) == 0 {
		return nil
	}
	val := make(map[string]string, 7)
	maps.Copy(val, curr)
	for _, d := range days {
		if key, ok := dayTypeToKey[d.Type]; ok {
			val[key] = d.CharData
		}
	}
	return val
}

func findGregorianCalendar(lang *LDML) *Calendar {
	if lang == nil || lang.Dates == nil || lang.Dates.Calendars == nil {
		return nil
	}
	for _, cal := range lang.Dates.Calendars.Calendar {
		if cal.Type == "gregorian" {
			return cal
		}
	}
	return nil
}

type localeGregorianData struct {
	longDayNames    map[string]string
	shortDayNames   map[string]string
	longMonthNames  map[string]string
	shortMonthNames map[string]string
	amPm            map[string]string
}

func (d *localeGregorianData) clone() localeGregorianData {
	return localeGregorianData{
		longDayNames:    maps.Clone(d.longDayNames),
		shortDayNames:   maps.Clone(d.shortDayNames),
		longMonthNames:  maps.Clone(d.longMonthNames),
		shortMonthNames: maps.Clone(d.shortMonthNames),
		amPm:            maps.Clone(d.amPm),
	}
}

func (d *localeGregorianData) isEmpty() bool {
	return d.longDayNames == nil && d.shortDayNames == nil &&
		d.longMonthNames == nil && d.shortMonthNames == nil && d.amPm == nil
}

func readCLDRCoreFile(path string, version int) (map[string]*cldrLocaleModel, error) {
	f, err := getCLDRCoreFile(path, version)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zip.OpenReader(f.Name())
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	models := make(map[string]*cldrLocaleModel)
	for _, file := range zr.File {
		info := file.FileInfo()
		if info.IsDir() || !strings.HasPrefix(file.Name, "common/main") || !strings.HasSuffix(info.Name(), ".xml") {
			continue
		}

		entry, err := file.Open()
		if err != nil {
			return nil, err
		}
		model := &LDML{}
		err = xml.NewDecoder(entry).Decode(model)
		entry.Close()
		if err != nil {
			return nil, err
		}

		tag := info.Name()[:len(info.Name())-4]
		parsed, err := language.Parse(tag)
		if err != nil {
			return nil, err
		}

		var parent string
		if parsed.Parent() != language.Und {
			parent = parsed.Parent().String()
		}
		models[parsed.String()] = &cldrLocaleModel{parent, model}
	}
	return models, nil
}

func getCLDRCoreFile(path string, version int) (*os.File, error) {
	if path != "" {
		return os.Open(path)
	}
	tmp, err := downloadCLDRCoreFile(version)
	if err != nil {
		return nil, fmt.Errorf("failed to download CLDR file: %w", err)
	}
	return os.Open(tmp.Name())
}

func downloadCLDRCoreFile(version int) (*os.File, error) {
	tmpFile, err := os.CreateTemp("", "cldr-core*.zip")
	if err != nil {
		return nil, err
	}
	defer tmpFile.Close()

	url := fmt.Sprintf("https://unicode.org/Public/cldr/%d/core.zip", version)
	resp, err := http.Get(url) //nolint:gosec,noctx // fixed, trusted host; a one-shot dev tool, not request-driven
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CLDR download failed with status %s", resp.Status)
	}
	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return nil, err
	}
	return tmpFile, nil
}

type cldrLocaleModel struct {
	Parent string
	*LDML
}

// cldrGraph sorts locale tags parent-first, so a derived locale ("en-001")
// is only ever cloned from an already-populated parent ("en").
type cldrGraph struct {
	vertices []string
	edges    map[string][]string
}

func (g *cldrGraph) add(tag, parent string) {
	g.vertices = append(g.vertices, tag)
	if parent != "" {
		g.edges[tag] = append(g.edges[tag], parent)
	}
}

func (g *cldrGraph) getSorted() []string {
	visited := map[string]bool{}
	var stack []string
	for _, v := range g.vertices {
		if !visited[v] {
			g.dfs(v, visited, &stack)
		}
	}
	return stack
}

func (g *cldrGraph) dfs(from string, visited map[string]bool, stack *[]string) {
	visited[from] = true
	for _, to := range g.edges[from] {
		if !visited[to] {
			g.dfs(to, visited, stack)
		}
	}
	*stack = append(*stack, from)
}

func buildLanguageGraph(models map[string]*cldrLocaleModel) *cldrGraph {
	g := &cldrGraph{edges: map[string][]string{}}
	for tag, model := range models {
		g.add(tag, model.Parent)
	}
	return g
}

// The LDML/Calendar/Common XML shapes below mirror just enough of the CLDR
// schema to read gregorian-calendar weekday/month/day-period names; see
// https://unicode.org/reports/tr35/ for the full schema this is a slice of.

type Common struct {
	XMLName xml.Name
	Type    string `xml:"type,attr,omitempty"`
	Alt     string `xml:"alt,attr,omitempty"`
	hidden
}

type hidden struct {
	CharData string `xml:",chardata"`
}

type LDML struct {
	Common
	Dates *struct {
		Common
		Calendars *struct {
			Common
			Calendar []*Calendar `xml:"calendar"`
		} `xml:"calendars"`
	} `xml:"dates"`
}

type Calendar struct {
	Common
	Months *struct {
		Common
		MonthContext []*struct {
			Common
			MonthWidth []*struct {
				Common
				Month []*MonthWidth `xml:"month"`
			} `xml:"monthWidth"`
		} `xml:"monthContext"`
	} `xml:"months"`
	Days *struct {
		Common
		DayContext []*struct {
			Common
			DayWidth []*struct {
				Common
				Day []*Common `xml:"day"`
			} `xml:"dayWidth"`
		} `xml:"dayContext"`
	} `xml:"days"`
	DayPeriods *struct {
		Common
		DayPeriodContext []*struct {
			Common
			DayPeriodWidth []*struct {
				Common
				DayPeriod []*Common `xml:"dayPeriod"`
			} `xml:"dayPeriodWidth"`
		} `xml:"dayPeriodContext"`
	} `xml:"dayPeriods"`
}

type MonthWidth = struct {
	Common
	Yeartype string `xml:"yeartype,attr"`
}
