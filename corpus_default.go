package lunes

import (
	"strings"

	"github.com/go-playground/locales/bg_BG"
	"github.com/go-playground/locales/bs"
	"github.com/go-playground/locales/ca_IT"
	"github.com/go-playground/locales/chr"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es_US"
	"github.com/go-playground/locales/eu"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/vi"
)

// defaultCorpusJSON is the "glibc"-keyed seed corpus bundled with this
// package: sample d_fmt/am_pm strings for a small, illustrative set of
// locales with distinctive date vocabulary (Vietnamese "tháng"/"năm",
// Japanese "年"/"月"/"日", Basque "eko"/"ren"). It exists to give
// buildPrefixesSuffixes and buildKeywords something to extract
// prefix/suffix/am-pm context from, since go-playground/locales translators
// (merged in below) never expose that information through the public
// locales.Translator interface.
const defaultCorpusJSON = `{
  "formats": {
    "%m/%d/%Y": ["en_US"],
    "%I:%M:%S %p": ["en_US"],
    "%d tháng %m năm %Y": ["vi_VN"],
    "%Y年%m月%d日": ["ja_JP"],
    "%Yeko %Bren %da": ["eu_ES"]
  },
  "am_pm": {
    "AM;PM": ["en_US", "eu_ES"],
    "SA;CH": ["vi_VN"],
    "午前;午後": ["ja_JP"]
  }
}`

// defaultCorpus builds the Corpus backing DefaultLocaleSet: the embedded seed
// document above, merged with weekday/month vocabulary pulled live from
// go-playground/locales translators. en_US/vi/ja/eu back the formats/am_pm
// facts in defaultCorpusJSON; ca_IT/bg_BG/bs/chr/es_US contribute only
// day/mon vocabulary (am_pm/era stay empty for them), widening the set of
// locales a bare weekday or month spelling can narrow down to.
// gen_corpus.go (a build-ignored dev tool, not part of this package) writes a
// separate day/mon/am_pm document (corpus_cldr.json by default) from the full
// CLDR dataset; nothing in this package reads that file, and the embedded
// document above is not produced by it.
func defaultCorpus() *Corpus {
	c, err := LoadCorpusJSON(strings.NewReader(defaultCorpusJSON))
	if err != nil {
		panic("lunes: embedded default corpus failed to decode: " + err.Error())
	}
	MergeCorpus(c, LoadCorpusFromTranslators(
		en_US.New(), vi.New(), ja.New(), eu.New(),
		ca_IT.New(), bg_BG.New(), bs.New(), chr.New(), es_US.New(),
	))
	return c
}
