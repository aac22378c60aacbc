package benchmarks_test

import (
	"testing"

	"github.com/dateinfer/lunes"
)

var benchmarkInputs = []string{
	"2018-05-05",
	"2018-01-09",
	"21:04:56",
	"Mon, 02 Jan 2006 15:04:05 -0700",
}

func BenchmarkDefaultLocaleSet(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := lunes.DefaultLocaleSet(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	ls, err := lunes.DefaultLocaleSet()
	if err != nil {
		b.Fatal(err)
	}
	p, err := lunes.NewParser(ls)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, in := range benchmarkInputs {
			p.Parse(in)
		}
	}
}
