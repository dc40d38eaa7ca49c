package jtok_test

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"jtok"
)

func benchmarkDoc() string {
	var b strings.Builder
	b.WriteString(`{"items": [`)
	for i := 0; i < 256; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"id": `)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`, "name": "item-`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`", "active": true, "score": 1.5}`)
	}
	b.WriteString(`]}`)
	return b.String()
}

func BenchmarkTokenize(b *testing.B) {
	input := benchmarkDoc()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := jtok.FromString(input, 0); err != nil {
			b.Fatalf("FromString: unexpected error: %v", err)
		}
	}
}

func BenchmarkTokenizeAndParseAll(b *testing.B) {
	input := benchmarkDoc()
	opts := jtok.ParseLiterals | jtok.ParseDoubles | jtok.ParseStrings
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := jtok.FromString(input, opts); err != nil {
			b.Fatalf("FromString: unexpected error: %v", err)
		}
	}
}

func BenchmarkEncodingJSONUnmarshal(b *testing.B) {
	input := []byte(benchmarkDoc())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v any
		if err := json.Unmarshal(input, &v); err != nil {
			b.Fatalf("json.Unmarshal: unexpected error: %v", err)
		}
	}
}
