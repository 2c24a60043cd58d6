package benchmarks_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/reoring/jsonapi"
	drvgojson "github.com/reoring/jsonapi/source/gojson"
)

// generateCompoundDocument returns a document with n articles, each with an
// author relationship, plus the n people they link to in included.
func generateCompoundDocument(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n * 320)
	buf.WriteString(`{"data":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"type":"articles","id":"%d","attributes":{"title":"t%d","views":%d},`, i, i, i*7)
		fmt.Fprintf(&buf, `"relationships":{"author":{"links":{"self":"/articles/%d/relationships/author"},"data":{"type":"people","id":"p%d"}}},`, i, i)
		fmt.Fprintf(&buf, `"links":{"self":"/articles/%d"}}`, i)
	}
	buf.WriteString(`],"included":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"type":"people","id":"p%d","attributes":{"name":"n%d"}}`, i, i)
	}
	buf.WriteString(`],"meta":{"total":`)
	fmt.Fprintf(&buf, "%d}}", n)
	return buf.Bytes()
}

func benchmarkDriver(b *testing.B, d jsonapi.JSONDriver, n int, opt jsonapi.ParseOpt) {
	b.Helper()
	data := generateCompoundDocument(n)
	if _, err := jsonapi.ParseFrom(jsonapi.PayloadDocument, d.NewBytes(data), opt); err != nil {
		b.Fatalf("fixture rejected: %v", err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jsonapi.ParseFrom(jsonapi.PayloadDocument, d.NewBytes(data), opt); err != nil {
			b.Fatal(err)
		}
	}
}

var strict = jsonapi.ParseOpt{
	Strictness: jsonapi.Strictness{OnDuplicateKey: jsonapi.Error},
	MaxDepth:   64,
}

func Benchmark_ParseFrom_Compound_Small_EncodingJSON(b *testing.B) {
	benchmarkDriver(b, jsonapi.CurrentJSONDriver(), 10, jsonapi.ParseOpt{})
}

func Benchmark_ParseFrom_Compound_Small_GoJSON(b *testing.B) {
	benchmarkDriver(b, drvgojson.Driver(), 10, jsonapi.ParseOpt{})
}

func Benchmark_ParseFrom_Compound_Large_EncodingJSON(b *testing.B) {
	benchmarkDriver(b, jsonapi.CurrentJSONDriver(), 5000, jsonapi.ParseOpt{})
}

func Benchmark_ParseFrom_Compound_Large_GoJSON(b *testing.B) {
	benchmarkDriver(b, drvgojson.Driver(), 5000, jsonapi.ParseOpt{})
}

func Benchmark_ParseFrom_Compound_Large_Strict_EncodingJSON(b *testing.B) {
	benchmarkDriver(b, jsonapi.CurrentJSONDriver(), 5000, strict)
}

func Benchmark_ParseFrom_Compound_Large_Strict_GoJSON(b *testing.B) {
	benchmarkDriver(b, drvgojson.Driver(), 5000, strict)
}

// The fixture itself is checked so a broken generator fails fast in go test.
func TestGenerateCompoundDocument(t *testing.T) {
	for _, d := range []jsonapi.JSONDriver{drvgojson.Driver(), jsonapi.CurrentJSONDriver()} {
		if _, err := jsonapi.ParseFrom(jsonapi.PayloadDocument, d.NewBytes(generateCompoundDocument(3)), strict); err != nil {
			t.Fatalf("%s: %v", d.Name(), err)
		}
	}
}
