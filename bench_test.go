package jsonapi_test

import (
	"testing"

	"github.com/reoring/jsonapi"
)

func BenchmarkValidateDocument(b *testing.B) {
	v, err := jsonapi.Decode(jsonapi.JSONBytes([]byte(articlesDocument)))
	if err != nil {
		b.Fatalf("decode: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := jsonapi.ValidateDocument(v); err != nil {
			b.Fatalf("validate: %v", err)
		}
	}
}

func BenchmarkParseBytes(b *testing.B) {
	data := []byte(articlesDocument)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, err := jsonapi.ParseBytes(jsonapi.PayloadDocument, data); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}
