package json

import (
	"errors"
	"io"
	"testing"

	eng "github.com/reoring/jsonapi/internal/engine"
)

func kinds(t *testing.T, src eng.TokenSource) []eng.Kind {
	t.Helper()
	var out []eng.Kind
	for {
		tok, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		out = append(out, tok.Kind)
	}
}

func TestNewBytes_Tokens(t *testing.T) {
	got := kinds(t, NewBytes([]byte(`{"data": [{"id": "1", "n": 2, "ok": false, "x": null}], "meta": {}}`)))
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindBeginArray, eng.KindBeginObject,
		eng.KindKey, eng.KindString,
		eng.KindKey, eng.KindNumber,
		eng.KindKey, eng.KindBool,
		eng.KindKey, eng.KindNull,
		eng.KindEndObject, eng.KindEndArray,
		eng.KindKey, eng.KindBeginObject, eng.KindEndObject,
		eng.KindEndObject,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestNewBytes_Location(t *testing.T) {
	src := NewBytes([]byte(`{"data": null}`))
	if src.Location() != -1 {
		t.Fatalf("expected -1 before the first token, got %d", src.Location())
	}
	for {
		if _, err := src.NextToken(); err != nil {
			break
		}
	}
	if src.Location() != 14 {
		t.Fatalf("expected offset 14 at the end, got %d", src.Location())
	}
}
