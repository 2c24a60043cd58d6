package gojson_test

import (
	"bytes"
	"testing"

	"github.com/reoring/jsonapi"
	"github.com/reoring/jsonapi/source/gojson"
)

func TestDriver_ParsesDocuments(t *testing.T) {
	d := gojson.Driver()
	if d.Name() != "go-json" {
		t.Fatalf("unexpected driver name %q", d.Name())
	}
	js := []byte(`{"data": [{"type": "articles", "id": "1", "attributes": {"rating": 4.5, "draft": false, "tags": ["a", null]}}]}`)
	v, err := jsonapi.ParseFrom(jsonapi.PayloadDocument, d.NewBytes(js))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	attrs := v.(jsonapi.Object)["data"].(jsonapi.Array)[0].(jsonapi.Object)["attributes"].(jsonapi.Object)
	if attrs["rating"] != jsonapi.Number("4.5") || attrs["draft"] != jsonapi.Bool(false) {
		t.Fatalf("unexpected attributes %#v", attrs)
	}
}

func TestDriver_DuplicateKeys(t *testing.T) {
	js := []byte(`{"data": null, "data": []}`)
	_, err := jsonapi.Decode(gojson.NewBytes(js), jsonapi.ParseOpt{Strictness: jsonapi.Strictness{OnDuplicateKey: jsonapi.Error}})
	de, ok := jsonapi.AsDecodeError(err)
	if !ok || de.Code != jsonapi.CodeDuplicateKey || de.Path != "/data" {
		t.Fatalf("expected duplicate_key at /data, got %v", err)
	}
}

func TestDriver_ReportsInvalidDocument(t *testing.T) {
	_, err := jsonapi.ParseFrom(jsonapi.PayloadDocument, gojson.NewBytes([]byte(`{"data": null, "included": {}}`)))
	inv, ok := jsonapi.AsInvalidDocument(err)
	if !ok || inv.Message != jsonapi.MsgIncluded {
		t.Fatalf("expected %q, got %v", jsonapi.MsgIncluded, err)
	}
}

func TestDriver_MaxBytes(t *testing.T) {
	d := gojson.Driver()
	js := []byte(`{"data": {"type": "articles", "id": "1", "attributes": {"title": "JSON:API"}}}`)

	_, err := jsonapi.ParseFrom(jsonapi.PayloadDocument, d.NewBytes(js), jsonapi.ParseOpt{MaxBytes: 10})
	de, ok := jsonapi.AsDecodeError(err)
	if !ok || de.Code != jsonapi.CodeTruncated {
		t.Fatalf("expected truncated, got %v", err)
	}

	_, err = jsonapi.ParseFrom(jsonapi.PayloadDocument, d.NewReader(bytes.NewReader(js)), jsonapi.ParseOpt{MaxBytes: 10})
	if de, ok := jsonapi.AsDecodeError(err); !ok || de.Code != jsonapi.CodeTruncated {
		t.Fatalf("reader: expected truncated, got %v", err)
	}

	if _, err := jsonapi.ParseFrom(jsonapi.PayloadDocument, d.NewBytes(js), jsonapi.ParseOpt{MaxBytes: int64(len(js))}); err != nil {
		t.Fatalf("at limit: %v", err)
	}
}

func TestSource_LocationCountsConsumedBytes(t *testing.T) {
	js := []byte(`{"meta": {}}`)
	src := gojson.NewBytes(js)
	if got := src.Location(); got != 0 {
		t.Fatalf("expected 0 before reading, got %d", got)
	}
	if _, err := src.NextToken(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if got := src.Location(); got <= 0 || got > int64(len(js)) {
		t.Fatalf("expected location within (0, %d], got %d", len(js), got)
	}
}
