package jsonapi_test

import (
	"testing"

	"github.com/reoring/jsonapi"
)

func mustDecode(t *testing.T, js string) jsonapi.Value {
	t.Helper()
	v, err := jsonapi.Decode(jsonapi.JSONBytes([]byte(js)))
	if err != nil {
		t.Fatalf("decode %s: %v", js, err)
	}
	return v
}

// expectInvalid asserts err is an *InvalidDocument with the given message and
// pointer. An empty path skips the pointer check.
func expectInvalid(t *testing.T, err error, msg, path string) {
	t.Helper()
	inv, ok := jsonapi.AsInvalidDocument(err)
	if !ok {
		t.Fatalf("expected InvalidDocument %q, got %v", msg, err)
	}
	if inv.Error() != msg {
		t.Fatalf("expected message %q, got %q", msg, inv.Error())
	}
	if path != "" && inv.Path != path {
		t.Fatalf("expected path %q, got %q", path, inv.Path)
	}
}

type invalidCase struct {
	name string
	js   string
	msg  string
	path string
}
