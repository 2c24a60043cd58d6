package jsonapi

import (
	"strconv"
	"strings"
)

// path is a JSON Pointer built from the root downwards; the nil *path is the
// root. Segments are only joined and escaped when a failure is reported.
type path struct {
	parent *path
	token  string
}

func (p *path) field(name string) *path { return &path{parent: p, token: name} }

func (p *path) index(i int) *path { return &path{parent: p, token: strconv.Itoa(i)} }

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// pointer renders p per RFC 6901; the root renders as "/".
func (p *path) pointer() string {
	if p == nil {
		return "/"
	}
	var parts []string
	for q := p; q != nil; q = q.parent {
		parts = append(parts, pointerEscaper.Replace(q.token))
	}
	b := &strings.Builder{}
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

func (p *path) fail(msg string) error {
	return &InvalidDocument{Message: msg, Path: p.pointer()}
}
