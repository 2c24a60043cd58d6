// Package yaml decodes YAML documents into jsonapi values, so that fixtures
// and hand-written payloads kept as YAML can be validated like JSON.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/jsonapi"
)

// ErrEmpty is returned by Decode when the input holds no document.
var ErrEmpty = errors.New("yaml: empty document")

// Decode parses the first YAML document in data.
func Decode(data []byte) (jsonapi.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	return FromNode(&doc)
}

// DecodeAll parses every document of a multi-document YAML stream.
func DecodeAll(r io.Reader) ([]jsonapi.Value, error) {
	dec := yaml.NewDecoder(r)
	var out []jsonapi.Value
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		v, err := FromNode(&doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(out), err)
		}
		out = append(out, v)
	}
}

// MaxNodes caps the number of nodes FromNode produces for one document, so
// nested aliases cannot expand into an arbitrarily large value.
const MaxNodes = 1 << 20

// ErrAliasCycle is returned when an alias refers to a node that contains it.
var ErrAliasCycle = errors.New("yaml: alias cycle")

// ErrTooManyNodes is returned when a document expands beyond MaxNodes.
var ErrTooManyNodes = fmt.Errorf("yaml: document expands to more than %d nodes", MaxNodes)

// FromNode converts a yaml.v3 node tree into a jsonapi.Value. Mapping keys
// must be scalars and unique; tagged scalars other than null, bool, int and
// float are kept as strings. Aliases are expanded in place.
func FromNode(n *yaml.Node) (jsonapi.Value, error) {
	w := walker{expanding: make(map[*yaml.Node]bool)}
	return w.node(n)
}

type walker struct {
	expanding map[*yaml.Node]bool
	nodes     int
}

func (w *walker) node(n *yaml.Node) (jsonapi.Value, error) {
	w.nodes++
	if w.nodes > MaxNodes {
		return nil, ErrTooManyNodes
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return jsonapi.Null{}, nil
		}
		return w.node(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil || w.expanding[n.Alias] {
			return nil, fmt.Errorf("%w at line %d", ErrAliasCycle, n.Line)
		}
		w.expanding[n.Alias] = true
		v, err := w.node(n.Alias)
		delete(w.expanding, n.Alias)
		return v, err
	case yaml.MappingNode:
		w.expanding[n] = true
		defer delete(w.expanding, n)
		obj := make(jsonapi.Object, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("yaml: line %d: mapping key must be a scalar", k.Line)
			}
			if _, dup := obj[k.Value]; dup {
				return nil, fmt.Errorf("yaml: line %d: mapping key %q already defined", k.Line, k.Value)
			}
			val, err := w.node(v)
			if err != nil {
				return nil, err
			}
			obj[k.Value] = val
		}
		return obj, nil
	case yaml.SequenceNode:
		w.expanding[n] = true
		defer delete(w.expanding, n)
		arr := make(jsonapi.Array, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := w.node(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, fmt.Errorf("yaml: line %d: unsupported node kind %d", n.Line, n.Kind)
}

func scalar(n *yaml.Node) (jsonapi.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return jsonapi.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return jsonapi.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return jsonapi.Number(strconv.FormatInt(i, 10)), nil
		}
		return floatValue(n)
	case "!!float":
		return floatValue(n)
	}
	return jsonapi.String(n.Value), nil
}

func floatValue(n *yaml.Node) (jsonapi.Value, error) {
	var f float64
	if err := n.Decode(&f); err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("yaml: line %d: %s is not a JSON number", n.Line, n.Value)
	}
	return jsonapi.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
}
