// Package gojson provides a JSON driver backed by github.com/goccy/go-json.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/jsonapi"
	eng "github.com/reoring/jsonapi/internal/engine"
)

// Driver returns a jsonapi.JSONDriver backed by goccy/go-json.
func Driver() jsonapi.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) jsonapi.Source { return NewReader(r) }
func (driverGoJSON) NewBytes(b []byte) jsonapi.Source     { return NewBytes(b) }
func (driverGoJSON) Name() string                         { return "go-json" }

type source struct {
	dec    *j.Decoder
	in     *countingReader
	framer eng.Framer
}

// countingReader tracks how many bytes the decoder has pulled from the input.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	in := &countingReader{r: r}
	dec := j.NewDecoder(in)
	dec.UseNumber()
	return &source{dec: dec, in: in}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

// NextToken never reports token offsets: the go-json decoder does not track
// them.
func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return s.framer.Open(true, -1), nil
		case '}':
			return s.framer.Close(true, -1), nil
		case '[':
			return s.framer.Open(false, -1), nil
		default:
			return s.framer.Close(false, -1), nil
		}
	case string:
		return s.framer.Text(v, -1), nil
	case bool:
		return s.framer.Scalar(eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}), nil
	case j.Number:
		return s.framer.Scalar(eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}), nil
	case float64:
		return s.framer.Scalar(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}), nil
	}
	return s.framer.Scalar(eng.Token{Kind: eng.KindNull, Offset: -1}), nil
}

// Location reports the bytes read from the input so far. The decoder buffers
// ahead, so this is an upper bound of the current position that never
// exceeds the input size, which is what MaxBytes enforcement needs.
func (s *source) Location() int64 { return s.in.n }
