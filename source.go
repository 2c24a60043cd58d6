package jsonapi

import (
	"io"
	"sync"

	"github.com/reoring/jsonapi/internal/engine"
	jsonsrc "github.com/reoring/jsonapi/source/json"
)

// Token is a single lexical token produced by a Source.
type Token = engine.Token

// TokenKind enumerates token kinds.
type TokenKind = engine.Kind

const (
	TokenBeginObject TokenKind = engine.KindBeginObject
	TokenEndObject   TokenKind = engine.KindEndObject
	TokenBeginArray  TokenKind = engine.KindBeginArray
	TokenEndArray    TokenKind = engine.KindEndArray
	TokenKey         TokenKind = engine.KindKey
	TokenString      TokenKind = engine.KindString
	TokenNumber      TokenKind = engine.KindNumber
	TokenBool        TokenKind = engine.KindBool
	TokenNull        TokenKind = engine.KindNull
)

// Source yields JSON tokens. NextToken returns io.EOF after the last token;
// Location reports the current byte offset, or -1 when unknown.
type Source = engine.TokenSource

// JSONDriver converts JSON input into a Source via a pluggable SPI. The default
// implementation is based on encoding/json and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default encoding/json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver used by JSONReader and JSONBytes.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source { return jsonsrc.NewReader(r) }
func (defaultJSONDriver) NewBytes(b []byte) Source     { return jsonsrc.NewBytes(b) }
func (defaultJSONDriver) Name() string                 { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }
