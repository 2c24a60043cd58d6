package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string // Key or string value.
	Number string // Number literal text as it appeared in the input.
	Bool   bool
	Offset int64 // -1 when the driver cannot report offsets.
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// Framer tracks container nesting for drivers whose decoders report object
// keys and string values with the same token type. The zero value is ready
// to use.
type Framer struct {
	stack []frame
}

type frame struct {
	object       bool
	expectingKey bool
}

// Open records the start of an object or array.
func (f *Framer) Open(object bool, off int64) Token {
	f.stack = append(f.stack, frame{object: object, expectingKey: object})
	if object {
		return Token{Kind: KindBeginObject, Offset: off}
	}
	return Token{Kind: KindBeginArray, Offset: off}
}

// Close records the end of the innermost container.
func (f *Framer) Close(object bool, off int64) Token {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.valueDone()
	if object {
		return Token{Kind: KindEndObject, Offset: off}
	}
	return Token{Kind: KindEndArray, Offset: off}
}

// Text classifies a string token as an object key or a string value.
func (f *Framer) Text(s string, off int64) Token {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return Token{Kind: KindKey, String: s, Offset: off}
		}
	}
	f.valueDone()
	return Token{Kind: KindString, String: s, Offset: off}
}

// Scalar records a number, bool or null value and returns t unchanged.
func (f *Framer) Scalar(t Token) Token {
	f.valueDone()
	return t
}

func (f *Framer) valueDone() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object {
			top.expectingKey = true
		}
	}
}
