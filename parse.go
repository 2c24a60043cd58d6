package jsonapi

import (
	"errors"
	"io"

	"github.com/reoring/jsonapi/internal/engine"
)

// Decode reads exactly one JSON value from src. Failures are reported as
// *DecodeError.
func Decode(src Source, opts ...ParseOpt) (Value, error) {
	opt := lastOpt(opts)
	enforced := engine.WrapWithEnforcement(src, engine.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   warningSink(opt.OnWarning),
	})

	tok, err := enforced.NextToken()
	if errors.Is(err, io.EOF) {
		return nil, &DecodeError{Code: CodeParseError, Path: "/", Message: "empty input", Offset: -1}
	}
	if err != nil {
		return nil, toDecodeError(err, src)
	}
	v, err := decodeValue(enforced, tok)
	if err != nil {
		return nil, toDecodeError(err, src)
	}
	switch _, err := enforced.NextToken(); {
	case errors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return nil, toDecodeError(err, src)
	}
	return nil, &DecodeError{Code: CodeParseError, Path: "/", Message: "unexpected data after top-level value", Offset: src.Location()}
}

// ParseFrom decodes one value from src and validates it as kind. When
// decoding succeeds the value is returned even if validation fails.
func ParseFrom(kind PayloadKind, src Source, opts ...ParseOpt) (Value, error) {
	v, err := Decode(src, opts...)
	if err != nil {
		return nil, err
	}
	return v, Validate(kind, v)
}

// ParseBytes is ParseFrom over JSONBytes(data). Input longer than MaxBytes
// is rejected before decoding.
func ParseBytes(kind PayloadKind, data []byte, opts ...ParseOpt) (Value, error) {
	if limit := lastOpt(opts).MaxBytes; limit > 0 && int64(len(data)) > limit {
		return nil, &DecodeError{Code: CodeTruncated, Path: "/", Message: "max bytes exceeded", Offset: limit}
	}
	return ParseFrom(kind, JSONBytes(data), opts...)
}

// ParseReader validates input read from r. When MaxBytes is set it enforces
// the size cap up front, otherwise it streams through JSONReader.
func ParseReader(kind PayloadKind, r io.Reader, opts ...ParseOpt) (Value, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, &DecodeError{Code: CodeParseError, Path: "/", Message: err.Error(), Offset: -1}
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, &DecodeError{Code: CodeTruncated, Path: "/", Message: "max bytes exceeded", Offset: opt.MaxBytes}
		}
		return ParseFrom(kind, JSONBytes(data), opts...)
	}
	return ParseFrom(kind, JSONReader(r), opts...)
}

func decodeValue(src Source, tok Token) (Value, error) {
	switch tok.Kind {
	case engine.KindBeginObject:
		return decodeObject(src)
	case engine.KindBeginArray:
		return decodeArray(src)
	case engine.KindString:
		return String(tok.String), nil
	case engine.KindNumber:
		return Number(tok.Number), nil
	case engine.KindBool:
		return Bool(tok.Bool), nil
	case engine.KindNull:
		return Null{}, nil
	}
	return nil, errUnexpectedToken
}

var errUnexpectedToken = errors.New("unexpected token")

func decodeObject(src Source) (Value, error) {
	obj := Object{}
	for {
		tok, err := nextInContainer(src)
		if err != nil {
			return nil, err
		}
		if tok.Kind == engine.KindEndObject {
			return obj, nil
		}
		if tok.Kind != engine.KindKey {
			return nil, errUnexpectedToken
		}
		vt, err := nextInContainer(src)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return nil, err
		}
		obj[tok.String] = v
	}
}

func decodeArray(src Source) (Value, error) {
	arr := Array{}
	for {
		tok, err := nextInContainer(src)
		if err != nil {
			return nil, err
		}
		if tok.Kind == engine.KindEndArray {
			return arr, nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// nextInContainer treats end of input inside a container as truncation.
func nextInContainer(src Source) (Token, error) {
	tok, err := src.NextToken()
	if errors.Is(err, io.EOF) {
		return Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}

func toEngineDup(s Severity) engine.DuplicateStrictness {
	switch s {
	case Error:
		return engine.DupError
	case Warn:
		return engine.DupWarn
	default:
		return engine.DupIgnore
	}
}

func warningSink(fn func(*DecodeError)) func(engine.SimpleIssue) {
	if fn == nil {
		return nil
	}
	return func(si engine.SimpleIssue) {
		fn(&DecodeError{Code: si.Code, Path: si.Path, Message: si.Message, Offset: si.Offset})
	}
}

func toDecodeError(err error, src Source) error {
	var ie engine.IssueError
	if errors.As(err, &ie) {
		return &DecodeError{Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: ie.Offset}
	}
	return &DecodeError{Code: CodeParseError, Path: "/", Message: err.Error(), Offset: src.Location()}
}
