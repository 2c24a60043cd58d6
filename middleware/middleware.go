// Package middleware rejects HTTP requests whose bodies are not structurally
// valid JSON:API payloads, answering with a JSON:API errors document.
package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/reoring/jsonapi"
)

// MediaType is the JSON:API media type.
const MediaType = "application/vnd.api+json"

// ErrUnsupportedMediaType is returned by Check when RequireMediaType is set and
// the request does not use the JSON:API media type.
var ErrUnsupportedMediaType = errors.New("middleware: content type must be " + MediaType + " without media type parameters other than ext and profile")

// Options configures request validation.
type Options struct {
	// Kind selects the entry point applied to request bodies.
	Kind jsonapi.PayloadKind
	// Parse controls decoding. Nil means DefaultParseOpt; a pointer to the
	// zero ParseOpt decodes leniently with no limits.
	Parse *jsonapi.ParseOpt
	// Methods lists the HTTP methods whose bodies are validated; nil means
	// POST and PATCH. Other requests pass through untouched.
	Methods []string
	// RequireMediaType rejects requests whose Content-Type is not MediaType.
	RequireMediaType bool
	Logger           *zap.Logger
	Metrics          *Metrics
}

// DefaultParseOpt returns a recommended default for HTTP JSON boundaries:
// duplicate keys are errors, nesting and size are capped.
func DefaultParseOpt() jsonapi.ParseOpt {
	return jsonapi.ParseOpt{
		Strictness: jsonapi.Strictness{OnDuplicateKey: jsonapi.Error},
		MaxDepth:   64,
		MaxBytes:   1 << 20,
	}
}

func (o Options) parseOpt() jsonapi.ParseOpt {
	if o.Parse == nil {
		return DefaultParseOpt()
	}
	return *o.Parse
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) applies(method string) bool {
	if o.Methods == nil {
		return method == http.MethodPost || method == http.MethodPatch
	}
	return slices.Contains(o.Methods, method)
}

type ctxKeyValue struct{}

// ContextWithValue attaches a decoded request body to the context.
func ContextWithValue(ctx context.Context, v jsonapi.Value) context.Context {
	return context.WithValue(ctx, ctxKeyValue{}, v)
}

// ValueFromContext retrieves the body stored by ContextWithValue.
func ValueFromContext(ctx context.Context) (jsonapi.Value, bool) {
	v, ok := ctx.Value(ctxKeyValue{}).(jsonapi.Value)
	return v, ok
}

// Check reads and validates the body of r. The body is replaced with a
// reader over the consumed bytes so handlers can decode it again.
func (o Options) Check(r *http.Request) (jsonapi.Value, error) {
	if o.RequireMediaType {
		if err := checkMediaType(r.Header.Get("Content-Type")); err != nil {
			return nil, err
		}
	}
	opt := o.parseOpt()
	body := r.Body
	if body == nil {
		body = http.NoBody
	}
	data, err := readBody(body, opt.MaxBytes)
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(data))
	return jsonapi.ParseBytes(o.Kind, data, opt)
}

// Admit validates r when its method is covered. On success it returns r
// carrying the decoded value in its context; on failure it writes the error
// response to w and reports false.
func (o Options) Admit(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	if !o.applies(r.Method) {
		return r, true
	}
	log := o.logger()
	start := time.Now()
	v, err := o.Check(r)
	o.Metrics.observe(o.Kind, err, time.Since(start))
	if err != nil {
		status := StatusFor(err)
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Stringer("payload", o.Kind),
			zap.Int("status", status),
			zap.Error(err),
		}
		if inv, ok := jsonapi.AsInvalidDocument(err); ok {
			fields = append(fields, zap.String("pointer", inv.Path))
		}
		log.Info("rejected JSON:API payload", fields...)
		if werr := WriteError(w, status, err); werr != nil {
			log.Warn("writing error document failed", zap.Error(werr))
		}
		return r, false
	}
	log.Debug("accepted JSON:API payload",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Stringer("payload", o.Kind),
	)
	return r.WithContext(ContextWithValue(r.Context(), v)), true
}

// Validate returns net/http middleware that applies Admit to every request.
func Validate(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r, ok := opts.Admit(w, r)
			if !ok {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// StatusFor maps a Check error to an HTTP status code.
func StatusFor(err error) int {
	if errors.Is(err, ErrUnsupportedMediaType) {
		return http.StatusUnsupportedMediaType
	}
	if de, ok := jsonapi.AsDecodeError(err); ok && de.Code == jsonapi.CodeTruncated {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func checkMediaType(contentType string) error {
	mt, params, err := mime.ParseMediaType(contentType)
	if err != nil || mt != MediaType {
		return ErrUnsupportedMediaType
	}
	for name := range params {
		if name != "ext" && name != "profile" {
			return ErrUnsupportedMediaType
		}
	}
	return nil
}

func readBody(body io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 {
		body = io.LimitReader(body, maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &jsonapi.DecodeError{Code: jsonapi.CodeParseError, Path: "/", Message: err.Error(), Offset: -1}
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, &jsonapi.DecodeError{Code: jsonapi.CodeTruncated, Path: "/", Message: "max bytes exceeded", Offset: maxBytes}
	}
	return data, nil
}
