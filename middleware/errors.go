package middleware

import (
	"errors"
	"net/http"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/jsonapi"
)

// ErrorDocument is a JSON:API top-level errors document.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// ErrorObject is a single JSON:API error object.
type ErrorObject struct {
	Status string       `json:"status"`
	Code   string       `json:"code,omitempty"`
	Title  string       `json:"title"`
	Detail string       `json:"detail"`
	Source *ErrorSource `json:"source,omitempty"`
}

// ErrorSource points at the offending part of the request document.
type ErrorSource struct {
	Pointer string `json:"pointer"`
}

// NewErrorDocument shapes a Check error for the response body.
func NewErrorDocument(status int, err error) ErrorDocument {
	obj := ErrorObject{
		Status: strconv.Itoa(status),
		Title:  http.StatusText(status),
		Detail: err.Error(),
	}
	var inv *jsonapi.InvalidDocument
	var de *jsonapi.DecodeError
	switch {
	case errors.As(err, &inv):
		obj.Code = "invalid_document"
		obj.Title = "Invalid JSON:API document"
		obj.Detail = inv.Message
		obj.Source = pointerSource(inv.Path)
	case errors.As(err, &de):
		obj.Code = de.Code
		obj.Title = "Malformed request body"
		obj.Detail = de.Message
		obj.Source = pointerSource(de.Path)
	}
	return ErrorDocument{Errors: []ErrorObject{obj}}
}

func pointerSource(p string) *ErrorSource {
	if p == "" || p == "/" {
		return nil
	}
	return &ErrorSource{Pointer: p}
}

// WriteError writes the errors document for err with the given status.
func WriteError(w http.ResponseWriter, status int, err error) error {
	w.Header().Set("Content-Type", MediaType)
	w.WriteHeader(status)
	return j.NewEncoder(w).Encode(NewErrorDocument(status, err))
}
