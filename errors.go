package jsonapi

import "errors"

// Messages reported by InvalidDocument. Callers may match on the exact text.
const (
	MsgDocumentRoot        = "A JSON object MUST be at the root of every JSON API request and response containing data."
	MsgPayloadRoot         = "A JSON object MUST be at the root of every JSONAPI request and response containing data."
	MsgTopLevelMembers     = `A document MUST contain at least one of ["data", "errors", "meta"].`
	MsgDataAndErrors       = "The members data and errors MUST NOT coexist in the same document."
	MsgIncludedWithoutData = "If a document does not contain a top-level data key, the included member MUST NOT be present either."
	MsgPrimaryData         = "Primary data must be either nil, an object or an array."
	MsgResourceObject      = "A resource object must be an object."
	MsgResourceType        = "A resource object must have a type."
	MsgResourceID          = "A resource object must have an id."
	MsgAttributes          = "The value of the attributes key MUST be an object."
	MsgRelationships       = "The value of the relationships key MUST be an object"
	MsgRelationshipObject  = "A relationship object must be an object."
	MsgRelationshipMembers = `A relationship object MUST contain at least one of ["data", "links", "meta"]`
	MsgRelationshipData    = "Relationship data must be either nil, an object or an array."
	MsgIdentifierObject    = "A resource identifier object must be an object"
	MsgIdentifierMembers   = `A resource identifier object MUST contain ["id", "type"] members.`
	MsgIdentifierID        = "Member id must be a string."
	MsgIdentifierType      = "Member type must be a string."
	MsgRelationshipLinks   = `A relationship link must contain at least one of ["self", "related"].`
	MsgLinksObject         = "A links object must be an object."
	MsgLink                = "The value of a link must be either a string or an object."
	MsgMetaObject          = "A meta object must be an object."
	MsgJSONAPIObject       = "A JSONAPI object must be an object."
	MsgJSONAPIMembers      = `Unexpected members for JSONAPI object: ["version", "meta"].`
	MsgJSONAPIVersion      = "Value of JSONAPI's version member must be a string."
	MsgIncluded            = "Top level included member must be an array."
	MsgErrors              = "Top level errors member must be an array."
	MsgResourcePayload     = "The request MUST include a single resource object as primary data."
	MsgRelationshipPayload = "A relationship update payload must contain primary data."
)

// InvalidDocument reports the first structural rule a document violates.
type InvalidDocument struct {
	Message string
	// Path is the JSON Pointer of the offending value ("/" for the root).
	Path string
}

// Error returns the rule message verbatim.
func (e *InvalidDocument) Error() string { return e.Message }

// AsInvalidDocument extracts an InvalidDocument from err using errors.As.
func AsInvalidDocument(err error) (*InvalidDocument, bool) {
	if err == nil {
		return nil, false
	}
	var inv *InvalidDocument
	if errors.As(err, &inv) {
		return inv, true
	}
	return nil, false
}

// Decode error codes.
const (
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
)

// DecodeError reports input that could not be turned into a Value. It is
// produced by Decode and the Parse helpers, never by the validators.
type DecodeError struct {
	Code    string
	Path    string
	Message string
	Offset  int64 // Byte offset in the input source (-1 when unknown).
}

func (e *DecodeError) Error() string {
	if e.Path == "" || e.Path == "/" {
		return e.Code + ": " + e.Message
	}
	return e.Code + " at " + e.Path + ": " + e.Message
}

// AsDecodeError extracts a DecodeError from err using errors.As.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
