package jsonapi

import "fmt"

// PayloadKind selects which entry point validates a value.
type PayloadKind int

const (
	// PayloadDocument is a full top-level document (ValidateDocument).
	PayloadDocument PayloadKind = iota
	// PayloadResource is a resource create/update body (ValidateResourcePayload).
	PayloadResource
	// PayloadRelationship is a relationship update body (ValidateRelationshipPayload).
	PayloadRelationship
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadDocument:
		return "document"
	case PayloadResource:
		return "resource"
	case PayloadRelationship:
		return "relationship"
	}
	return fmt.Sprintf("PayloadKind(%d)", int(k))
}

// ParsePayloadKind maps "document", "resource" or "relationship" to a PayloadKind.
func ParsePayloadKind(s string) (PayloadKind, error) {
	switch s {
	case "document":
		return PayloadDocument, nil
	case "resource":
		return PayloadResource, nil
	case "relationship":
		return PayloadRelationship, nil
	}
	return 0, fmt.Errorf("jsonapi: unknown payload kind %q", s)
}

// Validate dispatches v to the entry point selected by kind.
func Validate(kind PayloadKind, v Value) error {
	switch kind {
	case PayloadDocument:
		return ValidateDocument(v)
	case PayloadResource:
		return ValidateResourcePayload(v)
	case PayloadRelationship:
		return ValidateRelationshipPayload(v)
	}
	return fmt.Errorf("jsonapi: unknown payload kind %d", int(kind))
}

// IsValid reports whether v passes the entry point selected by kind.
func IsValid(kind PayloadKind, v Value) bool {
	return Validate(kind, v) == nil
}
