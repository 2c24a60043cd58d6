// Package jsonapi validates the structure of JSON:API documents.
//
// The validators work on an already decoded Value and report the first
// structural violation as an *InvalidDocument whose message is stable and
// safe to match on:
//
//   - ValidateDocument checks a top-level document (responses, generic payloads).
//   - ValidateResourcePayload checks a resource create/update request body.
//   - ValidateRelationshipPayload checks a relationship update request body.
//
// Validators are pure functions; they keep no state and may be called
// concurrently.
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations under internal/.
//   - Place JSON/YAML drivers under source/, HTTP adapters under middleware/, and the CLI under cmd/jsonapi-lint.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsonapi.ParseBytes(jsonapi.PayloadDocument, body)
//	if inv, ok := jsonapi.AsInvalidDocument(err); ok {
//		log.Printf("rejected at %s: %s", inv.Path, inv.Message)
//	}
//
//	v, _ = jsonapi.FromAny(decoded)
//	err = jsonapi.ValidateResourcePayload(v)
package jsonapi
