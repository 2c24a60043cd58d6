package jsonapi

// ValidateRelationshipPayload checks the body of a request that updates a
// relationship: an object whose only member is data, holding resource
// linkage (null, an identifier, or an array of identifiers).
func ValidateRelationshipPayload(v Value) error {
	var at *path
	doc, ok := v.(Object)
	if !ok {
		return at.fail(MsgPayloadRoot)
	}
	if len(doc) != 1 || !doc.Has("data") {
		return at.fail(MsgRelationshipPayload)
	}
	return validateRelationshipData(doc["data"], at.field("data"))
}
