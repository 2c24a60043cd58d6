package jsonapi

// ValidateResourcePayload checks the body of a request that creates or
// updates a resource: an object whose only member is data, holding a single
// resource object. The resource may omit its id.
func ValidateResourcePayload(v Value) error {
	var at *path
	doc, ok := v.(Object)
	if !ok {
		return at.fail(MsgPayloadRoot)
	}
	data, isObject := doc["data"].(Object)
	if len(doc) != 1 || !isObject {
		return at.fail(MsgResourcePayload)
	}
	return validatePrimaryResource(data, at.field("data"))
}
