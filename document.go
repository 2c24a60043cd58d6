package jsonapi

// ValidateDocument checks the structure of a top-level JSON:API document, as
// sent in a response or as a generic payload. It returns nil when every rule
// holds and an *InvalidDocument for the first violation otherwise.
func ValidateDocument(v Value) error {
	var at *path
	doc, ok := v.(Object)
	if !ok {
		return at.fail(MsgDocumentRoot)
	}
	if !topLevelKeys.intersects(doc) {
		return at.fail(MsgTopLevelMembers)
	}
	if doc.Has("data") && doc.Has("errors") {
		return at.fail(MsgDataAndErrors)
	}
	if doc.Has("included") && !doc.Has("data") {
		return at.fail(MsgIncludedWithoutData)
	}
	for _, m := range [...]struct {
		key   string
		check rule
	}{
		{"data", validatePrimaryData},
		{"errors", validateErrors},
		{"meta", validateMeta},
		{"jsonapi", validateJSONAPIObject},
		{"included", validateIncluded},
		{"links", validateLinks},
	} {
		if err := member(doc, m.key, at, m.check); err != nil {
			return err
		}
	}
	return nil
}

// rule validates v, reporting failures at the location at.
type rule func(v Value, at *path) error

// member applies check to o[key] when the member is present.
func member(o Object, key string, at *path, check rule) error {
	v, ok := o[key]
	if !ok {
		return nil
	}
	return check(v, at.field(key))
}

// members applies check to every value of o in lexical key order.
func members(o Object, at *path, check rule) error {
	for _, k := range o.Keys() {
		if err := check(o[k], at.field(k)); err != nil {
			return err
		}
	}
	return nil
}

func elements(arr Array, at *path, check rule) error {
	for i, e := range arr {
		if err := check(e, at.index(i)); err != nil {
			return err
		}
	}
	return nil
}

func validatePrimaryData(v Value, at *path) error {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Object:
		return validatePrimaryResource(t, at)
	case Array:
		return elements(t, at, validateResource)
	case Bool, Number, String:
	}
	return at.fail(MsgPrimaryData)
}

// validatePrimaryResource checks a resource object that may omit its id, as
// a resource being created does.
func validatePrimaryResource(v Value, at *path) error {
	res, ok := v.(Object)
	if !ok {
		return at.fail(MsgResourceObject)
	}
	if !res.Has("type") {
		return at.fail(MsgResourceType)
	}
	if err := member(res, "attributes", at, validateAttributes); err != nil {
		return err
	}
	if err := member(res, "relationships", at, validateRelationships); err != nil {
		return err
	}
	if err := member(res, "links", at, validateLinks); err != nil {
		return err
	}
	return member(res, "meta", at, validateMeta)
}

// validateResource checks a resource object that must carry an id.
func validateResource(v Value, at *path) error {
	if err := validatePrimaryResource(v, at); err != nil {
		return err
	}
	if res, _ := v.(Object); !res.Has("id") {
		return at.fail(MsgResourceID)
	}
	return nil
}

func validateAttributes(v Value, at *path) error {
	if _, ok := v.(Object); !ok {
		return at.fail(MsgAttributes)
	}
	return nil
}

func validateRelationships(v Value, at *path) error {
	rels, ok := v.(Object)
	if !ok {
		return at.fail(MsgRelationships)
	}
	return members(rels, at, validateRelationship)
}

func validateRelationship(v Value, at *path) error {
	rel, ok := v.(Object)
	if !ok {
		return at.fail(MsgRelationshipObject)
	}
	if len(rel) == 0 {
		return at.fail(MsgRelationshipMembers)
	}
	if err := member(rel, "data", at, validateRelationshipData); err != nil {
		return err
	}
	if err := member(rel, "links", at, validateRelationshipLinks); err != nil {
		return err
	}
	return member(rel, "meta", at, validateMeta)
}

// validateRelationshipData checks resource linkage: null, one identifier or
// an array of identifiers.
func validateRelationshipData(v Value, at *path) error {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Object:
		return validateResourceIdentifier(t, at)
	case Array:
		return elements(t, at, validateResourceIdentifier)
	case Bool, Number, String:
	}
	return at.fail(MsgRelationshipData)
}

func validateResourceIdentifier(v Value, at *path) error {
	ri, ok := v.(Object)
	if !ok {
		return at.fail(MsgIdentifierObject)
	}
	if !resourceIdentifierKeys.containsAll(ri) {
		return at.fail(MsgIdentifierMembers)
	}
	if _, ok := ri["id"].(String); !ok {
		return at.field("id").fail(MsgIdentifierID)
	}
	if _, ok := ri["type"].(String); !ok {
		return at.field("type").fail(MsgIdentifierType)
	}
	return member(ri, "meta", at, validateMeta)
}

func validateRelationshipLinks(v Value, at *path) error {
	if err := validateLinks(v, at); err != nil {
		return err
	}
	if links, _ := v.(Object); !relationshipLinkKeys.intersects(links) {
		return at.fail(MsgRelationshipLinks)
	}
	return nil
}

func validateLinks(v Value, at *path) error {
	links, ok := v.(Object)
	if !ok {
		return at.fail(MsgLinksObject)
	}
	return members(links, at, validateLink)
}

func validateLink(v Value, at *path) error {
	switch v.(type) {
	case String:
		return nil
	case Object:
		// Link objects stay unchecked until json-api/json-api#1103 settles
		// their members.
		return nil
	case nil, Null, Bool, Number, Array:
	}
	return at.fail(MsgLink)
}

func validateMeta(v Value, at *path) error {
	if _, ok := v.(Object); !ok {
		return at.fail(MsgMetaObject)
	}
	return nil
}

func validateJSONAPIObject(v Value, at *path) error {
	obj, ok := v.(Object)
	if !ok {
		return at.fail(MsgJSONAPIObject)
	}
	if !jsonapiObjectKeys.admits(obj) {
		return at.fail(MsgJSONAPIMembers)
	}
	if version, ok := obj["version"]; ok {
		if _, isString := version.(String); !isString {
			return at.field("version").fail(MsgJSONAPIVersion)
		}
	}
	return member(obj, "meta", at, validateMeta)
}

func validateIncluded(v Value, at *path) error {
	included, ok := v.(Array)
	if !ok {
		return at.fail(MsgIncluded)
	}
	return elements(included, at, validateResource)
}

func validateErrors(v Value, at *path) error {
	errs, ok := v.(Array)
	if !ok {
		return at.fail(MsgErrors)
	}
	return elements(errs, at, validateError)
}

// validateError accepts any element: error objects are under-specified as of
// JSON:API 1.0.
func validateError(Value, *path) error { return nil }
