package jsonapi

// keySet is an immutable set of member names. Sets are built once at package
// initialization and never modified afterwards.
type keySet map[string]struct{}

func newKeySet(keys ...string) keySet {
	s := make(keySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

var (
	topLevelKeys           = newKeySet("data", "errors", "meta")
	resourceIdentifierKeys = newKeySet("id", "type")
	relationshipLinkKeys   = newKeySet("self", "related")
	jsonapiObjectKeys      = newKeySet("version", "meta")
)

// intersects reports whether o has at least one member in s.
func (s keySet) intersects(o Object) bool {
	for k := range s {
		if o.Has(k) {
			return true
		}
	}
	return false
}

// containsAll reports whether every name in s is a member of o.
func (s keySet) containsAll(o Object) bool {
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// admits reports whether every member of o is in s.
func (s keySet) admits(o Object) bool {
	for k := range o {
		if _, ok := s[k]; !ok {
			return false
		}
	}
	return true
}
