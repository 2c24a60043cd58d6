// Package source installs the go-json driver as the default JSON driver when
// imported for its side effect:
//
//	import _ "github.com/reoring/jsonapi/source"
package source

import (
	"github.com/reoring/jsonapi"
	drvgojson "github.com/reoring/jsonapi/source/gojson"
)

// init in a separate package to avoid an import cycle in the root package.
func init() { jsonapi.SetJSONDriver(drvgojson.Driver()) }
