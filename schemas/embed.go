// Package schemas bundles the JSON Schema definitions for the artifacts
// this tool emits.
package schemas

import _ "embed"

// Issues is the JSON Schema for issues.json report files.
//
//go:embed issues.schema.json
var Issues string
