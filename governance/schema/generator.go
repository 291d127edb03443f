/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema publishes JSON Schemas for the governance wire types so
// capsule authors and report consumers can validate documents out of band.
package schema

import (
	"chainguard.dev/capsulegate/governance/capsule"
	"chainguard.dev/capsulegate/governance/report"
	"github.com/invopop/jsonschema"
)

// Generator wraps jsonschema.Reflector with project defaults.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator constructs a generator wired with the defaults we need for
// published schemas. AllowAdditionalProperties matches the protocol's rule
// that unknown future fields are ignored.
func NewGenerator() *Generator {
	return &Generator{
		reflector: jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			ExpandedStruct:             true,
			AllowAdditionalProperties:  true,
			DoNotReference:             true,
		},
	}
}

// Reflect returns the JSON schema for the provided value.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	return g.reflector.Reflect(v)
}

// Report derives the schema of the ComplianceReport wire shape.
func Report() *jsonschema.Schema {
	return NewGenerator().Reflect(&report.Report{})
}

// Capsule derives the schema of the capsule policy document.
func Capsule() *jsonschema.Schema {
	return NewGenerator().Reflect(&capsule.Capsule{})
}

// Task derives the schema of the per-evaluation task descriptor.
func Task() *jsonschema.Schema {
	return NewGenerator().Reflect(&capsule.Task{})
}
