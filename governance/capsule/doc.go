/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package capsule defines the declarative governance policy document and the
// per-evaluation task descriptor consumed by the evaluation engine. Capsules
// are parsed once, validated structurally, and treated as immutable; policy
// semantics beyond structure are the publisher's responsibility.
package capsule
