/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package engine evaluates a model output against a governance capsule and a
task descriptor, producing a ComplianceReport.

An Engine is constructed once per capsule and reused across evaluations. Each
evaluation is a pure function of the capsule, the task, the output, the
optional baseline, and the engine's configuration (threshold, weights, clock,
version string); two evaluations with identical inputs produce deep-equal
reports. The engine holds no state between calls, so a single Engine may be
shared by concurrent goroutines.

Input validation uses a small tagged error taxonomy (type, validation,
configuration); analyzer logic never fails. Malformed or adversarial output
text is scored, not rejected.
*/
package engine
