/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package report defines the frozen ComplianceReport shape, its enums, and the
normative emission rules.

The report schema is wire protocol: field names, enum members, array
orderings, and rounding behavior are all fixed for a major version. Arrays
are ordered by Normalize — violations by severity descending then code
ascending, recommended actions by priority descending then type then reason,
escalation triggers lexicographically — and every emitted confidence or
normalized value is rounded half-up to two decimals.

Producers build a Report in whatever order is convenient, call Normalize once,
and emit with JSON. Consumers parsing reports from newer minor versions must
ignore fields they do not know.
*/
package report
