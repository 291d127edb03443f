/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import "sort"

// severityRank orders severities for the normative violation sort.
var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// priorityRank orders priorities for the normative action sort.
var priorityRank = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// SortViolations sorts violations by severity descending, then code ascending.
func SortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if severityRank[violations[i].Severity] != severityRank[violations[j].Severity] {
			return severityRank[violations[i].Severity] > severityRank[violations[j].Severity]
		}
		return violations[i].Code < violations[j].Code
	})
}

// SortActions sorts actions by priority descending, then type ascending, then
// reason ascending.
func SortActions(actions []Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		if priorityRank[actions[i].Priority] != priorityRank[actions[j].Priority] {
			return priorityRank[actions[i].Priority] > priorityRank[actions[j].Priority]
		}
		if actions[i].Type != actions[j].Type {
			return actions[i].Type < actions[j].Type
		}
		return actions[i].Reason < actions[j].Reason
	})
}

// Normalize enforces the normative orderings and replaces nil arrays with
// empty ones so emission is stable. It is the single place ordering is
// applied on the way out; builders may accumulate in any order.
func Normalize(r *Report) {
	SortViolations(r.Verdict.Violations)
	SortActions(r.RecommendedActions)
	sort.Strings(r.Analysis.Escalation.Triggers)

	r.Analysis.Headers.Missing = ensure(r.Analysis.Headers.Missing)
	r.Analysis.Headers.Extra = ensure(r.Analysis.Headers.Extra)
	r.Analysis.Drift.Signals = ensure(r.Analysis.Drift.Signals)
	r.Analysis.RetryPressure.Signals = ensure(r.Analysis.RetryPressure.Signals)
	r.Analysis.Escalation.Triggers = ensure(r.Analysis.Escalation.Triggers)
	r.Verdict.Violations = ensureViolations(r.Verdict.Violations)
	r.RecommendedActions = ensureActions(r.RecommendedActions)
}

func ensure(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func ensureViolations(v []Violation) []Violation {
	if v == nil {
		return []Violation{}
	}
	return v
}

func ensureActions(a []Action) []Action {
	if a == nil {
		return []Action{}
	}
	return a
}
