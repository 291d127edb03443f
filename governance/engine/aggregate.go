/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"fmt"
	"math"

	"chainguard.dev/capsulegate/governance/analyzers/driftdetect"
	"chainguard.dev/capsulegate/governance/analyzers/escalation"
	"chainguard.dev/capsulegate/governance/analyzers/headercheck"
	"chainguard.dev/capsulegate/governance/analyzers/retrypressure"
	"chainguard.dev/capsulegate/governance/capsule"
	"chainguard.dev/capsulegate/governance/report"
)

// aggregate runs the four analyzers over the output and assembles the report:
// the analysis block, the weighted verdict with severity caps, the frozen
// confidence, the recommended action, and the optional baseline deltas.
func (e *Engine) aggregate(task *capsule.Task, output string, baseline *string) *report.Report {
	lexicon := e.lexicon(task)

	headers := headercheck.Check(e.capsule.Governance.RFE.RequiredHeaders, output, headercheck.Options{})
	drift := driftdetect.Detect(lexicon, output, driftdetect.Options{})
	retry := retrypressure.Analyze(output)
	esc := escalation.Detect(e.capsule, task, output)

	analysis := report.Analysis{
		Headers: report.Headers{
			Compliant: headers.Compliant,
			Coverage:  float64(headers.Coverage) / 100,
			Missing:   headers.Missing,
			Extra:     []string{},
		},
		Drift: report.Drift{
			Score:     driftdetect.Score(drift.Count),
			Signals:   drift.Matches,
			Incidents: drift.Count,
		},
		RetryPressure: report.RetryPressure{
			Score:      retrypressure.Score(retry.Normalized),
			Signals:    retry.Signals,
			Normalized: report.Round2(retry.Normalized),
		},
		Escalation: report.Escalation{
			Required:   esc.Required,
			Detected:   esc.Detected,
			Triggers:   esc.Triggers,
			Confidence: esc.Confidence,
			OK:         esc.OK,
		},
	}

	violations := collectViolations(analysis, esc)
	report.SortViolations(violations)

	raw := e.rawScore(analysis)
	score, compliant := applyCaps(raw, e.threshold, violations)

	verdict := report.Verdict{
		Score:      score,
		Threshold:  e.threshold,
		Compliant:  compliant,
		Confidence: confidence(analysis),
		Violations: violations,
	}

	var deltas *report.Deltas
	if baseline != nil {
		deltas = e.computeDeltas(lexicon, drift, retry, *baseline)
	}

	r := &report.Report{
		SchemaVersion: report.SchemaVersion,
		Task: report.TaskRef{
			ID:   task.ID,
			Risk: string(task.Risk),
		},
		Analysis: analysis,
		Deltas:   deltas,
		Verdict:  verdict,
		Metadata: report.Metadata{
			CapsuleVersion: e.capsule.Version,
			EngineVersion:  e.engineVersion,
			EvaluatedAt:    e.now().UTC().Format(timeFormat),
		},
	}
	if e.customWeights {
		w := e.weights
		r.Metadata.Weights = &w
	}
	r.RecommendedActions = []report.Action{e.recommendAction(verdict, analysis, deltas != nil)}
	return r
}

// rawScore applies the weighted aggregation over the four component scores,
// rounding halves up.
func (e *Engine) rawScore(a report.Analysis) int {
	headerScore := componentHeaderScore(a.Headers)
	escalationScore := componentEscalationScore(a.Escalation)

	weighted := float64(headerScore)*e.weights.Headers +
		float64(a.Drift.Score)*e.weights.Drift +
		float64(a.RetryPressure.Score)*e.weights.Retry +
		float64(escalationScore)*e.weights.Escalation
	return report.Round(weighted)
}

// componentHeaderScore is 100 for a compliant header check, otherwise the
// coverage ratio floored into [0, 100].
func componentHeaderScore(h report.Headers) int {
	if h.Compliant {
		return 100
	}
	return int(math.Floor(h.Coverage * 100))
}

// componentEscalationScore maps the three-valued classification onto a score:
// a correct classification is worth 100, a contradiction 0, and an
// indeterminate requirement a neutral 50.
func componentEscalationScore(e report.Escalation) int {
	switch {
	case e.OK == nil:
		return 50
	case *e.OK:
		return 100
	}
	return 0
}

// collectViolations emits at most one violation per condition from the frozen
// taxonomy. Retry pressure lowers the score but never violates in v1.0.
func collectViolations(a report.Analysis, esc escalation.Result) []report.Violation {
	violations := []report.Violation{}

	if !a.Headers.Compliant {
		violations = append(violations, report.Violation{
			Code:     report.CodeHeaderSchemaMissing,
			Severity: report.SeverityHigh,
			Message:  msgHeaderSchemaMissing,
			Evidence: a.Headers.Missing,
		})
	}

	if a.Drift.Incidents >= scopeDriftViolationThreshold {
		violations = append(violations, report.Violation{
			Code:     report.CodeScopeDrift,
			Severity: report.SeverityHigh,
			Message:  msgScopeDrift,
			Evidence: a.Drift.Signals,
		})
	}

	if esc.OK != nil && !*esc.OK {
		if *esc.Required {
			violations = append(violations, report.Violation{
				Code:     report.CodeEscalationMissed,
				Severity: report.SeverityCritical,
				Message:  msgEscalationMissed,
				Evidence: []string{evidenceRequiredTrue, evidenceDetectedFalse},
			})
		} else {
			evidence := append([]string{evidenceRequiredFalse, evidenceDetectedTrue}, esc.Triggers...)
			violations = append(violations, report.Violation{
				Code:     report.CodeFalseEscalation,
				Severity: report.SeverityLow,
				Message:  msgFalseEscalation,
				Evidence: evidence,
			})
		}
	}

	return violations
}

// applyCaps enforces the severity score caps: any CRITICAL violation caps the
// score at 49 and forces non-compliance; otherwise any HIGH violation caps it
// at 79. Compliance then requires meeting the threshold.
func applyCaps(raw, threshold int, violations []report.Violation) (int, bool) {
	var hasCritical, hasHigh bool
	for _, v := range violations {
		switch v.Severity {
		case report.SeverityCritical:
			hasCritical = true
		case report.SeverityHigh:
			hasHigh = true
		}
	}

	score := raw
	switch {
	case hasCritical:
		score = min(score, criticalScoreCap)
	case hasHigh:
		score = min(score, highScoreCap)
	}

	compliant := score >= threshold && !hasCritical
	return score, compliant
}

// confidence is the frozen v1.0 structural-share calculation. The headers
// check is the single structural signal. When retry signals are present they
// dominate the heuristic side and it collapses to one; otherwise drift and
// retry each contribute one, and a non-contradicted escalation contributes
// one plus its unique trigger count. Baselines, custom weights, and
// indeterminate escalation never alter the sum.
func confidence(a report.Analysis) float64 {
	const structural = 1.0

	var heuristic float64
	if len(a.RetryPressure.Signals) > 0 {
		heuristic = 1
	} else {
		heuristic = 2
		if a.Escalation.OK == nil || *a.Escalation.OK {
			heuristic += 1 + float64(len(a.Escalation.Triggers))
		}
	}

	return report.Clamp01(report.Round2(structural / (structural + heuristic)))
}

// recommendAction selects the single recommended action from the frozen
// reason catalog, evaluating the protocol's decision table top-down.
func (e *Engine) recommendAction(v report.Verdict, a report.Analysis, hasBaseline bool) report.Action {
	if !v.Compliant {
		for _, violation := range v.Violations {
			if violation.Severity == report.SeverityCritical {
				return report.Action{
					Type:     report.ActionBlock,
					Priority: report.PriorityUrgent,
					Reason:   reasonBlockCritical,
				}
			}
		}
		if len(v.Violations) > 0 {
			primary := v.Violations[0]
			reason := primary.Message
			if primary.Code == report.CodeScopeDrift {
				reason = reasonRetryScopeDrift
			}
			return report.Action{
				Type:     report.ActionRetry,
				Priority: report.PriorityMedium,
				Reason:   reason,
			}
		}
		return report.Action{
			Type:     report.ActionRetry,
			Priority: report.PriorityMedium,
			Reason:   reasonBelowThreshold,
		}
	}

	switch {
	case a.Escalation.Required != nil && *a.Escalation.Required && a.Escalation.Detected:
		return report.Action{
			Type:     report.ActionEscalate,
			Priority: report.PriorityHigh,
			Reason:   reasonEscalateCorrect,
		}
	case e.customWeights:
		return report.Action{
			Type:     report.ActionAllow,
			Priority: report.PriorityLow,
			Reason:   fmt.Sprintf(reasonCustomWeights, report.Round(e.weights.Drift*100)),
		}
	case hasBaseline:
		return report.Action{
			Type:     report.ActionAllow,
			Priority: report.PriorityLow,
			Reason:   reasonBaselineImprove,
		}
	case v.Score == v.Threshold && v.Threshold == DefaultThreshold:
		return report.Action{
			Type:     report.ActionAllow,
			Priority: report.PriorityLow,
			Reason:   reasonRoundedToPass,
		}
	case a.Escalation.OK == nil:
		return report.Action{
			Type:     report.ActionAllow,
			Priority: report.PriorityLow,
			Reason:   reasonIndeterminate,
		}
	}
	return report.Action{
		Type:     report.ActionAllow,
		Priority: report.PriorityLow,
		Reason:   reasonFullyCompliant,
	}
}
