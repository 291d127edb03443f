/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package observe exports Prometheus metrics for compliance evaluations. It
// is purely observational: the engine never depends on it, and recording a
// report cannot change report bytes.
package observe

import (
	"chainguard.dev/capsulegate/governance/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Global metrics with consistent dimensions
	evaluationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "governance_evaluations_total",
			Help: "Total number of compliance evaluations recorded",
		},
		[]string{"namespace", "compliant"},
	)

	violationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "governance_violations_total",
			Help: "Total number of violations across recorded evaluations",
		},
		[]string{"namespace", "code", "severity"},
	)

	actionCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "governance_recommended_actions_total",
			Help: "Total number of recommended actions by type",
		},
		[]string{"namespace", "type"},
	)

	scoreGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "governance_verdict_score",
			Help: "Most recent verdict score (0-100)",
		},
		[]string{"namespace"},
	)

	confidenceGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "governance_verdict_confidence",
			Help: "Most recent verdict confidence (0.0-1.0)",
		},
		[]string{"namespace"},
	)
)

// Recorder feeds finished reports into the process metrics under a fixed
// namespace label. A host pipeline typically keeps one Recorder per gated
// surface.
type Recorder struct {
	namespace string
}

// NewRecorder creates a recorder for the given namespace.
func NewRecorder(namespace string) *Recorder {
	return &Recorder{namespace: namespace}
}

// Record registers one evaluation outcome.
func (r *Recorder) Record(rep *report.Report) {
	compliant := "false"
	if rep.Verdict.Compliant {
		compliant = "true"
	}
	evaluationCounter.With(prometheus.Labels{
		"namespace": r.namespace,
		"compliant": compliant,
	}).Inc()

	for _, v := range rep.Verdict.Violations {
		violationCounter.With(prometheus.Labels{
			"namespace": r.namespace,
			"code":      string(v.Code),
			"severity":  string(v.Severity),
		}).Inc()
	}

	for _, a := range rep.RecommendedActions {
		actionCounter.With(prometheus.Labels{
			"namespace": r.namespace,
			"type":      string(a.Type),
		}).Inc()
	}

	scoreGauge.With(prometheus.Labels{"namespace": r.namespace}).Set(float64(rep.Verdict.Score))
	confidenceGauge.With(prometheus.Labels{"namespace": r.namespace}).Set(rep.Verdict.Confidence)
}
