/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"chainguard.dev/capsulegate/governance/analyzers/driftdetect"
	"chainguard.dev/capsulegate/governance/analyzers/retrypressure"
	"chainguard.dev/capsulegate/governance/report"
)

// computeDeltas re-runs the drift and retry analyzers over the baseline using
// the same active lexicon as the governed output and emits the percentage
// reductions.
func (e *Engine) computeDeltas(lexicon []string, drift driftdetect.Result, retry retrypressure.Result, baseline string) *report.Deltas {
	baseDrift := driftdetect.Detect(lexicon, baseline, driftdetect.Options{})
	baseRetry := retrypressure.Analyze(baseline)

	return &report.Deltas{
		DriftReduction: driftdetect.Reduction(baseDrift.Count, drift.Count),
		RetryReduction: retrypressure.Reduction(baseRetry.Normalized, retry.Normalized),
	}
}
