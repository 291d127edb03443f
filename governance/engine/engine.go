/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"context"
	"math"
	"time"

	"chainguard.dev/capsulegate/governance/capsule"
	"chainguard.dev/capsulegate/governance/report"
	"github.com/chainguard-dev/clog"
)

// timeFormat is the ISO-8601 form with millisecond precision that reports
// carry in metadata.evaluatedAt.
const timeFormat = "2006-01-02T15:04:05.000Z"

// Engine evaluates outputs against a single capsule.
type Engine struct {
	capsule       *capsule.Capsule
	threshold     int
	weights       report.Weights
	customWeights bool
	enforce       bool
	now           func() time.Time
	engineVersion string
}

// Option configures an Engine.
type Option func(*Engine) error

// WithThreshold overrides the compliance threshold. The threshold must be in
// [0, 100].
func WithThreshold(threshold int) Option {
	return func(e *Engine) error {
		if threshold < 0 || threshold > 100 {
			return configurationErrorf("threshold %d out of range [0, 100]", threshold)
		}
		e.threshold = threshold
		return nil
	}
}

// WithWeights overrides the component weighting. The weights must sum to 1.0
// within a tolerance of 0.001, and their presence is echoed into report
// metadata.
func WithWeights(w report.Weights) Option {
	return func(e *Engine) error {
		sum := w.Headers + w.Drift + w.Retry + w.Escalation
		if math.Abs(sum-1.0) > weightSumTolerance {
			return configurationErrorf("weights sum to %v, expected 1.0", sum)
		}
		e.weights = w
		e.customWeights = true
		return nil
	}
}

// WithEnforce records the host's enforcement intent. Accepted for forward
// compatibility; it has no observable effect on reports in protocol v1.0.
func WithEnforce(enforce bool) Option {
	return func(e *Engine) error {
		e.enforce = enforce
		return nil
	}
}

// WithNow injects the clock used for metadata.evaluatedAt. Hosts that need
// reproducible reports inject a fixed clock.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) error {
		if now == nil {
			return configurationErrorf("now function must not be nil")
		}
		e.now = now
		return nil
	}
}

// WithEngineVersion overrides the engine version string echoed into report
// metadata.
func WithEngineVersion(version string) Option {
	return func(e *Engine) error {
		if version == "" {
			return configurationErrorf("engine version must not be empty")
		}
		e.engineVersion = version
		return nil
	}
}

// New constructs an Engine for the given capsule. Construction fails with a
// type error when the capsule is missing, a validation error when it is
// structurally invalid, and a configuration error when an option is invalid.
func New(c *capsule.Capsule, opts ...Option) (*Engine, error) {
	if c == nil {
		return nil, typeErrorf("capsule is required")
	}
	if err := c.Validate(); err != nil {
		return nil, validationErrorf("invalid capsule: %v", err)
	}

	e := &Engine{
		capsule:       c,
		threshold:     DefaultThreshold,
		weights:       DefaultWeights,
		now:           time.Now,
		engineVersion: DefaultEngineVersion,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Evaluate scores a single output against the engine's capsule and the given
// task, producing a ComplianceReport. The inputs are only read; the report
// shares no memory with them.
func (e *Engine) Evaluate(ctx context.Context, task *capsule.Task, output string) (*report.Report, error) {
	return e.evaluate(ctx, task, output, nil)
}

// EvaluateWithBaseline scores an output like Evaluate and additionally
// re-runs the drift and retry analyzers over the baseline, emitting
// percentage reductions in the report's deltas block.
func (e *Engine) EvaluateWithBaseline(ctx context.Context, task *capsule.Task, output, baseline string) (*report.Report, error) {
	if baseline == "" {
		return nil, typeErrorf("baseline must be a non-empty string")
	}
	return e.evaluate(ctx, task, output, &baseline)
}

func (e *Engine) evaluate(ctx context.Context, task *capsule.Task, output string, baseline *string) (*report.Report, error) {
	if task == nil || task.ID == "" {
		return nil, typeErrorf("task id is required")
	}
	if output == "" {
		return nil, typeErrorf("output must be a non-empty string")
	}
	if err := task.Validate(); err != nil {
		return nil, validationErrorf("invalid task: %v", err)
	}

	r := e.aggregate(task, output, baseline)
	report.Normalize(r)

	clog.FromContext(ctx).
		With("task", task.ID).
		With("score", r.Verdict.Score).
		With("compliant", r.Verdict.Compliant).
		Debug("evaluated output")
	return r, nil
}

// lexicon returns the active drift lexicon: a task-supplied lexicon overrides
// the capsule's keywords for that evaluation.
func (e *Engine) lexicon(task *capsule.Task) []string {
	if task.DriftLexicon != nil {
		return task.DriftLexicon
	}
	return e.capsule.Governance.SEG.DriftKeywords
}
