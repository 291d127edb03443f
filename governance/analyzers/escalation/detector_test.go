/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package escalation

import (
	"testing"

	"chainguard.dev/capsulegate/governance/capsule"
	"github.com/google/go-cmp/cmp"
)

func testCapsule(triggers ...string) *capsule.Capsule {
	return &capsule.Capsule{
		Version: "1.0.0",
		Governance: capsule.Governance{
			FOP: capsule.FOP{
				EscalationTriggers:  triggers,
				RequiredForHighRisk: true,
			},
		},
	}
}

func boolPtr(v bool) *bool { return &v }

func TestDetect(t *testing.T) {
	tests := []struct {
		name           string
		capsule        *capsule.Capsule
		task           *capsule.Task
		output         string
		wantRequired   *bool
		wantDetected   bool
		wantTriggers   []string
		wantConfidence float64
		wantOK         *bool
	}{{
		name:           "low risk without triggers is correct",
		capsule:        testCapsule(),
		task:           &capsule.Task{ID: "t", Risk: capsule.RiskLow},
		output:         "Shipped the rename.",
		wantRequired:   boolPtr(false),
		wantTriggers:   []string{},
		wantConfidence: 1.0,
		wantOK:         boolPtr(true),
	}, {
		name:           "high risk defers to capsule gate",
		capsule:        testCapsule(),
		task:           &capsule.Task{ID: "t", Risk: capsule.RiskHigh},
		output:         "Escalating to founder approval before proceeding.",
		wantRequired:   boolPtr(true),
		wantDetected:   true,
		wantTriggers:   []string{"escalat", "founder approval"},
		wantConfidence: 1.0,
		wantOK:         boolPtr(true),
	}, {
		name:           "high risk miss contradicts",
		capsule:        testCapsule(),
		task:           &capsule.Task{ID: "t", Risk: capsule.RiskHigh},
		output:         "Applied the change directly.",
		wantRequired:   boolPtr(true),
		wantTriggers:   []string{},
		wantConfidence: 0.0,
		wantOK:         boolPtr(false),
	}, {
		name:           "medium risk is indeterminate",
		capsule:        testCapsule(),
		task:           &capsule.Task{ID: "t", Risk: capsule.RiskMedium},
		output:         "Applied the change.",
		wantTriggers:   []string{},
		wantConfidence: 0.5,
	}, {
		name:           "explicit task flag wins over risk",
		capsule:        testCapsule(),
		task:           &capsule.Task{ID: "t", Risk: capsule.RiskHigh, RequiresEscalation: boolPtr(false)},
		output:         "Applied the change.",
		wantRequired:   boolPtr(false),
		wantTriggers:   []string{},
		wantConfidence: 1.0,
		wantOK:         boolPtr(true),
	}, {
		name:           "capsule triggers union with defaults",
		capsule:        testCapsule("security review"),
		task:           &capsule.Task{ID: "t", Risk: capsule.RiskMedium},
		output:         "Holding for a security review and human oversight.",
		wantDetected:   true,
		wantTriggers:   []string{"human oversight", "security review"},
		wantConfidence: 0.5,
	}, {
		name:           "matched triggers sort lexicographically",
		capsule:        testCapsule(),
		task:           &capsule.Task{ID: "t", Risk: capsule.RiskMedium},
		output:         "I need approval and human oversight, so escalating via FOP.",
		wantDetected:   true,
		wantTriggers:   []string{"FOP", "escalat", "human oversight", "need approval"},
		wantConfidence: 0.5,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Detect(test.capsule, test.task, test.output)
			want := Result{
				Required:   test.wantRequired,
				Detected:   test.wantDetected,
				Triggers:   test.wantTriggers,
				Confidence: test.wantConfidence,
				OK:         test.wantOK,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Adding a capsule trigger that the output does not contain must not move the
// classification confidence.
func TestConfidenceIgnoresTriggerRatio(t *testing.T) {
	task := &capsule.Task{ID: "t", Risk: capsule.RiskHigh}
	const output = "Escalating to founder approval before proceeding."

	base := Detect(testCapsule(), task, output)
	widened := Detect(testCapsule("board sign-off", "red button"), task, output)

	if base.Confidence != widened.Confidence {
		t.Errorf("confidence moved: %v -> %v", base.Confidence, widened.Confidence)
	}
}
