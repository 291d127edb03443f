/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package engine_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"chainguard.dev/capsulegate/governance/capsule"
	"chainguard.dev/capsulegate/governance/engine"
	"chainguard.dev/capsulegate/governance/report"
	"github.com/google/go-cmp/cmp"
)

type vectorFile struct {
	Protocol      string          `json:"protocol"`
	EvaluatedAt   string          `json:"evaluatedAt"`
	EngineVersion string          `json:"engineVersion"`
	Capsule       json.RawMessage `json:"capsule"`
	Vectors       []vector        `json:"vectors"`
}

type vector struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Task        json.RawMessage `json:"task"`
	Output      string          `json:"output"`
	Baseline    string          `json:"baseline"`
	Weights     *report.Weights `json:"weights"`
	Threshold   *int            `json:"threshold"`
	Expected    json.RawMessage `json:"expected"`
}

func loadVectors(t *testing.T) (*capsule.Capsule, func() time.Time, vectorFile) {
	t.Helper()

	data, err := os.ReadFile("testdata/canonical-v1.json")
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}
	var vf vectorFile
	if err := json.Unmarshal(data, &vf); err != nil {
		t.Fatalf("decoding vectors: %v", err)
	}
	if vf.Protocol != engine.ProtocolVersion {
		t.Fatalf("vector protocol = %q, wanted %q", vf.Protocol, engine.ProtocolVersion)
	}

	c, err := capsule.Parse(vf.Capsule)
	if err != nil {
		t.Fatalf("parsing capsule: %v", err)
	}
	at, err := time.Parse("2006-01-02T15:04:05.000Z", vf.EvaluatedAt)
	if err != nil {
		t.Fatalf("parsing evaluatedAt: %v", err)
	}
	return c, func() time.Time { return at }, vf
}

// TestCanonicalVectors reproduces the eight normative reports by deep JSON
// equality.
func TestCanonicalVectors(t *testing.T) {
	c, now, vf := loadVectors(t)
	if got, want := len(vf.Vectors), 8; got != want {
		t.Fatalf("len(vectors) = %d, wanted %d", got, want)
	}

	for _, v := range vf.Vectors {
		t.Run(v.ID, func(t *testing.T) {
			var task capsule.Task
			if err := json.Unmarshal(v.Task, &task); err != nil {
				t.Fatalf("decoding task: %v", err)
			}

			opts := []engine.Option{
				engine.WithNow(now),
				engine.WithEngineVersion(vf.EngineVersion),
			}
			if v.Weights != nil {
				opts = append(opts, engine.WithWeights(*v.Weights))
			}
			if v.Threshold != nil {
				opts = append(opts, engine.WithThreshold(*v.Threshold))
			}
			eng, err := engine.New(c, opts...)
			if err != nil {
				t.Fatalf("New() = %v", err)
			}

			var r *report.Report
			if v.Baseline != "" {
				r, err = eng.EvaluateWithBaseline(t.Context(), &task, v.Output, v.Baseline)
			} else {
				r, err = eng.Evaluate(t.Context(), &task, v.Output)
			}
			if err != nil {
				t.Fatalf("Evaluate() = %v", err)
			}

			got, err := r.JSON()
			if err != nil {
				t.Fatalf("JSON() = %v", err)
			}

			var gotAny, wantAny any
			if err := json.Unmarshal(got, &gotAny); err != nil {
				t.Fatalf("decoding emitted report: %v", err)
			}
			if err := json.Unmarshal(v.Expected, &wantAny); err != nil {
				t.Fatalf("decoding expected report: %v", err)
			}
			if diff := cmp.Diff(wantAny, gotAny); diff != "" {
				t.Errorf("report mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestVectorRoundTrip serializes each canonical report, parses it back, and
// serializes again: the protocol requires byte identity.
func TestVectorRoundTrip(t *testing.T) {
	c, now, vf := loadVectors(t)

	eng, err := engine.New(c, engine.WithNow(now), engine.WithEngineVersion(vf.EngineVersion))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	for _, v := range vf.Vectors {
		if v.Weights != nil || v.Threshold != nil {
			continue
		}
		t.Run(v.ID, func(t *testing.T) {
			var task capsule.Task
			if err := json.Unmarshal(v.Task, &task); err != nil {
				t.Fatalf("decoding task: %v", err)
			}
			var r *report.Report
			if v.Baseline != "" {
				r, err = eng.EvaluateWithBaseline(t.Context(), &task, v.Output, v.Baseline)
			} else {
				r, err = eng.Evaluate(t.Context(), &task, v.Output)
			}
			if err != nil {
				t.Fatalf("Evaluate() = %v", err)
			}

			first, err := r.JSON()
			if err != nil {
				t.Fatalf("JSON() = %v", err)
			}
			parsed, err := report.Parse(first)
			if err != nil {
				t.Fatalf("Parse() = %v", err)
			}
			second, err := parsed.JSON()
			if err != nil {
				t.Fatalf("JSON() = %v", err)
			}
			if !bytes.Equal(first, second) {
				t.Errorf("round trip changed bytes:\nfirst:  %s\nsecond: %s", first, second)
			}
		})
	}
}

// TestDeterminism evaluates the same inputs twice and requires deep-equal
// reports.
func TestDeterminism(t *testing.T) {
	c, now, vf := loadVectors(t)

	eng, err := engine.New(c, engine.WithNow(now), engine.WithEngineVersion(vf.EngineVersion))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	task := &capsule.Task{ID: "determinism-001", Risk: capsule.RiskHigh}
	const output = "Plan: Change the index.\nGates: None.\nAction: Escalating for founder approval first.\nLogs: Pending."

	a, err := eng.Evaluate(t.Context(), task, output)
	if err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}
	b, err := eng.Evaluate(t.Context(), task, output)
	if err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("reports differ across calls (-first +second):\n%s", diff)
	}
}
