/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package headercheck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheck(t *testing.T) {
	required := []string{"Plan", "Gates", "Action", "Logs"}

	tests := []struct {
		name     string
		required []string
		output   string
		opts     Options
		want     Result
	}{{
		name:     "all present as substrings",
		required: required,
		output:   "Plan: a\nGates: b\nAction: c\nLogs: d",
		want: Result{
			Compliant: true,
			Missing:   []string{},
			Found:     []string{"Plan", "Gates", "Action", "Logs"},
			Coverage:  100,
		},
	}, {
		name:     "lowercase heading matches via colon pattern",
		required: []string{"Plan"},
		output:   "plan: do the thing",
		want: Result{
			Compliant: true,
			Missing:   []string{},
			Found:     []string{"Plan"},
			Coverage:  100,
		},
	}, {
		name:     "heading with space before colon",
		required: []string{"Plan"},
		output:   "plan : do the thing",
		want: Result{
			Compliant: true,
			Missing:   []string{},
			Found:     []string{"Plan"},
			Coverage:  100,
		},
	}, {
		name:     "lowercase without colon does not match",
		required: []string{"Plan"},
		output:   "the plan is simple",
		want: Result{
			Compliant: false,
			Missing:   []string{"Plan"},
			Found:     []string{},
			Coverage:  0,
		},
	}, {
		name:     "case sensitive pattern",
		required: []string{"Plan"},
		output:   "plan: do the thing",
		opts:     Options{CaseSensitive: true},
		want: Result{
			Compliant: false,
			Missing:   []string{"Plan"},
			Found:     []string{},
			Coverage:  0,
		},
	}, {
		name:     "partial coverage rounds half up",
		required: []string{"Plan", "Gates", "Action"},
		output:   "Plan: a\nGates: b",
		want: Result{
			Compliant: true,
			Missing:   []string{"Action"},
			Found:     []string{"Plan", "Gates"},
			Coverage:  67,
		},
	}, {
		name:     "strict mode requires all",
		required: []string{"Plan", "Gates"},
		output:   "Plan: a",
		opts:     Options{Strict: true},
		want: Result{
			Compliant: false,
			Missing:   []string{"Gates"},
			Found:     []string{"Plan"},
			Coverage:  50,
		},
	}, {
		name:     "empty required list covers fully",
		required: nil,
		output:   "anything",
		want: Result{
			Compliant: false,
			Missing:   []string{},
			Found:     []string{},
			Coverage:  100,
		},
	}, {
		name:     "regex metacharacters are escaped",
		required: []string{"Q&A (raw)"},
		output:   "q&a (raw): questions",
		want: Result{
			Compliant: true,
			Missing:   []string{},
			Found:     []string{"Q&A (raw)"},
			Coverage:  100,
		},
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Check(test.required, test.output, test.opts)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Check() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
