/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Table renders the report as markdown tables for terminals and check-run
// style surfaces. Rendering is presentational only; the canonical form of a
// report is its JSON emission.
func Table(w io.Writer, r *Report) error {
	verdict := "NON-COMPLIANT"
	if r.Verdict.Compliant {
		verdict = "COMPLIANT"
	}
	fmt.Fprintf(w, "Task %s: %s (score %d/%d, confidence %.2f)\n\n",
		r.Task.ID, verdict, r.Verdict.Score, r.Verdict.Threshold, r.Verdict.Confidence)

	scores := newTable([]string{"Dimension", "Score", "Signals"}, w)
	scores.Append([]string{"headers", coverageCell(r.Analysis.Headers), strings.Join(r.Analysis.Headers.Missing, ", ")})
	scores.Append([]string{"drift", fmt.Sprintf("%d", r.Analysis.Drift.Score), strings.Join(r.Analysis.Drift.Signals, ", ")})
	scores.Append([]string{"retryPressure", fmt.Sprintf("%d", r.Analysis.RetryPressure.Score), strings.Join(r.Analysis.RetryPressure.Signals, ", ")})
	scores.Append([]string{"escalation", escalationCell(r.Analysis.Escalation), strings.Join(r.Analysis.Escalation.Triggers, ", ")})
	if err := scores.Render(); err != nil {
		return fmt.Errorf("rendering analysis table: %w", err)
	}

	if len(r.Verdict.Violations) > 0 {
		fmt.Fprintln(w)
		violations := newTable([]string{"Code", "Severity", "Message"}, w)
		for _, v := range r.Verdict.Violations {
			violations.Append([]string{string(v.Code), string(v.Severity), v.Message})
		}
		if err := violations.Render(); err != nil {
			return fmt.Errorf("rendering violations table: %w", err)
		}
	}

	fmt.Fprintln(w)
	actions := newTable([]string{"Action", "Priority", "Reason"}, w)
	for _, a := range r.RecommendedActions {
		actions.Append([]string{string(a.Type), string(a.Priority), a.Reason})
	}
	if err := actions.Render(); err != nil {
		return fmt.Errorf("rendering actions table: %w", err)
	}

	if r.Deltas != nil {
		fmt.Fprintf(w, "\nBaseline deltas: drift %+d%%, retry %+d%%\n",
			r.Deltas.DriftReduction, r.Deltas.RetryReduction)
	}
	return nil
}

func coverageCell(h Headers) string {
	if h.Compliant {
		return "100"
	}
	return fmt.Sprintf("%.0f%% coverage", h.Coverage*100)
}

func escalationCell(e Escalation) string {
	switch {
	case e.OK == nil:
		return "indeterminate"
	case *e.OK:
		return "ok"
	}
	return "mismatch"
}

// newTable creates a table writer with the standard formatting options so all
// rendered reports look alike.
func newTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 100,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
