/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package retrypressure

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// CatalogVersion tags the frozen phrase catalogs below. The catalogs are wire
// protocol: changing an entry changes report bytes.
const CatalogVersion = "1.0"

// UncertaintyPhrases is the frozen catalog of hedging phrases, matched
// case-insensitively anywhere in the output. Each phrase contributes at most
// once to the uncertainty count regardless of how often it occurs.
var UncertaintyPhrases = []string{
	"not sure",
	"unclear",
	"maybe",
	"might be",
	"possibly",
	"i think",
	"i believe",
	"could be",
	"hard to say",
	"difficult to determine",
	"should i",
	"should we",
}

// placeholderPattern matches the frozen placeholder markers on word
// boundaries. Every textual match counts.
var placeholderPattern = regexp.MustCompile(`(?i)\b(TODO|TBD|FIXME)\b`)

// Result is the outcome of a retry-pressure analysis.
type Result struct {
	// UncertaintyCount is the number of distinct uncertainty phrases present.
	UncertaintyCount int

	// TodoCount is the number of placeholder matches with multiplicity.
	TodoCount int

	// Signals lists the matched literal substrings as they appear in the
	// output, deduplicated by surface form, in ascending order of first
	// occurrence.
	Signals []string

	// Normalized is min(0.1*UncertaintyCount + 0.2*TodoCount, 1.0), before
	// the two-decimal emission rounding.
	Normalized float64
}

type signal struct {
	surface string
	pos     int
}

// Analyze measures uncertainty-phrase and placeholder density in the output.
func Analyze(output string) Result {
	var res Result
	lowered := strings.ToLower(output)

	var signals []signal
	for _, phrase := range UncertaintyPhrases {
		idx := strings.Index(lowered, phrase)
		if idx < 0 {
			continue
		}
		res.UncertaintyCount++
		signals = append(signals, signal{
			surface: output[idx : idx+len(phrase)],
			pos:     idx,
		})
	}

	for _, loc := range placeholderPattern.FindAllStringIndex(output, -1) {
		res.TodoCount++
		signals = append(signals, signal{
			surface: output[loc[0]:loc[1]],
			pos:     loc[0],
		})
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].pos < signals[j].pos
	})

	res.Signals = []string{}
	seen := make(map[string]bool, len(signals))
	for _, s := range signals {
		if seen[s.surface] {
			continue
		}
		seen[s.surface] = true
		res.Signals = append(res.Signals, s.surface)
	}

	res.Normalized = math.Min(0.1*float64(res.UncertaintyCount)+0.2*float64(res.TodoCount), 1.0)
	return res
}

// Score converts a normalized pressure value into the component score.
func Score(normalized float64) int {
	score := 100 - int(math.Floor(normalized*100+0.5))
	if score < 0 {
		return 0
	}
	return score
}

// Reduction is the percentage reduction from a baseline normalized pressure
// to a governed one. Two clean texts reduce by 0; pressure introduced over a
// clean baseline reads as -100.
func Reduction(baseline, governed float64) int {
	switch {
	case baseline == 0 && governed == 0:
		return 0
	case baseline == 0:
		return -100
	}
	return int(math.Floor((baseline-governed)/baseline*100 + 0.5))
}
