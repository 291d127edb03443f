/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package driftdetect

import (
	"math"
	"sort"
	"strings"
)

// Options configures drift detection.
type Options struct {
	// CaseSensitive disables the default case folding before matching.
	CaseSensitive bool
}

// Result is the outcome of scanning an output against a drift lexicon.
type Result struct {
	// Count is the total number of matches with multiplicity.
	Count int

	// Matches lists the lexicon entries that matched at least once, in the
	// lexicon's first-seen order, deduplicated.
	Matches []string

	// Positions holds the start index of every match in document order.
	Positions []int
}

// Detect counts occurrences of forbidden lexicon entries in the output.
// Matching is plain substring, not word-boundary. Overlapping occurrences of
// the same keyword count individually: the scan advances one byte past each
// match start.
func Detect(lexicon []string, output string, opts Options) Result {
	res := Result{
		Matches:   []string{},
		Positions: []int{},
	}

	haystack := output
	if !opts.CaseSensitive {
		haystack = strings.ToLower(output)
	}

	seen := make(map[string]bool, len(lexicon))
	for _, keyword := range lexicon {
		if keyword == "" || seen[keyword] {
			continue
		}
		seen[keyword] = true

		needle := keyword
		if !opts.CaseSensitive {
			needle = strings.ToLower(keyword)
		}

		matched := false
		for start := 0; start < len(haystack); {
			idx := strings.Index(haystack[start:], needle)
			if idx < 0 {
				break
			}
			pos := start + idx
			res.Count++
			res.Positions = append(res.Positions, pos)
			matched = true
			start = pos + 1
		}
		if matched {
			res.Matches = append(res.Matches, keyword)
		}
	}

	sort.Ints(res.Positions)
	return res
}

// Score converts a drift count into the component score: each incident costs
// 15 points off a clean 100, floored at zero.
func Score(count int) int {
	score := 100 - 15*count
	if score < 0 {
		return 0
	}
	return score
}

// Reduction is the percentage reduction from a baseline incident count to a
// governed one. Two clean texts reduce by 0; drift introduced over a clean
// baseline reads as -100.
func Reduction(baseline, governed int) int {
	switch {
	case baseline == 0 && governed == 0:
		return 0
	case baseline == 0:
		return -100
	}
	return int(math.Floor(float64(baseline-governed)/float64(baseline)*100 + 0.5))
}
