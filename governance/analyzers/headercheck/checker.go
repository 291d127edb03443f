/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package headercheck

import (
	"math"
	"regexp"
	"strings"
)

// Options configures a header check.
type Options struct {
	// Strict requires every header to be present for compliance. When false,
	// a single found header is enough.
	Strict bool

	// CaseSensitive disables the case-insensitive heading pattern.
	CaseSensitive bool
}

// Result is the outcome of a header check.
type Result struct {
	// Compliant is the mode-dependent pass flag: in strict mode no header may
	// be missing, otherwise at least one must be found.
	Compliant bool

	// Missing and Found partition the required headers, preserving their
	// configured order.
	Missing []string
	Found   []string

	// Coverage is the found percentage in [0, 100], rounded half-up.
	// An empty required list yields 100.
	Coverage int
}

// Check tests the output for each required heading. A heading is present when
// it appears as a literal substring, or when it is followed by optional
// whitespace and a colon (the pattern match ignores case unless
// CaseSensitive is set).
func Check(required []string, output string, opts Options) Result {
	res := Result{
		Missing: []string{},
		Found:   []string{},
	}

	for _, h := range required {
		if present(h, output, opts.CaseSensitive) {
			res.Found = append(res.Found, h)
		} else {
			res.Missing = append(res.Missing, h)
		}
	}

	if len(required) == 0 {
		res.Coverage = 100
	} else {
		res.Coverage = int(math.Floor(float64(len(res.Found))/float64(len(required))*100 + 0.5))
	}

	if opts.Strict {
		res.Compliant = len(res.Missing) == 0
	} else {
		res.Compliant = len(res.Found) > 0
	}
	return res
}

func present(header, output string, caseSensitive bool) bool {
	if strings.Contains(output, header) {
		return true
	}

	pattern := regexp.QuoteMeta(header) + `\s*:`
	if !caseSensitive {
		pattern = `(?i)` + pattern
	}
	return regexp.MustCompile(pattern).MatchString(output)
}
