/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import "math"

// Round is the protocol's integer rounding: halves round up toward positive
// infinity, so Round(0.5) = 1 and Round(-0.5) = 0.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Round2 rounds to two decimals with the same half-up rule. Used for every
// emitted confidence and normalized value.
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// Clamp01 clamps x into [0, 1].
func Clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}
