/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package retrypressure scores uncertainty phrases and placeholder markers in
// an output. High pressure suggests the upstream model should be retried
// rather than trusted.
package retrypressure
