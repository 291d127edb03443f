/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package driftdetect counts occurrences of forbidden scope-creep keywords in
// an output (the SEG policy dimension).
package driftdetect
