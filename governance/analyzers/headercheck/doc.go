/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package headercheck tests an output for the presence of required section
// headings (the RFE policy dimension).
package headercheck
