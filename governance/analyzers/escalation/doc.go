/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package escalation detects whether an output defers to human oversight and
// classifies that against the task's escalation requirement (the FOP policy
// dimension).
package escalation
