/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capsule

import (
	"encoding/json"
	"fmt"
	"os"
)

// Capsule is a declarative governance policy value. It is immutable once
// parsed; the evaluation engine only ever reads it.
type Capsule struct {
	// Version is the policy version string, echoed into report metadata.
	Version string `json:"version"`

	// Governance holds the policy dimensions consumed by the engine.
	Governance Governance `json:"governance"`
}

// Governance groups the policy dimensions. Only RFE, SEG, and FOP are
// operative in protocol v1.0; SPS is reserved.
type Governance struct {
	RFE RFE `json:"RFE"`
	SEG SEG `json:"SEG"`
	FOP FOP `json:"FOP"`
}

// RFE configures the required-headers dimension.
type RFE struct {
	// RequiredHeaders is the ordered list of heading strings an output
	// must carry. An empty list yields full coverage, but the engine's
	// non-strict check then finds no header and reports the headers block as
	// non-compliant.
	RequiredHeaders []string `json:"requiredHeaders"`
}

// SEG configures the scope-drift dimension.
type SEG struct {
	// DriftKeywords is the default scope-creep lexicon. A task may override
	// it per evaluation via Task.DriftLexicon.
	DriftKeywords []string `json:"driftKeywords"`
}

// FOP configures the founder-oversight (escalation) dimension.
type FOP struct {
	// EscalationTriggers are capsule-supplied trigger phrases, unioned with
	// the protocol's frozen default set.
	EscalationTriggers []string `json:"escalationTriggers"`

	// RequiredForHighRisk gates HIGH-risk tasks: when true, a HIGH-risk task
	// with no explicit requiresEscalation must escalate.
	RequiredForHighRisk bool `json:"requiredForHighRisk"`
}

// Parse decodes a capsule from JSON and checks structural sanity.
// Unknown fields are ignored so future policy versions remain readable.
func Parse(data []byte) (*Capsule, error) {
	var probe struct {
		Governance json.RawMessage `json:"governance"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding capsule: %w", err)
	}
	if probe.Governance == nil {
		return nil, fmt.Errorf("capsule governance block is required")
	}

	var c Capsule
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding capsule: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseFile reads and parses a capsule from a file on disk.
func ParseFile(path string) (*Capsule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capsule: %w", err)
	}
	return Parse(data)
}

// Validate checks the capsule for structural sanity. Policy semantics beyond
// structure are the publisher's responsibility.
func (c *Capsule) Validate() error {
	if c == nil {
		return fmt.Errorf("capsule is required")
	}
	if c.Version == "" {
		return fmt.Errorf("capsule version is required")
	}
	return nil
}
