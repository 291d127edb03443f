/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

// SchemaVersion is the frozen report schema version.
const SchemaVersion = "1.0"

// Severity classifies how serious a violation is.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// ViolationCode identifies the condition a violation reports. The enum is
// frozen within the major version: members may be added in minor versions but
// never renamed or removed. HEADER_SCHEMA_EXTRA, SPS_RISKY_OPERATION, and
// RETRY_PRESSURE_HIGH are reserved; no v1.0 detector emits them.
type ViolationCode string

const (
	CodeHeaderSchemaMissing ViolationCode = "HEADER_SCHEMA_MISSING"
	CodeHeaderSchemaExtra   ViolationCode = "HEADER_SCHEMA_EXTRA"
	CodeScopeDrift          ViolationCode = "SEG_SCOPE_DRIFT"
	CodeRiskyOperation      ViolationCode = "SPS_RISKY_OPERATION"
	CodeEscalationMissed    ViolationCode = "FOP_ESCALATION_MISSED"
	CodeFalseEscalation     ViolationCode = "FOP_FALSE_ESCALATION"
	CodeRetryPressureHigh   ViolationCode = "RETRY_PRESSURE_HIGH"
)

// ActionType is the kind of action recommended to the host pipeline.
type ActionType string

const (
	ActionAllow    ActionType = "ALLOW"
	ActionRetry    ActionType = "RETRY"
	ActionEscalate ActionType = "ESCALATE"
	ActionBlock    ActionType = "BLOCK"
)

// Priority ranks a recommended action.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Violation is a single policy violation with optional supporting evidence.
type Violation struct {
	Code     ViolationCode `json:"code"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Evidence []string      `json:"evidence,omitempty"`
}

// Action is a recommended next step for the host pipeline.
type Action struct {
	Type     ActionType        `json:"type"`
	Priority Priority          `json:"priority"`
	Reason   string            `json:"reason"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Headers is the required-headers analysis block.
type Headers struct {
	Compliant bool     `json:"compliant"`
	Coverage  float64  `json:"coverage"`
	Missing   []string `json:"missing"`
	Extra     []string `json:"extra"`
}

// Drift is the scope-drift analysis block.
type Drift struct {
	Score     int      `json:"score"`
	Signals   []string `json:"signals"`
	Incidents int      `json:"incidents"`
}

// RetryPressure is the uncertainty/placeholder analysis block.
type RetryPressure struct {
	Score      int      `json:"score"`
	Signals    []string `json:"signals"`
	Normalized float64  `json:"normalized"`
}

// Escalation is the escalation analysis block. Required and OK are
// three-valued: nil encodes an indeterminate requirement.
type Escalation struct {
	Required   *bool    `json:"required"`
	Detected   bool     `json:"detected"`
	Triggers   []string `json:"triggers"`
	Confidence float64  `json:"confidence"`
	OK         *bool    `json:"ok"`
}

// Analysis groups the four analyzer blocks.
type Analysis struct {
	Headers       Headers       `json:"headers"`
	Drift         Drift         `json:"drift"`
	RetryPressure RetryPressure `json:"retryPressure"`
	Escalation    Escalation    `json:"escalation"`
}

// Deltas holds percentage reductions against a baseline output.
type Deltas struct {
	DriftReduction int `json:"driftReduction"`
	RetryReduction int `json:"retryReduction"`
}

// Verdict is the final scored outcome.
type Verdict struct {
	Score      int         `json:"score"`
	Threshold  int         `json:"threshold"`
	Compliant  bool        `json:"compliant"`
	Confidence float64     `json:"confidence"`
	Violations []Violation `json:"violations"`
}

// TaskRef echoes the evaluated task into the report.
type TaskRef struct {
	ID   string `json:"id"`
	Risk string `json:"risk,omitempty"`
}

// Weights is the component weighting used for aggregation. Present in report
// metadata only when custom weights were configured.
type Weights struct {
	Headers    float64 `json:"headers"`
	Drift      float64 `json:"drift"`
	Retry      float64 `json:"retry"`
	Escalation float64 `json:"escalation"`
}

// Metadata carries provenance for the evaluation.
type Metadata struct {
	CapsuleVersion string   `json:"capsuleVersion"`
	EngineVersion  string   `json:"engineVersion"`
	EvaluatedAt    string   `json:"evaluatedAt"`
	Weights        *Weights `json:"weights,omitempty"`
}

// Report is the user-visible compliance verdict. The shape is frozen:
// consumers must ignore unknown future fields, and producers must emit the
// normative array orderings (see Normalize).
type Report struct {
	SchemaVersion      string   `json:"schemaVersion"`
	Task               TaskRef  `json:"task"`
	Analysis           Analysis `json:"analysis"`
	Deltas             *Deltas  `json:"deltas"`
	Verdict            Verdict  `json:"verdict"`
	RecommendedActions []Action `json:"recommendedActions"`
	Metadata           Metadata `json:"metadata"`
}
