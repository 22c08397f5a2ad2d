package findings

import (
	"fmt"
	"strings"
)

// Severity classifies how serious a finding is. Values are ordered:
// critical is the highest rank, info the lowest.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Rank returns a numeric weight for severity comparisons. Unknown
// severities rank below info so they are never filtered in by accident.
func (s Severity) Rank() int {
	switch Severity(strings.ToLower(string(s))) {
	case SeverityCritical:
		return 5
	case SeverityHigh:
		return 4
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// SarifLevel maps a severity onto the closest SARIF result level.
func (s Severity) SarifLevel() string {
	switch Severity(strings.ToLower(string(s))) {
	case SeverityCritical, SeverityHigh:
		return "error"
	case SeverityMedium:
		return "warning"
	case SeverityLow:
		return "note"
	default:
		return "none"
	}
}

// Finding is one reported instance of a possible accessibility
// violation, tied to a specific node and rule. Instances are never
// mutated after creation.
type Finding struct {
	// ID is the deduplication identity: rule id, optional sub-check
	// tag, and node id. Stable across repeated scans of the same tree.
	ID string `json:"id"`

	RuleID string `json:"rule_id"`
	// Tag distinguishes sub-checks of one rule on the same node. Empty
	// for rules with a single check.
	Tag string `json:"tag,omitempty"`

	Severity Severity `json:"severity"`
	Surface  string   `json:"surface"`
	AppName  string   `json:"app_name"`

	Screen      string `json:"screen,omitempty"`
	ControlID   string `json:"control_id"`
	ControlType string `json:"control_type,omitempty"`
	IssueType   string `json:"issue_type"`

	Message      string `json:"message"`
	Rationale    string `json:"rationale,omitempty"`
	SuggestedFix string `json:"suggested_fix,omitempty"`

	// References carry external-standard identifiers (for example
	// WCAG 2.2 success criteria such as "WCAG22:1.1.1") as opaque tags.
	References []string `json:"references,omitempty"`

	EntityName  string `json:"entity_name,omitempty"`
	TabName     string `json:"tab_name,omitempty"`
	SectionName string `json:"section_name,omitempty"`
}

// ComposeID builds the composite finding identity used for
// deduplication and stable ordering. The tag segment is omitted when
// empty.
func ComposeID(ruleID, tag, nodeID string) string {
	if tag == "" {
		return fmt.Sprintf("%s/%s", ruleID, nodeID)
	}
	return fmt.Sprintf("%s/%s/%s", ruleID, tag, nodeID)
}
