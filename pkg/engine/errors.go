package engine

import (
	"fmt"
	"strings"
)

// UnknownSurfaceError reports a surface name outside the closed set.
// It is a configuration error: scans fail fast on it before traversal.
type UnknownSurfaceError struct {
	Name string
}

func (e *UnknownSurfaceError) Error() string {
	known := make([]string, 0, len(Surfaces()))
	for _, s := range Surfaces() {
		known = append(known, string(s))
	}
	return fmt.Sprintf("unknown surface %q (known: %s)", e.Name, strings.Join(known, ", "))
}

// DuplicateRuleError reports two registered rules sharing an ID.
// Raised at registration time, never during a scan.
type DuplicateRuleError struct {
	RuleID string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule id %q is already registered", e.RuleID)
}

// RuleFailure attributes a recovered rule fault to the exact rule and
// node it occurred on. Failures are diagnostics, kept apart from the
// finding stream so a defective rule never shows up as a violation.
type RuleFailure struct {
	RuleID string `json:"rule_id"`
	NodeID string `json:"node_id"`
	Err    string `json:"error"`
}

func (f RuleFailure) Error() string {
	return fmt.Sprintf("rule %q failed on node %q: %s", f.RuleID, f.NodeID, f.Err)
}
