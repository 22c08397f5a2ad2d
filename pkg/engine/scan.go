// Package engine evaluates a UI element tree against a set of
// independently-authored accessibility rules and produces a stable,
// deduplicated collection of findings.
//
// The engine understands nothing about individual heuristics: rules
// are black-box implementations of the Rule contract, filtered by
// surface, run once per node in depth-first pre-order, and isolated
// from each other's faults.
package engine

import (
	"github.com/hashicorp/go-hclog"

	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// ScanResult is the output of one scan.
type ScanResult struct {
	Surface Surface `json:"surface"`
	AppName string  `json:"app_name"`

	// Findings is the ordered, deduplicated violation collection.
	Findings []findings.Finding `json:"findings"`

	// Failures lists recovered rule faults, attributed per rule+node.
	// They are diagnostics, never mixed into Findings.
	Failures []RuleFailure `json:"failures,omitempty"`

	NodesVisited int `json:"nodes_visited"`
}

// Scanner bundles a registry and logger for callers that run many
// scans against one rule set.
type Scanner struct {
	registry *Registry
	logger   hclog.Logger
}

// NewScanner builds a scanner from an already-populated registry.
func NewScanner(registry *Registry, logger hclog.Logger) *Scanner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scanner{registry: registry, logger: logger}
}

// Scan evaluates one tree.
func (s *Scanner) Scan(root *uitree.Node, surface Surface, appName string) (*ScanResult, error) {
	return NewEvaluator(s.registry, s.logger).Run(root, surface, appName)
}

// RunScan is the one-shot entry point: it builds a registry from the
// given rules, validates the configuration (duplicate rule IDs and
// unknown surfaces fail fast, before traversal), and scans the tree.
func RunScan(root *uitree.Node, surface Surface, appName string, rules []Rule) (*ScanResult, error) {
	registry := NewRegistry()
	if err := registry.Register(rules...); err != nil {
		return nil, err
	}
	return NewScanner(registry, nil).Scan(root, surface, appName)
}
