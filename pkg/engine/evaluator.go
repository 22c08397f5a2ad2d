package engine

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// Evaluator drives a scan: it visits every node of a tree depth-first
// pre-order, builds the per-visit context, runs every surface-
// applicable rule, and streams raw findings into the aggregator.
//
// Fault isolation is the critical property: a panic inside one rule's
// evaluation of one node is recovered, attributed to that rule+node
// pair as a RuleFailure, and the remaining rules on that node and the
// remaining tree continue. Findings the rule yielded before the fault
// are kept. A single defective rule never aborts a scan.
type Evaluator struct {
	registry *Registry
	logger   hclog.Logger
}

// NewEvaluator builds an evaluator over the registry. A nil logger
// disables fault logging.
func NewEvaluator(registry *Registry, logger hclog.Logger) *Evaluator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Evaluator{registry: registry, logger: logger}
}

// Run scans the tree and returns the ordered, deduplicated findings
// plus any recovered rule failures. Configuration errors (nil root,
// invalid surface) fail before traversal begins.
func (e *Evaluator) Run(root *uitree.Node, surface Surface, appName string) (*ScanResult, error) {
	if root == nil {
		return nil, fmt.Errorf("scan root is nil")
	}
	if !surface.Valid() {
		return nil, &UnknownSurfaceError{Name: string(surface)}
	}

	rules := e.registry.ApplicableTo(surface)
	agg := newAggregator()
	result := &ScanResult{Surface: surface, AppName: appName}

	visit := 0
	e.visit(root, nil, rules, surface, appName, inherited{}, 0, &visit, agg, result)

	result.Findings = agg.result()
	result.NodesVisited = visit
	return result, nil
}

// visit evaluates one node and recurses into its children. The
// inherited accumulator is merged once per descent step; traversal
// order defines the canonical visit order used for output ordering.
func (e *Evaluator) visit(node, parent *uitree.Node, rules []Rule, surface Surface, appName string, in inherited, depth int, visit *int, agg *aggregator, result *ScanResult) {
	if node == nil {
		return
	}
	own := in.merge(node)
	ctx := buildContext(node, parent, surface, appName, own, depth)

	visitIdx := *visit
	*visit++

	for _, rule := range rules {
		if failure := e.runRule(rule, node, ctx, visitIdx, agg); failure != nil {
			e.logger.Error("rule evaluation failed",
				"rule", failure.RuleID,
				"node", failure.NodeID,
				"error", failure.Err,
			)
			result.Failures = append(result.Failures, *failure)
		}
	}

	childIn := descend(own, node)
	for _, child := range node.Children {
		e.visit(child, node, rules, surface, appName, childIn, depth+1, visit, agg, result)
	}
}

// runRule pulls one rule's lazy finding sequence for one node,
// normalizing each finding as it is emitted. A panic anywhere in the
// rule — including mid-iteration — is recovered and attributed;
// findings emitted before the fault stay in the aggregator.
func (e *Evaluator) runRule(rule Rule, node *uitree.Node, ctx *RuleContext, visitIdx int, agg *aggregator) (failure *RuleFailure) {
	defer func() {
		if rec := recover(); rec != nil {
			failure = &RuleFailure{
				RuleID: rule.ID(),
				NodeID: node.ID,
				Err:    fmt.Sprintf("%v", rec),
			}
		}
	}()

	seq := rule.Evaluate(node, ctx)
	if seq == nil {
		return nil
	}
	for f := range seq {
		agg.add(visitIdx, normalize(f, rule, node, ctx))
	}
	return nil
}

// normalize fills the fields a rule leaves to the engine: identity,
// severity default, scan constants, and structural metadata copied
// from the context at emission time. Rule-supplied values win.
func normalize(f findings.Finding, rule Rule, node *uitree.Node, ctx *RuleContext) findings.Finding {
	if f.RuleID == "" {
		f.RuleID = rule.ID()
	}
	if f.ControlID == "" {
		f.ControlID = node.ID
	}
	if f.ControlType == "" {
		f.ControlType = node.Type
	}
	if f.ID == "" {
		f.ID = findings.ComposeID(f.RuleID, f.Tag, f.ControlID)
	}
	if f.Severity == "" {
		f.Severity = rule.DefaultSeverity()
	}
	f.Surface = ctx.Surface.String()
	f.AppName = ctx.AppName
	if f.Screen == "" {
		f.Screen = ctx.ScreenName
	}
	if f.EntityName == "" {
		f.EntityName = ctx.EntityName
	}
	if f.TabName == "" {
		f.TabName = ctx.TabName
	}
	if f.SectionName == "" {
		f.SectionName = ctx.SectionName
	}
	return f
}
