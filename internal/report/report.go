// Package report renders scan results as JSON or SARIF documents.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/findings"
)

const toolName = "a11yscan"

// Report is the JSON report envelope: scan identity, the ordered
// findings, severity totals, and any rule-failure diagnostics.
type Report struct {
	ID          string    `json:"id"`
	Tool        string    `json:"tool"`
	GeneratedAt time.Time `json:"generated_at"`

	AppName string `json:"app_name"`
	Surface string `json:"surface"`

	NodesVisited int            `json:"nodes_visited"`
	TotalIssues  int            `json:"total_issues"`
	Summary      map[string]int `json:"summary"`

	Findings []findings.Finding   `json:"findings"`
	Failures []engine.RuleFailure `json:"failures,omitempty"`
}

// New assembles a report from a scan result.
func New(result *engine.ScanResult) *Report {
	r := &Report{
		ID:           uuid.NewString(),
		Tool:         toolName,
		GeneratedAt:  time.Now().UTC(),
		AppName:      result.AppName,
		Surface:      result.Surface.String(),
		NodesVisited: result.NodesVisited,
		TotalIssues:  len(result.Findings),
		Summary:      make(map[string]int),
		Findings:     result.Findings,
		Failures:     result.Failures,
	}
	for _, f := range result.Findings {
		r.Summary[string(f.Severity)]++
	}
	return r
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FilterBySeverity drops findings below the minimum severity. An
// empty minimum keeps everything. Filtering is a reporting concern:
// the engine's aggregator never filters.
func FilterBySeverity(fs []findings.Finding, min findings.Severity) []findings.Finding {
	if min == "" {
		return fs
	}
	threshold := min.Rank()
	filtered := make([]findings.Finding, 0, len(fs))
	for _, f := range fs {
		if f.Severity.Rank() >= threshold {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
