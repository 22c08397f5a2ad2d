package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/rules"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

func sampleResult(t *testing.T) *engine.ScanResult {
	t.Helper()
	button := uitree.New("B1", "Button", nil)
	image := uitree.New("I1", "Image", nil)
	tree := uitree.New("S1", "Screen", nil, button, image)

	result, err := engine.RunScan(tree, engine.SurfaceCanvasApp, "Expenses", rules.BuiltIn())
	require.NoError(t, err)
	require.NotEmpty(t, result.Findings)
	return result
}

func TestNewReport(t *testing.T) {
	result := sampleResult(t)
	r := New(result)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "a11yscan", r.Tool)
	assert.Equal(t, "Expenses", r.AppName)
	assert.Equal(t, "CanvasApp", r.Surface)
	assert.Equal(t, len(result.Findings), r.TotalIssues)

	total := 0
	for _, count := range r.Summary {
		total += count
	}
	assert.Equal(t, r.TotalIssues, total)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(sampleResult(t)).WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "a11yscan", decoded.Tool)
	assert.NotEmpty(t, decoded.Findings)
}

func TestFilterBySeverity(t *testing.T) {
	fs := []findings.Finding{
		{ID: "a", Severity: findings.SeverityHigh},
		{ID: "b", Severity: findings.SeverityLow},
		{ID: "c", Severity: findings.SeverityMedium},
	}

	filtered := FilterBySeverity(fs, findings.SeverityMedium)
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].ID)
	assert.Equal(t, "c", filtered[1].ID)

	assert.Len(t, FilterBySeverity(fs, ""), 3)
	assert.Empty(t, FilterBySeverity(fs, findings.SeverityCritical))
}

func TestWriteSarif(t *testing.T) {
	result := sampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSarif(&buf, result, rules.BuiltIn()))

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]
	assert.Equal(t, "a11yscan", run.Tool.Driver.Name)
	assert.Len(t, run.Tool.Driver.Rules, len(rules.BuiltIn()))
	require.Len(t, run.Results, len(result.Findings))
	assert.NotEmpty(t, run.Results[0].Message.Text)
	assert.Equal(t, "error", run.Results[0].Level)
}
