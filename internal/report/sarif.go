package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/a11yscan/a11yscan/pkg/engine"
)

const toolURI = "https://github.com/a11yscan/a11yscan"

// WriteSarif renders the scan result as a SARIF 2.1.0 document. Rule
// metadata comes from the rules that ran; findings map one result
// each, with WCAG references and structural metadata carried in the
// result's property bag.
func WriteSarif(w io.Writer, result *engine.ScanResult, rules []engine.Rule) error {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)

	for _, rule := range rules {
		run.AddRule(rule.ID()).
			WithDescription(rule.Description()).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: rule.DefaultSeverity().SarifLevel(),
			})
	}

	for _, f := range result.Findings {
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(controlURI(f.Screen, f.ControlID))),
		)

		message := f.Message
		if f.SuggestedFix != "" {
			message = fmt.Sprintf("%s. Suggested fix: %s", f.Message, f.SuggestedFix)
		}

		res := sarif.NewRuleResult(f.RuleID).
			WithMessage(sarif.NewTextMessage(message)).
			WithLevel(f.Severity.SarifLevel()).
			WithLocations([]*sarif.Location{location})

		res.Properties = sarif.Properties{
			"id":           f.ID,
			"issue_type":   f.IssueType,
			"severity":     string(f.Severity),
			"control_id":   f.ControlID,
			"control_type": f.ControlType,
		}
		if len(f.References) > 0 {
			res.Properties["references"] = f.References
		}
		if f.Rationale != "" {
			res.Properties["rationale"] = f.Rationale
		}
		if f.EntityName != "" {
			res.Properties["entity_name"] = f.EntityName
		}
		if f.TabName != "" {
			res.Properties["tab_name"] = f.TabName
		}
		if f.SectionName != "" {
			res.Properties["section_name"] = f.SectionName
		}

		run.AddResult(res)
	}

	doc.AddRun(run)
	return doc.PrettyWrite(w)
}

// controlURI builds a pseudo-URI locating a control inside the app,
// since findings point at UI elements rather than files.
func controlURI(screen, controlID string) string {
	if screen == "" {
		return controlID
	}
	return fmt.Sprintf("%s/%s", screen, controlID)
}
