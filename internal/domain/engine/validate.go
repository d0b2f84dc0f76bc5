package engine

import (
	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/pkg/metrics"
)

// Validation issue strings. Callers match on these verbatim.
const (
	IssueMissingDecision  = "Missing decision maker"
	IssueMissingChampion  = "Missing champion"
	IssueTooManyDecisions = "Too many decision makers"
	IssueNoStakeholders   = "No stakeholders included"
)

// Validation recommendations keyed by outcome.
const (
	recommendationValid   = "Buyer group is well-composed and ready for outreach"
	recommendationInvalid = "Review buyer group composition before outreach"
)

// A committee with more decision makers than this is over-weighted at the top.
const maxDecisionMakers = 2

// ValidateBuyerGroup inspects a final committee for composition issues and
// returns a pass/fail report. Issues are ordered and empty exactly when the
// group is valid.
func (e *Engine) ValidateBuyerGroup(members []model.AssignedMember) model.ValidationReport {
	dist := e.GetRoleDistribution(members)
	issues := []string{}

	if dist[model.RoleDecision] == 0 {
		issues = append(issues, IssueMissingDecision)
	}
	if dist[model.RoleChampion] == 0 {
		issues = append(issues, IssueMissingChampion)
	}
	if dist[model.RoleDecision] > maxDecisionMakers {
		issues = append(issues, IssueTooManyDecisions)
	}
	if dist[model.RoleStakeholder] == 0 {
		issues = append(issues, IssueNoStakeholders)
	}

	report := model.ValidationReport{
		IsValid:        len(issues) == 0,
		Issues:         issues,
		Distribution:   dist,
		Recommendation: recommendationValid,
	}
	if !report.IsValid {
		report.Recommendation = recommendationInvalid
		metrics.RecordValidationFailure()
	}
	return report
}
