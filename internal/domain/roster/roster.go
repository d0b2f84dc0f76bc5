// Package roster computes roster-level context for a composition run:
// department mix, seniority distribution, company type, and data quality.
package roster

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/internal/domain/seniority"
)

// Department labels produced by Categorize.
const (
	DeptSales       = "Sales & Revenue"
	DeptMarketing   = "Marketing"
	DeptEngineering = "Engineering & Product"
	DeptCustomer    = "Customer Success & Support"
	DeptOperations  = "Operations & Business"
	DeptPeople      = "HR & People"
	DeptFinance     = "Finance & Legal"
	DeptExecutive   = "Executive & Leadership"
	DeptOther       = "Other"
)

// deptRule pairs a department label with its title keywords. Checked in
// order; sales language wins over the generic executive bucket.
type deptRule struct {
	label    string
	keywords []string
}

var deptRules = []deptRule{
	{DeptSales, []string{"sales", "revenue", "account executive", "business development", "bdr", "sdr", "revops"}},
	{DeptMarketing, []string{"marketing", "demand gen", "brand", "communications", "growth"}},
	{DeptEngineering, []string{"engineer", "developer", "software", "product", "architect", "devops", "data"}},
	{DeptCustomer, []string{"customer success", "customer support", "customer experience", "account manager", "support"}},
	{DeptOperations, []string{"operations", "strategy", "partnerships", "chief of staff"}},
	{DeptPeople, []string{"hr", "human resources", "people", "talent", "recruiting"}},
	{DeptFinance, []string{"finance", "accounting", "controller", "legal", "counsel", "compliance"}},
	{DeptExecutive, []string{"ceo", "cto", "cfo", "coo", "president", "founder", "vice president", "vp", "director", "head of", "chief"}},
}

// Categorize maps a candidate's title (and declared department, when present)
// to a coarse department label. Short acronym keywords match as whole words so
// a "Coordinator" does not land in the executive bucket through "coo".
func Categorize(title, department string) string {
	combined := strings.ToLower(title) + " " + strings.ToLower(department)
	for _, r := range deptRules {
		for _, kw := range r.keywords {
			if matchKeyword(combined, kw) {
				return r.label
			}
		}
	}
	return DeptOther
}

func matchKeyword(s, kw string) bool {
	if len(kw) > 3 {
		return strings.Contains(s, kw)
	}
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if f == kw {
			return true
		}
	}
	return false
}

// Roster-level recommendation triggers.
const (
	lowSalesPresencePct = 20
	smallSalesTeamSize  = 5
)

// Analyze computes the roster context for a candidate pool. All percentage
// calculations guard a zero denominator and report 0 instead of faulting.
func Analyze(candidates []model.Candidate) model.RosterContext {
	rc := model.RosterContext{
		TotalCandidates: len(candidates),
		Departments:     make(map[string]int),
		SeniorityLevels: make(map[string]int),
	}

	withScores := 0
	for _, c := range candidates {
		dept := Categorize(c.Title, c.Department)
		rc.Departments[dept]++
		rc.SeniorityLevels[seniority.Level(c.Title)]++
		if strings.TrimSpace(c.Title) != "" {
			rc.RecordsWithTitles++
		}
		if c.Scores.Overall != nil {
			withScores++
		}
	}

	rc.SalesPercentage = pct(rc.Departments[DeptSales], rc.TotalCandidates)
	rc.TitleCoveragePct = pct(rc.RecordsWithTitles, rc.TotalCandidates)
	rc.ScoreCoveragePct = pct(withScores, rc.TotalCandidates)
	rc.CompanyType = companyType(rc.Departments)
	rc.Recommendations = recommend(rc)
	return rc
}

// companyType labels the roster by its dominant function.
func companyType(departments map[string]int) string {
	sales := departments[DeptSales]
	marketing := departments[DeptMarketing]
	engineering := departments[DeptEngineering]
	switch {
	case sales >= marketing && sales >= engineering && sales > 0:
		return "Sales-Led"
	case marketing > engineering:
		return "Marketing-Led"
	default:
		return "Product-Led"
	}
}

func recommend(rc model.RosterContext) []string {
	var recs []string
	if rc.SalesPercentage < lowSalesPresencePct {
		recs = append(recs, "Low sales team presence; consider a product-led growth approach")
	}
	if rc.Departments[DeptSales] < smallSalesTeamSize {
		recs = append(recs, fmt.Sprintf(
			"Small sales team (%d); expand the buyer group into marketing and operations",
			rc.Departments[DeptSales]))
	}
	return recs
}

// pct returns part/total as a percentage, or 0 when total is 0.
func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
