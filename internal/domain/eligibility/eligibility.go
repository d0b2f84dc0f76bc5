// Package eligibility holds the per-role qualification predicates.
//
// Each predicate is pure and independent: it looks only at the candidate's
// title, department, and enrichment signals plus the fixed deal context. The
// assignment engine composes them in exclusivity order; nothing here knows
// about quotas or thresholds.
package eligibility

import (
	"strings"
	"unicode"

	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/internal/domain/tier"
)

// Signal floors used by the executive relevance gate.
const (
	minExecRelevance       = 0.3
	minExecDepartmentFit   = 5
	minChampionPotential   = 15
	minIntroducerInfluence = 7
)

// Qualifier evaluates role eligibility against a fixed deal context.
type Qualifier struct {
	dealSize   float64
	thresholds tier.Thresholds
}

// New creates a Qualifier for one deal.
func New(dealSize float64, thresholds tier.Thresholds) *Qualifier {
	return &Qualifier{dealSize: dealSize, thresholds: thresholds}
}

// IsDecisionMaker reports whether a title can hold final purchase authority
// for this deal. Founders and owners always qualify. Other C-level titles are
// gated on relevance and department fit when those signals are present.
// VP, Director and Manager titles qualify only above their tier's deal
// threshold. The candidate may be nil when only the title is known.
func (q *Qualifier) IsDecisionMaker(title, department string, c *model.Candidate) bool {
	t := strings.ToLower(title)

	if containsAny(t, "ceo", "founder", "owner") ||
		(strings.Contains(t, "president") && !strings.Contains(t, "vice president")) {
		return true
	}

	// Customer-facing departments do not own budget unless the title itself
	// carries sales or revenue language. Checked before the executive gate so
	// a "CS Chief" does not slip through on title alone.
	if isCustomerServiceDept(department) && !containsAny(t, "sales", "revenue", "business development") {
		return false
	}

	// The acronyms match as whole words: "cto" hides inside "director" and
	// "coo" inside "coordinator", and those titles belong to the deal-size
	// gates below, not the executive branch.
	if hasAnyWord(t, "cfo", "cto", "coo") || strings.Contains(t, "chief") {
		if c == nil {
			return true
		}
		return execSignalsPass(c)
	}

	switch {
	case containsAny(t, "vp", "vice president"):
		return q.dealSize >= q.thresholds.VP
	case strings.Contains(t, "director"):
		return q.dealSize >= q.thresholds.Director
	case strings.Contains(t, "manager"):
		return q.dealSize >= q.thresholds.Manager
	}
	return false
}

// execSignalsPass applies the relevance/department-fit gate for non-founder
// executives. Either signal being absent leaves that half of the gate open.
func execSignalsPass(c *model.Candidate) bool {
	if c.Relevance != nil && *c.Relevance < minExecRelevance {
		return false
	}
	if c.Scores.DepartmentFit != nil && *c.Scores.DepartmentFit < minExecDepartmentFit {
		return false
	}
	return true
}

// IsChampion reports whether a candidate fits the internal-advocate profile:
// director-level (but not senior director) or senior manager titles, in a
// revenue-adjacent department or with a high champion-potential score.
func (q *Qualifier) IsChampion(title, department string, c *model.Candidate) bool {
	t := strings.ToLower(title)

	titleFits := (strings.Contains(t, "director") && !strings.Contains(t, "senior director")) ||
		containsAny(t, "senior manager", "sr manager", "sr. manager")
	if !titleFits {
		return false
	}

	if containsAny(strings.ToLower(department), "sales", "revenue", "operations", "product") {
		return true
	}
	return c != nil && c.Scores.ChampionPotentialValue() > minChampionPotential
}

// IsBlocker reports whether a candidate belongs to a gatekeeping function
// that can stall or veto a deal. Department and title are both checked.
func (q *Qualifier) IsBlocker(title, department string) bool {
	combined := strings.ToLower(title) + " " + strings.ToLower(department)
	return containsAny(combined, "security", "legal", "compliance", "procurement", "vendor", "counsel")
}

// IsIntroducer reports whether a candidate is a well-networked, customer-facing
// contact who can broker internal introductions.
func (q *Qualifier) IsIntroducer(title, department string, c *model.Candidate) bool {
	combined := strings.ToLower(title) + " " + strings.ToLower(department)
	if !containsAny(combined, "customer", "account", "sales", "business development", "partnership") {
		return false
	}
	return c != nil && c.InfluenceScore() > minIntroducerInfluence
}

func isCustomerServiceDept(department string) bool {
	d := strings.ToLower(department)
	return strings.Contains(d, "customer success") || strings.Contains(d, "customer service")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasAnyWord reports whether any of the keywords appears in s as a standalone
// word, splitting on anything that is not a letter or digit.
func hasAnyWord(s string, words ...string) bool {
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}
