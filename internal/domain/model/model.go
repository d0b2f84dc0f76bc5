// Package model contains domain models passed between layers.
package model

import "time"

// Role identifies a buyer-group role. The set is closed: every assigned
// member carries exactly one of the five values below.
type Role string

// Buyer-group roles.
const (
	RoleDecision    Role = "decision"
	RoleChampion    Role = "champion"
	RoleStakeholder Role = "stakeholder"
	RoleBlocker     Role = "blocker"
	RoleIntroducer  Role = "introducer"
)

// AllRoles lists every role in canonical (exclusivity) order.
func AllRoles() []Role {
	return []Role{RoleDecision, RoleChampion, RoleBlocker, RoleIntroducer, RoleStakeholder}
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleDecision, RoleChampion, RoleStakeholder, RoleBlocker, RoleIntroducer:
		return true
	}
	return false
}

// Scores carries the enrichment scores attached to a candidate upstream.
// Any field may be absent; consumers must default missing values safely.
type Scores struct {
	Seniority         *float64 `json:"seniority,omitempty"`          // 3-10, title derived
	ChampionPotential *float64 `json:"champion_potential,omitempty"` // 0-25
	Influence         *float64 `json:"influence,omitempty"`          // 0-10
	Overall           *float64 `json:"overall_score,omitempty"`      // 0-100
	DepartmentFit     *float64 `json:"department_fit,omitempty"`     // 0-10
}

// ChampionPotentialValue returns the champion potential score, defaulting to 0.
func (s Scores) ChampionPotentialValue() float64 {
	if s.ChampionPotential == nil {
		return 0
	}
	return *s.ChampionPotential
}

// OverallValue returns the overall score. A missing overall score defaults to
// the neutral midpoint 50 so that unscored candidates are not silently dropped
// by the stakeholder fallback.
func (s Scores) OverallValue() float64 {
	if s.Overall == nil {
		return 50
	}
	return *s.Overall
}

// Candidate is one member of an enriched employee roster.
type Candidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Title       string   `json:"title"`
	Department  string   `json:"department,omitempty"`
	Relevance   *float64 `json:"relevance,omitempty"` // 0.0-1.0
	Connections int      `json:"connections_count,omitempty"`
	Scores      Scores   `json:"scores,omitempty"`
}

// InfluenceScore returns the candidate's influence on a 0-10 scale. When the
// enrichment score is absent, network size stands in: one point per thousand
// connections, capped at 10.
func (c Candidate) InfluenceScore() float64 {
	if c.Scores.Influence != nil {
		return *c.Scores.Influence
	}
	if c.Connections > 0 {
		v := float64(c.Connections) / 1000
		if v > 10 {
			v = 10
		}
		return v
	}
	return 0
}

// Deal describes the deal being pursued at the target company.
type Deal struct {
	DealSize         float64 `json:"deal_size"`
	CompanyRevenue   float64 `json:"company_revenue"`
	CompanyEmployees int     `json:"company_employees"`
}

// AssignedMember is a candidate augmented with a buyer-group role.
type AssignedMember struct {
	Candidate
	Role           Role    `json:"buyer_group_role"`
	RoleConfidence float64 `json:"role_confidence"` // always within [0,100]
	RoleReasoning  string  `json:"role_reasoning"`
}

// GroupBounds constrains the size of the selected committee.
type GroupBounds struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Ideal int `json:"ideal"`
}

// ValidationReport summarizes composition issues found in a final committee.
type ValidationReport struct {
	IsValid        bool         `json:"is_valid"`
	Issues         []string     `json:"issues"`
	Distribution   map[Role]int `json:"distribution"`
	Recommendation string       `json:"recommendation"`
}

// RosterContext captures roster-level characteristics computed alongside a
// composition: department mix, company type, and data quality counters.
type RosterContext struct {
	TotalCandidates   int            `json:"total_candidates"`
	Departments       map[string]int `json:"department_distribution"`
	SeniorityLevels   map[string]int `json:"seniority_distribution"`
	SalesPercentage   float64        `json:"sales_percentage"`
	CompanyType       string         `json:"company_type"`
	RecordsWithTitles int            `json:"records_with_titles"`
	TitleCoveragePct  float64        `json:"title_coverage_pct"`
	ScoreCoveragePct  float64        `json:"score_coverage_pct"`
	Recommendations   []string       `json:"recommendations,omitempty"`
}

// CompositionRequest is the full input for one composition run.
type CompositionRequest struct {
	CompanyName string       `json:"company_name,omitempty"`
	Deal        Deal         `json:"deal"`
	Candidates  []Candidate  `json:"candidates"`
	Bounds      *GroupBounds `json:"bounds,omitempty"`
	Priorities  map[Role]int `json:"role_priorities,omitempty"`
}

// CompositionResult is the transient output of one composition run.
type CompositionResult struct {
	JobID        string           `json:"job_id,omitempty"`
	CompanyName  string           `json:"company_name,omitempty"`
	Tier         string           `json:"company_tier"`
	Assigned     []AssignedMember `json:"assigned"`
	Group        []AssignedMember `json:"buyer_group"`
	Distribution map[Role]int     `json:"distribution"`
	Validation   ValidationReport `json:"validation"`
	Roster       RosterContext    `json:"roster_context"`
	CompletedAt  time.Time        `json:"completed_at"`
}

// Job wraps a composition request queued for asynchronous processing.
type Job struct {
	JobID   string             `json:"job_id"`
	Request CompositionRequest `json:"request"`
}
