package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/internal/domain/seniority"
	"github.com/adrata/monaco/pkg/logger"
	"github.com/adrata/monaco/pkg/metrics"
)

// Small-company assignment constants.
const (
	soloDecisionConfidence      = 90
	smallCompanyChampionConf    = 75
	smallCompanyStakeholderConf = 60
	smallCompanyEmployeeCeiling = 3
)

// roleRule ties a role to its qualification predicate and confidence scorer.
// Rules are evaluated in fixed exclusivity order; the first rule that clears
// quota, predicate, and threshold wins the candidate.
type roleRule struct {
	role       model.Role
	qualifies  func(c *model.Candidate) bool
	confidence func(c *model.Candidate) float64
	reasoning  func(c *model.Candidate, conf float64) string
}

// roleRules returns the exclusivity-ordered rule chain
// decision -> champion -> blocker -> introducer -> stakeholder.
func (e *Engine) roleRules() []roleRule {
	return []roleRule{
		{
			role: model.RoleDecision,
			qualifies: func(c *model.Candidate) bool {
				return e.qualifier.IsDecisionMaker(c.Title, c.Department, c)
			},
			confidence: func(c *model.Candidate) float64 {
				return clamp(seniority.Score(c.Title) * 10)
			},
			reasoning: func(c *model.Candidate, conf float64) string {
				return fmt.Sprintf("Title %q holds purchase authority for a $%.0f deal (seniority %.0f/10)",
					c.Title, e.deal.DealSize, seniority.Score(c.Title))
			},
		},
		{
			role: model.RoleChampion,
			qualifies: func(c *model.Candidate) bool {
				return e.qualifier.IsChampion(c.Title, c.Department, c)
			},
			confidence: func(c *model.Candidate) float64 {
				return clamp(c.Scores.ChampionPotentialValue() * 4)
			},
			reasoning: func(c *model.Candidate, conf float64) string {
				return fmt.Sprintf("Director-level internal advocate (champion potential %.0f/25)",
					c.Scores.ChampionPotentialValue())
			},
		},
		{
			role: model.RoleBlocker,
			qualifies: func(c *model.Candidate) bool {
				return e.qualifier.IsBlocker(c.Title, c.Department)
			},
			confidence: func(c *model.Candidate) float64 {
				return 80 // gatekeeping functions are a structural signal, not a scored one
			},
			reasoning: func(c *model.Candidate, conf float64) string {
				return fmt.Sprintf("Gatekeeping function can stall or veto the deal (%s)", blockerSignal(c))
			},
		},
		{
			role: model.RoleIntroducer,
			qualifies: func(c *model.Candidate) bool {
				return e.qualifier.IsIntroducer(c.Title, c.Department, c)
			},
			confidence: func(c *model.Candidate) float64 {
				return clamp(c.InfluenceScore() * 10)
			},
			reasoning: func(c *model.Candidate, conf float64) string {
				return fmt.Sprintf("Well-networked and customer-facing (influence %.1f/10)", c.InfluenceScore())
			},
		},
		{
			role: model.RoleStakeholder,
			qualifies: func(c *model.Candidate) bool {
				return true // fallback role; only the threshold gate applies
			},
			confidence: func(c *model.Candidate) float64 {
				return clamp(c.Scores.OverallValue() * 1.2)
			},
			reasoning: func(c *model.Candidate, conf float64) string {
				return fmt.Sprintf("Influenced by or influencing the purchase (overall score %.0f/100)",
					c.Scores.OverallValue())
			},
		},
	}
}

// AssignRoles assigns exactly one buyer-group role to each candidate that
// clears a role's quota, predicate, and confidence threshold, iterating in
// descending seniority order. Candidates that clear no role are dropped.
// Required roles are enforced on the way out, so a non-empty result always
// contains a decision maker, and a champion whenever one can be promoted.
func (e *Engine) AssignRoles(ctx context.Context, candidates []model.Candidate) []model.AssignedMember {
	if len(candidates) == 0 {
		return []model.AssignedMember{}
	}

	if e.deal.CompanyEmployees <= smallCompanyEmployeeCeiling {
		return e.EnsureRequiredRoles(ctx, e.assignSmallCompany(ctx, candidates))
	}

	sorted := make([]model.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return seniority.Score(sorted[i].Title) > seniority.Score(sorted[j].Title)
	})

	targets := e.targets.Targets(ctx, e.companyTier, len(sorted), e.deal.CompanyEmployees, e.deal.DealSize)
	rules := e.roleRules()
	counts := make(map[model.Role]int, len(rules))
	members := make([]model.AssignedMember, 0, len(sorted))

	for i := range sorted {
		c := &sorted[i]
		assigned := false
		for _, rule := range rules {
			if counts[rule.role] >= targets.ForRole(rule.role) {
				continue
			}
			if !rule.qualifies(c) {
				continue
			}
			conf := rule.confidence(c)
			if conf < e.roleThresholds[rule.role] {
				continue
			}
			counts[rule.role]++
			members = append(members, e.newMember(*c, rule.role, conf, rule.reasoning(c, conf)))
			metrics.RecordCandidateAssigned(string(rule.role))
			assigned = true
			break
		}
		if !assigned {
			metrics.RecordCandidateDropped()
			e.log.Debug(ctx, "candidate cleared no role threshold, dropping",
				logger.String("candidate", c.ID),
				logger.String("title", c.Title),
			)
		}
	}

	return e.EnsureRequiredRoles(ctx, members)
}

// assignSmallCompany handles organizations of three or fewer employees, where
// quota and threshold machinery only gets in the way. The owner is the
// decision maker; a second-in-command title pattern makes a champion; everyone
// else is a stakeholder.
func (e *Engine) assignSmallCompany(ctx context.Context, candidates []model.Candidate) []model.AssignedMember {
	if len(candidates) == 1 && e.deal.CompanyEmployees <= 1 {
		c := candidates[0]
		return []model.AssignedMember{
			e.newMember(c, model.RoleDecision, soloDecisionConfidence, "Sole decision maker"),
		}
	}

	sorted := make([]model.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		fi, fj := isFounderTitle(sorted[i].Title), isFounderTitle(sorted[j].Title)
		if fi != fj {
			return fi
		}
		return seniority.Score(sorted[i].Title) > seniority.Score(sorted[j].Title)
	})

	members := make([]model.AssignedMember, 0, len(sorted))
	haveDecision := false
	for i := range sorted {
		c := sorted[i]
		switch {
		case !haveDecision && e.qualifier.IsDecisionMaker(c.Title, c.Department, &c):
			haveDecision = true
			members = append(members, e.newMember(c, model.RoleDecision,
				clamp(seniority.Score(c.Title)*10),
				fmt.Sprintf("Most senior of %d employees", e.deal.CompanyEmployees)))
		case i == 1 && isSecondInCommandTitle(c.Title):
			members = append(members, e.newMember(c, model.RoleChampion,
				smallCompanyChampionConf, "Second-in-command title pattern at a small company"))
		default:
			members = append(members, e.newMember(c, model.RoleStakeholder,
				smallCompanyStakeholderConf, "Small company: every employee touches the purchase"))
		}
	}
	return members
}

// newMember builds an AssignedMember, writing the computed seniority score
// back into the candidate's score record.
func (e *Engine) newMember(c model.Candidate, role model.Role, conf float64, reason string) model.AssignedMember {
	sen := seniority.Score(c.Title)
	c.Scores.Seniority = &sen
	return model.AssignedMember{
		Candidate:      c,
		Role:           role,
		RoleConfidence: clamp(conf),
		RoleReasoning:  reason,
	}
}

func isFounderTitle(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, "ceo") || strings.Contains(t, "founder")
}

func isSecondInCommandTitle(title string) bool {
	t := strings.ToLower(title)
	for _, kw := range []string{"director", "manager", "vp", "vice president", "head of"} {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func blockerSignal(c *model.Candidate) string {
	if c.Department != "" {
		return c.Department
	}
	return c.Title
}
