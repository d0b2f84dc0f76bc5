package engine

import (
	"context"
	"sort"

	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/internal/domain/seniority"
	"github.com/adrata/monaco/pkg/logger"
	"github.com/adrata/monaco/pkg/metrics"
)

// SelectOptimalBuyerGroup reduces assigned candidates to a final committee
// within the given size bounds. Small organizations and pools below the ideal
// size take dedicated paths; the general path partitions by role, keeps the
// most confident members of each role up to its target, fills remaining slots
// with stakeholders, and backfills to the minimum when needed.
func (e *Engine) SelectOptimalBuyerGroup(ctx context.Context, assigned []model.AssignedMember, bounds model.GroupBounds) []model.AssignedMember {
	bounds = normalizeBounds(bounds)

	if bounds.Min == 1 && len(assigned) == 1 {
		return e.selectSingle(assigned)
	}
	if e.deal.CompanyEmployees <= smallCompanyEmployeeCeiling {
		// Small-company assignment is already role-complete; size bounds do
		// not apply to organizations this small.
		return assigned
	}
	if bounds.Min == 1 && len(assigned) >= 1 && len(assigned) < bounds.Ideal {
		return e.selectBelowIdeal(ctx, assigned, bounds)
	}
	return e.selectGeneral(ctx, assigned, bounds)
}

// selectSingle returns the lone candidate, giving it a role when it has none.
func (e *Engine) selectSingle(assigned []model.AssignedMember) []model.AssignedMember {
	m := assigned[0]
	if !m.Role.Valid() {
		role := model.RoleChampion
		reason := "Only available contact at the company"
		if e.qualifier.IsDecisionMaker(m.Title, m.Department, &m.Candidate) {
			role = model.RoleDecision
			reason = "Only available contact and holds purchase authority"
		}
		m = e.newMember(m.Candidate, role, clamp(seniority.Score(m.Title)*10), reason)
	}
	return []model.AssignedMember{m}
}

// selectBelowIdeal handles pools smaller than the ideal group size: keep
// everyone up to the max, ordered by overall score, forcing a decision maker
// to the top when none exists.
func (e *Engine) selectBelowIdeal(ctx context.Context, assigned []model.AssignedMember, bounds model.GroupBounds) []model.AssignedMember {
	out := make([]model.AssignedMember, len(assigned))
	copy(out, assigned)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Scores.OverallValue() > out[j].Scores.OverallValue()
	})

	if !hasRole(out, model.RoleDecision) {
		top := out[0]
		out[0] = e.newMember(top.Candidate, model.RoleDecision,
			clamp(seniority.Score(top.Title)*10),
			"Promoted to decision maker: best available contact in a small pool")
		metrics.RecordRolePromotion(string(model.RoleDecision))
		e.log.Info(ctx, "promoted top candidate to decision maker in small pool",
			logger.String("candidate", top.ID),
		)
	}

	if len(out) > bounds.Max {
		out = out[:bounds.Max]
	}
	return out
}

// selectGeneral implements the role-balanced fill: decision, champion,
// blocker, introducer up to their targets, stakeholders up to the ideal size,
// then a score-ordered backfill to the minimum and a truncation to the max.
func (e *Engine) selectGeneral(ctx context.Context, assigned []model.AssignedMember, bounds model.GroupBounds) []model.AssignedMember {
	targets := e.targets.Targets(ctx, e.companyTier, len(assigned), e.deal.CompanyEmployees, e.deal.DealSize)

	byRole := make(map[model.Role][]model.AssignedMember, len(model.AllRoles()))
	for _, m := range assigned {
		byRole[m.Role] = append(byRole[m.Role], m)
	}
	for role := range byRole {
		ms := byRole[role]
		sort.SliceStable(ms, func(i, j int) bool {
			return ms[i].RoleConfidence > ms[j].RoleConfidence
		})
	}

	selected := make([]model.AssignedMember, 0, bounds.Max)
	picked := make(map[string]bool, bounds.Max)
	take := func(role model.Role, n int) {
		for _, m := range byRole[role] {
			if n <= 0 {
				return
			}
			selected = append(selected, m)
			picked[m.ID] = true
			n--
		}
	}

	take(model.RoleDecision, targets.Decision)
	take(model.RoleChampion, targets.Champion)
	take(model.RoleBlocker, targets.Blocker)
	take(model.RoleIntroducer, targets.Introducer)

	// Remaining slots up to the ideal size go to the strongest stakeholders.
	if remaining := bounds.Ideal - len(selected); remaining > 0 {
		take(model.RoleStakeholder, remaining)
	}

	// Backfill from whatever is left, strongest overall score first, until the
	// minimum size holds.
	if len(selected) < bounds.Min {
		rest := make([]model.AssignedMember, 0, len(assigned)-len(selected))
		for _, m := range assigned {
			if !picked[m.ID] {
				rest = append(rest, m)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool {
			return rest[i].Scores.OverallValue() > rest[j].Scores.OverallValue()
		})
		for _, m := range rest {
			if len(selected) >= bounds.Min {
				break
			}
			selected = append(selected, m)
			picked[m.ID] = true
		}
	}

	if len(selected) > bounds.Max {
		selected = selected[:bounds.Max]
	}
	return selected
}

// normalizeBounds repairs inverted or non-positive bounds so downstream logic
// can rely on min <= ideal <= max.
func normalizeBounds(b model.GroupBounds) model.GroupBounds {
	if b.Min < 1 {
		b.Min = 1
	}
	if b.Max < b.Min {
		b.Max = b.Min
	}
	if b.Ideal < b.Min {
		b.Ideal = b.Min
	}
	if b.Ideal > b.Max {
		b.Ideal = b.Max
	}
	return b
}
