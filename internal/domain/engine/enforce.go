package engine

import (
	"context"

	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/internal/domain/seniority"
	"github.com/adrata/monaco/pkg/logger"
	"github.com/adrata/monaco/pkg/metrics"
)

// EnsureRequiredRoles guarantees the group contains at least one decision
// maker and one champion, promoting the best remaining member when a
// mandatory role is absent. Promotion bypasses confidence thresholds: it
// restores an invariant, it is not a quality gate. The input slice is not
// modified; promotions produce a copy.
func (e *Engine) EnsureRequiredRoles(ctx context.Context, members []model.AssignedMember) []model.AssignedMember {
	if len(members) == 0 {
		return members
	}

	out := make([]model.AssignedMember, len(members))
	copy(out, members)

	if !hasRole(out, model.RoleDecision) {
		if i := bestBySeniority(out); i >= 0 {
			c := out[i]
			conf := clamp(seniority.Score(c.Title) * 10)
			out[i] = e.newMember(c.Candidate, model.RoleDecision, conf,
				"Promoted to decision maker: no member held purchase authority")
			metrics.RecordRolePromotion(string(model.RoleDecision))
			e.log.Info(ctx, "promoted member to decision maker",
				logger.String("candidate", c.ID),
				logger.String("title", c.Title),
			)
		}
	}

	if !hasRole(out, model.RoleChampion) {
		if i := bestByChampionPotential(out); i >= 0 {
			c := out[i]
			conf := clamp(c.Scores.ChampionPotentialValue() * 4)
			out[i] = e.newMember(c.Candidate, model.RoleChampion, conf,
				"Promoted to champion: no internal advocate in group")
			metrics.RecordRolePromotion(string(model.RoleChampion))
			e.log.Info(ctx, "promoted member to champion",
				logger.String("candidate", c.ID),
				logger.String("title", c.Title),
			)
		}
	}

	return out
}

func hasRole(members []model.AssignedMember, r model.Role) bool {
	for _, m := range members {
		if m.Role == r {
			return true
		}
	}
	return false
}

// bestBySeniority returns the index of the highest-seniority member not
// already holding the decision role, or -1 when none remain.
func bestBySeniority(members []model.AssignedMember) int {
	best, bestScore := -1, -1.0
	for i, m := range members {
		if m.Role == model.RoleDecision {
			continue
		}
		if s := seniority.Score(m.Title); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}

// bestByChampionPotential returns the index of the member with the highest
// champion potential that holds neither required role, or -1 when none remain.
func bestByChampionPotential(members []model.AssignedMember) int {
	best, bestScore := -1, -1.0
	for i, m := range members {
		if m.Role == model.RoleChampion || m.Role == model.RoleDecision {
			continue
		}
		if s := m.Scores.ChampionPotentialValue(); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}
