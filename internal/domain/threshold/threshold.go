// Package threshold converts role-priority weights into per-role minimum
// confidence thresholds.
//
// Raising a role's configured priority lowers (or holds) its qualification
// bar; it can never raise it. Hard floors keep a heavily prioritized role from
// accepting arbitrarily weak candidates. This is the only mechanism by which
// sales-team preference influences assignment.
package threshold

import "github.com/adrata/monaco/internal/domain/model"

// Priorities maps roles to integer priority weights.
type Priorities map[model.Role]int

// DefaultPriorities returns the default role-priority weights.
func DefaultPriorities() Priorities {
	return Priorities{
		model.RoleDecision:    10,
		model.RoleChampion:    8,
		model.RoleStakeholder: 6,
		model.RoleBlocker:     5,
		model.RoleIntroducer:  4,
	}
}

// Base minimum confidence per role before priority adjustment.
var baseThresholds = map[model.Role]float64{
	model.RoleDecision:    70,
	model.RoleChampion:    60,
	model.RoleBlocker:     50,
	model.RoleIntroducer:  50,
	model.RoleStakeholder: 40,
}

// Hard floors the adjustment can never cross.
var floorThresholds = map[model.Role]float64{
	model.RoleDecision:    50,
	model.RoleChampion:    40,
	model.RoleBlocker:     30,
	model.RoleIntroducer:  30,
	model.RoleStakeholder: 20,
}

// Each priority point above the default lowers the threshold by this much.
const pointsPerWeight = 2

// Adjust computes effective per-role thresholds from the configured
// priorities. Roles missing from p keep their default weight. Unknown keys in
// p are ignored; they never name a role.
func Adjust(p Priorities) map[model.Role]float64 {
	defaults := DefaultPriorities()
	out := make(map[model.Role]float64, len(baseThresholds))
	for role, base := range baseThresholds {
		weight, ok := p[role]
		if !ok {
			weight = defaults[role]
		}
		eff := base - float64(weight-defaults[role])*pointsPerWeight
		if floor := floorThresholds[role]; eff < floor {
			eff = floor
		}
		out[role] = eff
	}
	return out
}

// Merge overlays the given priorities on the defaults, producing a complete
// weight map. Non-positive weights are dropped in favor of the default.
func Merge(p Priorities) Priorities {
	out := DefaultPriorities()
	for role, w := range p {
		if role.Valid() && w > 0 {
			out[role] = w
		}
	}
	return out
}
