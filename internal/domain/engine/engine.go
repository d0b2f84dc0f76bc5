// Package engine implements the buyer-group composition engine: seniority
// ordered role assignment, required-role enforcement, optimal group selection,
// and post-selection validation.
//
// An Engine is built once per deal. Tier and deal thresholds are resolved at
// construction and immutable afterwards, so concurrent compositions for
// different companies need no locking; each call operates on its own inputs
// and returns a fresh result.
package engine

import (
	"context"
	"fmt"

	"github.com/adrata/monaco/internal/domain/eligibility"
	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/internal/domain/threshold"
	"github.com/adrata/monaco/internal/domain/tier"
	"github.com/adrata/monaco/pkg/logger"
)

// Confidence score bounds.
const (
	minConfidence = 0
	maxConfidence = 100
)

// Engine composes buyer groups for a single deal context.
type Engine struct {
	deal           model.Deal
	companyTier    tier.Tier
	dealThresholds tier.Thresholds
	roleThresholds map[model.Role]float64
	priorities     threshold.Priorities
	qualifier      *eligibility.Qualifier
	targets        tier.TargetProvider
	log            logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithPriorities overrides the default role-priority weights. Missing roles
// keep their defaults.
func WithPriorities(p threshold.Priorities) Option {
	return func(e *Engine) {
		if len(p) > 0 {
			e.priorities = threshold.Merge(p)
		}
	}
}

// WithTargetProvider overrides the distribution target provider.
func WithTargetProvider(tp tier.TargetProvider) Option {
	return func(e *Engine) {
		if tp != nil {
			e.targets = tp
		}
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New builds an Engine for one deal. A non-positive deal size and a deal that
// resolves to no tier are the fatal inputs; both surface as errors here rather
// than degrade every downstream eligibility check.
func New(ctx context.Context, deal model.Deal, resolver tier.Resolver, opts ...Option) (*Engine, error) {
	if deal.DealSize <= 0 {
		return nil, fmt.Errorf("%w: deal size %g is not positive", ErrInvalidDeal, deal.DealSize)
	}

	e := &Engine{
		deal:       deal,
		priorities: threshold.DefaultPriorities(),
		targets:    tier.NewStaticTargets(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Get().Named("engine")
	}

	t, err := resolver.Resolve(ctx, deal.CompanyRevenue, deal.CompanyEmployees)
	if err != nil {
		return nil, fmt.Errorf("resolve company tier: %w", err)
	}
	th, err := resolver.DealThresholds(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("deal thresholds for tier %q: %w", t, err)
	}

	e.companyTier = t
	e.dealThresholds = th
	e.roleThresholds = threshold.Adjust(e.priorities)
	e.qualifier = eligibility.New(deal.DealSize, th)
	return e, nil
}

// Tier returns the resolved company tier.
func (e *Engine) Tier() tier.Tier {
	return e.companyTier
}

// RoleThreshold returns the effective confidence threshold for a role.
func (e *Engine) RoleThreshold(r model.Role) float64 {
	return e.roleThresholds[r]
}

// GetRoleDistribution counts committee members per role.
func (e *Engine) GetRoleDistribution(members []model.AssignedMember) map[model.Role]int {
	dist := make(map[model.Role]int, len(model.AllRoles()))
	for _, m := range members {
		dist[m.Role]++
	}
	return dist
}

// clamp bounds a confidence score to [0,100].
func clamp(v float64) float64 {
	if v < minConfidence {
		return minConfidence
	}
	if v > maxConfidence {
		return maxConfidence
	}
	return v
}
