// Package tier resolves company tiers, deal-size thresholds, and per-role
// distribution targets from company size signals.
package tier

import (
	"context"
	"fmt"

	"github.com/adrata/monaco/internal/domain/model"
)

// Tier classifies a target company by size and revenue.
type Tier string

// Company tiers, largest first.
const (
	Enterprise Tier = "enterprise"
	MidMarket  Tier = "midmarket"
	SMB        Tier = "smb"
	Micro      Tier = "micro"
)

// Thresholds holds the minimum deal sizes at which each title level can hold
// final purchase authority for a given tier.
type Thresholds struct {
	VP       float64
	Director float64
	Manager  float64
}

// Targets holds per-role integer target counts for one composition run.
type Targets struct {
	Decision    int
	Champion    int
	Stakeholder int
	Blocker     int
	Introducer  int
}

// ForRole returns the target count for a role. Unknown roles have no quota.
func (t Targets) ForRole(r model.Role) int {
	switch r {
	case model.RoleDecision:
		return t.Decision
	case model.RoleChampion:
		return t.Champion
	case model.RoleStakeholder:
		return t.Stakeholder
	case model.RoleBlocker:
		return t.Blocker
	case model.RoleIntroducer:
		return t.Introducer
	}
	return 0
}

// Resolver maps company size signals to a tier and its deal thresholds.
type Resolver interface {
	// Resolve returns the tier for a company. Malformed inputs that map to no
	// tier must return an error rather than degrade silently.
	Resolve(ctx context.Context, revenue float64, employees int) (Tier, error)

	// DealThresholds returns the title-level deal thresholds for a tier.
	DealThresholds(ctx context.Context, t Tier) (Thresholds, error)
}

// TargetProvider supplies per-role target counts for one composition run.
type TargetProvider interface {
	Targets(ctx context.Context, t Tier, poolSize, employees int, dealSize float64) Targets
}

// StaticResolver implements Resolver with fixed breakpoints. Revenue and
// headcount are alternative signals; whichever puts the company in the higher
// tier wins.
type StaticResolver struct{}

// NewStaticResolver creates a resolver backed by the built-in tier table.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

// Tier breakpoints.
const (
	enterpriseEmployees = 1000
	enterpriseRevenue   = 100_000_000
	midMarketEmployees  = 200
	midMarketRevenue    = 20_000_000
	smbEmployees        = 20
	smbRevenue          = 1_000_000
)

// Resolve maps (revenue, employees) to a tier.
func (r *StaticResolver) Resolve(_ context.Context, revenue float64, employees int) (Tier, error) {
	if revenue < 0 || employees < 0 {
		return "", fmt.Errorf("%w: revenue=%g employees=%d", ErrNoTier, revenue, employees)
	}
	switch {
	case employees >= enterpriseEmployees || revenue >= enterpriseRevenue:
		return Enterprise, nil
	case employees >= midMarketEmployees || revenue >= midMarketRevenue:
		return MidMarket, nil
	case employees >= smbEmployees || revenue >= smbRevenue:
		return SMB, nil
	default:
		return Micro, nil
	}
}

// DealThresholds returns the built-in threshold table entry for a tier.
func (r *StaticResolver) DealThresholds(_ context.Context, t Tier) (Thresholds, error) {
	switch t {
	case Enterprise:
		return Thresholds{VP: 250_000, Director: 100_000, Manager: 50_000}, nil
	case MidMarket:
		return Thresholds{VP: 100_000, Director: 50_000, Manager: 25_000}, nil
	case SMB:
		return Thresholds{VP: 50_000, Director: 25_000, Manager: 10_000}, nil
	case Micro:
		return Thresholds{VP: 10_000, Director: 5_000, Manager: 2_500}, nil
	default:
		return Thresholds{}, fmt.Errorf("%w: %q", ErrNoTier, t)
	}
}

// StaticTargets implements TargetProvider with pool-size scaled defaults.
type StaticTargets struct{}

// NewStaticTargets creates the default target provider.
func NewStaticTargets() *StaticTargets {
	return &StaticTargets{}
}

// Target scaling breakpoints.
const (
	largePool         = 10
	midPool           = 6
	blockerDealFactor = 2 // deals at 2x the VP threshold get a second blocker slot
)

// Targets scales role quotas with the candidate pool. Larger pools and larger
// deals open more decision and gatekeeper slots; small pools collapse to one
// slot per role with a generous stakeholder remainder.
func (p *StaticTargets) Targets(_ context.Context, t Tier, poolSize, employees int, dealSize float64) Targets {
	tg := Targets{Decision: 1, Champion: 1, Stakeholder: 2, Blocker: 1, Introducer: 1}

	switch {
	case poolSize >= largePool:
		tg.Decision = 2
		tg.Champion = 2
		tg.Stakeholder = 4
		tg.Introducer = 2
	case poolSize >= midPool:
		tg.Champion = 2
		tg.Stakeholder = 3
	}

	// Enterprise deals routinely pull in a second gatekeeping function
	// (security plus procurement, or legal plus compliance).
	if t == Enterprise && employees >= enterpriseEmployees {
		tg.Blocker = 2
	}
	if vp := vpThresholdFor(t); vp > 0 && dealSize >= blockerDealFactor*vp {
		tg.Blocker = 2
	}

	// Never hand out more stakeholder slots than the pool can fill.
	if tg.Stakeholder > poolSize {
		tg.Stakeholder = poolSize
	}
	return tg
}

func vpThresholdFor(t Tier) float64 {
	th, err := NewStaticResolver().DealThresholds(context.Background(), t)
	if err != nil {
		return 0
	}
	return th.VP
}
