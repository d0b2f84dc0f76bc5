package testroster

import (
	"context"
	"fmt"
	"log"
)

// verifyResults checks structural invariants on every retrieved result.
func verifyResults(_ context.Context, config *Config, results []Result, stats *Stats) error {
	log.Println("🔍 Verifying results...")

	if len(results) == 0 {
		return fmt.Errorf("no results to verify")
	}

	var structuralErrors int
	for _, result := range results {
		if err := verifySingleResult(result); err != nil {
			structuralErrors++
			if config.Verbose {
				log.Printf("⚠️  %s: %v", result.CompanyName, err)
			}
		}
		if result.Validation.IsValid {
			stats.ValidGroups++
		} else {
			stats.InvalidGroups++
		}
	}

	if structuralErrors > 0 {
		return fmt.Errorf("%d of %d results violated structural invariants", structuralErrors, len(results))
	}

	log.Printf("✅ Verified %d results (%d valid groups, %d flagged by validation)",
		len(results), stats.ValidGroups, stats.InvalidGroups)
	return nil
}

// verifySingleResult checks one result against the composition guarantees:
// every non-empty group has a decision maker, every member carries a known
// role, and confidences stay within [0,100].
func verifySingleResult(result Result) error {
	if len(result.Group) == 0 {
		return fmt.Errorf("empty buyer group")
	}

	knownRoles := map[string]bool{
		"decision":    true,
		"champion":    true,
		"stakeholder": true,
		"blocker":     true,
		"introducer":  true,
	}

	var hasDecision bool
	for _, member := range result.Group {
		if !knownRoles[member.Role] {
			return fmt.Errorf("member %s has unknown role %q", member.ID, member.Role)
		}
		if member.Role == "decision" {
			hasDecision = true
		}
		if member.RoleConfidence < 0 || member.RoleConfidence > 100 {
			return fmt.Errorf("member %s has out-of-range confidence %.1f", member.ID, member.RoleConfidence)
		}
		if member.RoleReasoning == "" {
			return fmt.Errorf("member %s has empty role reasoning", member.ID)
		}
	}

	if !hasDecision {
		return fmt.Errorf("group has no decision maker")
	}
	return nil
}
