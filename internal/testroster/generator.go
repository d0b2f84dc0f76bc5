package testroster

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"github.com/adrata/monaco/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Company size archetypes.
const (
	caseEnterprise = 0
	caseMidMarket  = 1
	caseSMB        = 2
	caseMicro      = 3
	archetypeCount = 4
)

// executiveTitles are title/department pairs drawn for senior roster slots.
var executiveTitles = []Candidate{
	{Title: "CEO", Department: "Executive"},
	{Title: "CFO", Department: "Finance"},
	{Title: "CTO", Department: "Engineering"},
	{Title: "COO", Department: "Operations"},
	{Title: "VP of Sales", Department: "Sales"},
	{Title: "VP of Engineering", Department: "Engineering"},
	{Title: "Director of Operations", Department: "Operations"},
	{Title: "Director of Revenue Operations", Department: "Revenue"},
}

// staffTitles are title/department pairs drawn for the remaining slots.
var staffTitles = []Candidate{
	{Title: "Sales Manager", Department: "Sales"},
	{Title: "Senior Manager", Department: "Operations"},
	{Title: "Operations Manager", Department: "Operations"},
	{Title: "Product Manager", Department: "Product"},
	{Title: "Account Executive", Department: "Sales"},
	{Title: "Customer Success Manager", Department: "Customer Success"},
	{Title: "Security Engineer", Department: "Security"},
	{Title: "General Counsel", Department: "Legal"},
	{Title: "Procurement Specialist", Department: "Procurement"},
	{Title: "Business Development Manager", Department: "Sales"},
	{Title: "Marketing Specialist", Department: "Marketing"},
	{Title: "Software Engineer", Department: "Engineering"},
	{Title: "Data Analyst", Department: "Analytics"},
	{Title: "HR Coordinator", Department: "Human Resources"},
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, max).
func getRandomInt(max int) int {
	if max <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// generateCompanies creates synthetic company rosters across size archetypes.
func generateCompanies(ctx context.Context, config *Config, stats *Stats) ([]Submission, error) {
	logger.Get().Info(ctx, "generating synthetic company rosters", logger.Int("numCompanies", config.NumCompanies))

	submissions := make([]Submission, config.NumCompanies)
	for i := 0; i < config.NumCompanies; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		submissions[i] = generateSingleCompany(i)
	}

	stats.CompaniesGenerated = len(submissions)
	logger.Get().Info(ctx, "generated company rosters successfully", logger.Int("count", len(submissions)))
	return submissions, nil
}

// generateSingleCompany builds one company submission with a roster shaped
// by a randomly chosen size archetype.
func generateSingleCompany(index int) Submission {
	var (
		employees  int
		revenue    float64
		dealSize   float64
		rosterSize int
	)

	switch getRandomInt(archetypeCount) {
	case caseEnterprise:
		employees = 1000 + getRandomInt(9000)
		revenue = 100_000_000 + getRandomFloat()*900_000_000
		dealSize = 250_000 + getRandomFloat()*750_000
		rosterSize = 12 + getRandomInt(20)
	case caseMidMarket:
		employees = 200 + getRandomInt(800)
		revenue = 20_000_000 + getRandomFloat()*80_000_000
		dealSize = 50_000 + getRandomFloat()*200_000
		rosterSize = 8 + getRandomInt(12)
	case caseSMB:
		employees = 20 + getRandomInt(180)
		revenue = 1_000_000 + getRandomFloat()*19_000_000
		dealSize = 10_000 + getRandomFloat()*90_000
		rosterSize = 4 + getRandomInt(8)
	default:
		employees = 1 + getRandomInt(10)
		revenue = getRandomFloat() * 1_000_000
		dealSize = 2_500 + getRandomFloat()*10_000
		rosterSize = 1 + getRandomInt(4)
	}
	if rosterSize > employees {
		rosterSize = employees
	}

	candidates := make([]Candidate, rosterSize)
	for i := 0; i < rosterSize; i++ {
		var pick Candidate
		if i < rosterSize/3+1 {
			pick = executiveTitles[getRandomInt(len(executiveTitles))]
		} else {
			pick = staffTitles[getRandomInt(len(staffTitles))]
		}

		candidate := Candidate{
			ID:          uuid.New().String(),
			Name:        "Employee " + strconv.Itoa(i+1),
			Title:       pick.Title,
			Department:  pick.Department,
			Connections: getRandomInt(5000),
		}

		// Roughly two thirds of candidates arrive with enrichment scores
		if getRandomInt(3) > 0 {
			champ := getRandomFloat() * 25
			overall := 30 + getRandomFloat()*70
			fit := getRandomFloat() * 10
			candidate.Scores = &Scores{
				ChampionPotential: &champ,
				Overall:           &overall,
				DepartmentFit:     &fit,
			}
		}
		candidates[i] = candidate
	}

	return Submission{
		RequestID:   uuid.New().String(),
		CompanyName: "Test Company " + strconv.Itoa(index+1),
		Deal: Deal{
			DealSize:         dealSize,
			CompanyRevenue:   revenue,
			CompanyEmployees: employees,
		},
		Candidates: candidates,
	}
}
