package testroster

import "time"

// Config holds configuration for the roster test
type Config struct {
	BaseURL      string        // Base URL of the service
	NumCompanies int           // Number of synthetic companies to generate
	Workers      int           // Number of concurrent workers
	Timeout      time.Duration // HTTP request timeout
	PollInterval time.Duration // Delay between result polls
	OutputFile   string        // Output file for generated rosters
	LogFile      string        // Log file for test output
	Verbose      bool          // Enable verbose logging
}

// Candidate mirrors the API schema for one roster member
type Candidate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	Title       string  `json:"title"`
	Department  string  `json:"department,omitempty"`
	Connections int     `json:"connections_count,omitempty"`
	Scores      *Scores `json:"scores,omitempty"`
}

// Scores mirrors the optional enrichment scores
type Scores struct {
	ChampionPotential *float64 `json:"champion_potential,omitempty"`
	Influence         *float64 `json:"influence,omitempty"`
	Overall           *float64 `json:"overall_score,omitempty"`
	DepartmentFit     *float64 `json:"department_fit,omitempty"`
}

// Deal mirrors the API deal schema
type Deal struct {
	DealSize         float64 `json:"deal_size"`
	CompanyRevenue   float64 `json:"company_revenue"`
	CompanyEmployees int     `json:"company_employees"`
}

// Submission is one async composition request payload
type Submission struct {
	RequestID   string      `json:"request_id"`
	CompanyName string      `json:"company_name"`
	Deal        Deal        `json:"deal"`
	Candidates  []Candidate `json:"candidates"`
}

// AckResponse represents the response from job submission
type AckResponse struct {
	Status    string `json:"status"`
	JobID     string `json:"job_id"`
	Duplicate bool   `json:"duplicate"`
}

// Member is one assigned buyer-group member in a result
type Member struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Role           string  `json:"buyer_group_role"`
	RoleConfidence float64 `json:"role_confidence"`
	RoleReasoning  string  `json:"role_reasoning"`
}

// Result is the slice of a composition result the verifier cares about
type Result struct {
	JobID       string   `json:"job_id"`
	CompanyName string   `json:"company_name"`
	Tier        string   `json:"company_tier"`
	Group       []Member `json:"buyer_group"`
	Validation  struct {
		IsValid        bool     `json:"is_valid"`
		Issues         []string `json:"issues"`
		Recommendation string   `json:"recommendation"`
	} `json:"validation"`
}

// Stats holds test statistics
type Stats struct {
	CompaniesGenerated int
	JobsSubmitted      int
	JobsAccepted       int
	JobsDuplicate      int
	JobsFailed         int
	ResultsRetrieved   int
	ValidGroups        int
	InvalidGroups      int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
