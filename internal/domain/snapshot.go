package domain

import "context"

// Deal-breaker constraint types
const (
	DealBreakerMinSalary  = "min_salary"
	DealBreakerJobType    = "job_type"
	DealBreakerLocation   = "location"
	DealBreakerRemoteOnly = "remote_only"
)

// Experience levels, ordinal from junior to executive.
const (
	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceLead      = "lead"
	ExperienceExecutive = "executive"
)

// DealBreaker is one candidate-declared hard constraint.
type DealBreaker struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// CandidateSnapshot is the read model the filter and scorer consume. It is
// externally owned and treated as immutable for the duration of a swipe.
type CandidateSnapshot struct {
	UserID             string        `json:"user_id"`
	Skills             []string      `json:"skills"`
	CulturePreferences []string      `json:"culture_preferences"`
	ExperienceLevel    *string       `json:"experience_level,omitempty"`
	YearsExperience    *int          `json:"years_experience,omitempty"`
	DealBreakers       []DealBreaker `json:"deal_breakers"`
}

// JobSnapshot is the job-side read model.
type JobSnapshot struct {
	ID               int64    `json:"id"`
	CompanyID        int64    `json:"company_id"`
	Title            string   `json:"title"`
	RequiredSkills   []string `json:"required_skills"`
	SalaryMin        *float64 `json:"salary_min,omitempty"`
	SalaryMax        *float64 `json:"salary_max,omitempty"`
	Location         *string  `json:"location,omitempty"`
	Remote           *bool    `json:"remote,omitempty"`
	JobType          *string  `json:"job_type,omitempty"`
	ExperienceLevel  *string  `json:"experience_level,omitempty"`
	MinYearsRequired *int     `json:"min_years_required,omitempty"`
	OwnerUserID      string   `json:"owner_user_id"`
}

// CompanySnapshot is the company-side read model.
type CompanySnapshot struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	CultureTraits []string `json:"culture_traits"`
}

// SnapshotProvider serves the read-only inputs of a swipe. Snapshots are
// fetched before the ledger transaction and never re-validated inside it.
type SnapshotProvider interface {
	GetCandidateSnapshot(ctx context.Context, userID string) (*CandidateSnapshot, error)
	GetJobSnapshot(ctx context.Context, jobID int64) (*JobSnapshot, error)
	GetCompanySnapshot(ctx context.Context, companyID int64) (*CompanySnapshot, error)
}
