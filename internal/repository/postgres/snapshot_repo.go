package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"go-jobswipe-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type snapshotRepo struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates the read-model provider the filter and
// scorer consume. All reads here are snapshot reads taken before the ledger
// transaction; nothing in this repository mutates state.
func NewSnapshotRepository(db *pgxpool.Pool) domain.SnapshotProvider {
	return &snapshotRepo{db: db}
}

// GetCandidateSnapshot retrieves a candidate's scoring inputs and
// deal-breaker constraints
func (r *snapshotRepo) GetCandidateSnapshot(ctx context.Context, userID string) (*domain.CandidateSnapshot, error) {
	query := `
		SELECT user_id, skills, culture_preferences, experience_level, years_experience, deal_breakers
		FROM candidate_profiles
		WHERE user_id = $1`

	var (
		snap            domain.CandidateSnapshot
		skills          []string
		culturePrefs    []string
		dealBreakersRaw []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&snap.UserID,
		pq.Array(&skills),
		pq.Array(&culturePrefs),
		&snap.ExperienceLevel,
		&snap.YearsExperience,
		&dealBreakersRaw,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	snap.Skills = skills
	snap.CulturePreferences = culturePrefs
	if len(dealBreakersRaw) > 0 {
		if err := json.Unmarshal(dealBreakersRaw, &snap.DealBreakers); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}

// GetJobSnapshot retrieves a job's scoring and constraint inputs
func (r *snapshotRepo) GetJobSnapshot(ctx context.Context, jobID int64) (*domain.JobSnapshot, error) {
	query := `
		SELECT id, company_id, title, required_skills, salary_min, salary_max,
		       location, remote, job_type, experience_level, min_years_required, owner_user_id
		FROM jobs
		WHERE id = $1`

	var (
		snap   domain.JobSnapshot
		skills []string
	)
	err := r.db.QueryRow(ctx, query, jobID).Scan(
		&snap.ID, &snap.CompanyID, &snap.Title, pq.Array(&skills),
		&snap.SalaryMin, &snap.SalaryMax, &snap.Location, &snap.Remote,
		&snap.JobType, &snap.ExperienceLevel, &snap.MinYearsRequired, &snap.OwnerUserID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	snap.RequiredSkills = skills
	return &snap, nil
}

// GetCompanySnapshot retrieves a company's culture traits
func (r *snapshotRepo) GetCompanySnapshot(ctx context.Context, companyID int64) (*domain.CompanySnapshot, error) {
	query := `SELECT id, name, culture_traits FROM company_profiles WHERE id = $1`

	var (
		snap   domain.CompanySnapshot
		traits []string
	)
	err := r.db.QueryRow(ctx, query, companyID).Scan(&snap.ID, &snap.Name, pq.Array(&traits))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	snap.CultureTraits = traits
	return &snap, nil
}
