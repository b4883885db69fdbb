package matching_test

import (
	"testing"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestScoreDeterminism(t *testing.T) {
	candidate := &domain.CandidateSnapshot{
		UserID:             "cand-1",
		Skills:             []string{"Go", "PostgreSQL", "Redis"},
		CulturePreferences: []string{"remote-first", "flat hierarchy"},
		ExperienceLevel:    strPtr("senior"),
		YearsExperience:    intPtr(7),
	}
	job := &domain.JobSnapshot{
		RequiredSkills:   []string{"Go", "Kubernetes"},
		ExperienceLevel:  strPtr("mid"),
		MinYearsRequired: intPtr(3),
	}
	company := &domain.CompanySnapshot{CultureTraits: []string{"remote-first"}}

	first := matching.Score(candidate, job, company)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, matching.Score(candidate, job, company))
	}
}

func TestScoreSkillAndCultureComponents(t *testing.T) {
	t.Run("half skills matched with no culture traits", func(t *testing.T) {
		// Skill component 50, culture neutral 50, experience neutral 50:
		// 0.50*50 + 0.25*50 + 0.25*50 = 50.
		candidate := &domain.CandidateSnapshot{Skills: []string{"React", "Node"}}
		job := &domain.JobSnapshot{RequiredSkills: []string{"React", "Python"}}
		company := &domain.CompanySnapshot{}

		assert.Equal(t, 50, matching.Score(candidate, job, company))
	})

	t.Run("skill containment matches React against React.js", func(t *testing.T) {
		candidate := &domain.CandidateSnapshot{Skills: []string{"React"}}
		job := &domain.JobSnapshot{RequiredSkills: []string{"React.js"}}
		company := &domain.CompanySnapshot{}

		// Full skill match: 0.50*100 + 0.25*50 + 0.25*50 = 75.
		assert.Equal(t, 75, matching.Score(candidate, job, company))
	})

	t.Run("zero required skills scores the component full", func(t *testing.T) {
		candidate := &domain.CandidateSnapshot{}
		job := &domain.JobSnapshot{}
		company := &domain.CompanySnapshot{}

		// 0.50*100 + 0.25*50 + 0.25*50 = 75.
		assert.Equal(t, 75, matching.Score(candidate, job, company))
	})

	t.Run("culture traits matched against preferences", func(t *testing.T) {
		candidate := &domain.CandidateSnapshot{
			Skills:             []string{"Go"},
			CulturePreferences: []string{"remote-first culture", "mentorship"},
		}
		job := &domain.JobSnapshot{RequiredSkills: []string{"Go"}}
		company := &domain.CompanySnapshot{CultureTraits: []string{"remote-first", "open source"}}

		// Skill 100, culture 50 (1 of 2 traits), experience 50:
		// 50 + 12.5 + 12.5 = 75.
		assert.Equal(t, 75, matching.Score(candidate, job, company))
	})
}

func TestScoreExperienceComponent(t *testing.T) {
	company := &domain.CompanySnapshot{}
	base := func(level *string, years *int) *domain.CandidateSnapshot {
		return &domain.CandidateSnapshot{
			Skills:          []string{"Go"},
			ExperienceLevel: level,
			YearsExperience: years,
		}
	}
	jobWith := func(level *string, minYears *int) *domain.JobSnapshot {
		return &domain.JobSnapshot{
			RequiredSkills:   []string{"Go"},
			ExperienceLevel:  level,
			MinYearsRequired: minYears,
		}
	}

	cases := []struct {
		name     string
		level    *string
		years    *int
		reqLevel *string
		minYears *int
		want     int
	}{
		// Skill is always 100 and culture 50 here, so score = 62.5 + 0.25*exp.
		{"meets required level", strPtr("senior"), nil, strPtr("senior"), nil, 87},
		{"exceeds required level", strPtr("executive"), nil, strPtr("entry"), nil, 87},
		{"one level below", strPtr("mid"), nil, strPtr("senior"), nil, 80},
		{"far below", strPtr("entry"), nil, strPtr("lead"), nil, 72},
		{"missing candidate level is neutral", nil, nil, strPtr("senior"), nil, 75},
		{"missing job level is neutral", strPtr("senior"), nil, nil, nil, 75},
		{"years bonus applies on declared minimum", strPtr("mid"), intPtr(6), strPtr("senior"), intPtr(5), 82},
		{"years bonus capped at 100", strPtr("senior"), intPtr(10), strPtr("senior"), intPtr(5), 87},
		{"no bonus without declared minimum", strPtr("mid"), intPtr(6), strPtr("senior"), nil, 80},
		{"no bonus when years fall short", strPtr("mid"), intPtr(2), strPtr("senior"), intPtr(5), 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := matching.Score(base(tc.level, tc.years), jobWith(tc.reqLevel, tc.minYears), company)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScoreBounds(t *testing.T) {
	t.Run("worst case stays at or above zero", func(t *testing.T) {
		candidate := &domain.CandidateSnapshot{ExperienceLevel: strPtr("entry")}
		job := &domain.JobSnapshot{
			RequiredSkills:  []string{"Haskell", "COBOL"},
			ExperienceLevel: strPtr("executive"),
		}
		company := &domain.CompanySnapshot{CultureTraits: []string{"hustle"}}

		score := matching.Score(candidate, job, company)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
		// Skill 0, culture 0, experience 40: 0.25*40 = 10.
		assert.Equal(t, 10, score)
	})

	t.Run("best case caps at 100", func(t *testing.T) {
		candidate := &domain.CandidateSnapshot{
			Skills:             []string{"Go"},
			CulturePreferences: []string{"remote"},
			ExperienceLevel:    strPtr("executive"),
			YearsExperience:    intPtr(20),
		}
		job := &domain.JobSnapshot{
			RequiredSkills:   []string{"Go"},
			ExperienceLevel:  strPtr("entry"),
			MinYearsRequired: intPtr(1),
		}
		company := &domain.CompanySnapshot{CultureTraits: []string{"remote"}}

		assert.Equal(t, 100, matching.Score(candidate, job, company))
	})
}
