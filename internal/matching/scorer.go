package matching

import (
	"strings"

	"go-jobswipe-backend/internal/domain"
)

// Component weights for the final score. Skill alignment dominates; culture
// and experience split the remainder evenly. These are fixed so the score is
// reproducible across releases.
const (
	SkillWeight      = 0.50
	CultureWeight    = 0.25
	ExperienceWeight = 0.25
)

// Experience component values.
const (
	experienceMeets     = 100
	experienceOneBelow  = 70
	experienceFarBelow  = 40
	experienceNeutral   = 50
	experienceYearBonus = 10
)

// experienceRank orders the known levels. Unknown levels are treated as
// absent data.
var experienceRank = map[string]int{
	domain.ExperienceEntry:     0,
	domain.ExperienceMid:       1,
	domain.ExperienceSenior:    2,
	domain.ExperienceLead:      3,
	domain.ExperienceExecutive: 4,
}

// Score computes the deterministic 0-100 compatibility score for a candidate
// against a job and its company. It is pure: no I/O, no clock, no randomness,
// so repeated calls with identical snapshots are bit-identical. Any
// qualitative or ML-based ranking layered on top of the product lives behind
// a separate interface and never replaces this value for match bookkeeping.
func Score(candidate *domain.CandidateSnapshot, job *domain.JobSnapshot, company *domain.CompanySnapshot) int {
	skill := skillComponent(candidate.Skills, job.RequiredSkills)
	culture := cultureComponent(candidate.CulturePreferences, company.CultureTraits)
	experience := experienceComponent(candidate, job)

	total := SkillWeight*float64(skill) + CultureWeight*float64(culture) + ExperienceWeight*float64(experience)

	return clamp(int(total))
}

// skillComponent is the fraction of the job's required skills the candidate
// covers, scaled to 100. A job declaring no required skills scores 100.
func skillComponent(skills, required []string) int {
	if len(required) == 0 {
		return 100
	}
	matched := 0
	for _, req := range required {
		for _, have := range skills {
			if containsEitherWay(req, have) {
				matched++
				break
			}
		}
	}
	return matched * 100 / len(required)
}

// cultureComponent is the fraction of the company's traits the candidate's
// stated preferences cover, scaled to 100. A company declaring no traits is
// neutral (50), not penalized.
func cultureComponent(prefs, traits []string) int {
	if len(traits) == 0 {
		return 50
	}
	matched := 0
	for _, trait := range traits {
		for _, pref := range prefs {
			if containsEitherWay(trait, pref) {
				matched++
				break
			}
		}
	}
	return matched * 100 / len(traits)
}

// experienceComponent compares ordinal levels: meeting or exceeding the
// requirement scores 100, one level below 70, further below 40, missing data
// on either side 50. A +10 years bonus applies only when the job declares a
// minimum and the candidate's years meet it.
func experienceComponent(candidate *domain.CandidateSnapshot, job *domain.JobSnapshot) int {
	score := experienceNeutral

	candRank, haveCand := rankOf(candidate.ExperienceLevel)
	jobRank, haveJob := rankOf(job.ExperienceLevel)

	if haveCand && haveJob {
		switch {
		case candRank >= jobRank:
			score = experienceMeets
		case jobRank-candRank == 1:
			score = experienceOneBelow
		default:
			score = experienceFarBelow
		}
	}

	if job.MinYearsRequired != nil && candidate.YearsExperience != nil &&
		*candidate.YearsExperience >= *job.MinYearsRequired {
		score += experienceYearBonus
	}

	if score > 100 {
		score = 100
	}
	return score
}

func rankOf(level *string) (int, bool) {
	if level == nil {
		return 0, false
	}
	rank, ok := experienceRank[strings.ToLower(strings.TrimSpace(*level))]
	return rank, ok
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
