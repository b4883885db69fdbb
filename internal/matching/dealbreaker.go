// Package matching holds the pure functions of the engine: the deal-breaker
// filter and the compatibility scorer. Nothing here does I/O, touches the
// clock, or reads random state, so identical inputs always produce identical
// outputs.
package matching

import (
	"fmt"
	"strconv"
	"strings"

	"go-jobswipe-backend/internal/domain"
)

// EvaluateDealBreakers checks each of the candidate's hard constraints
// against the job and company snapshots. The result is advisory: it never
// blocks a swipe from being recorded, but callers gate right/super swipes on
// an explicit override when the list is non-empty.
//
// Absence of a preference means no constraint. Missing job data resolves
// optimistically (no violation).
func EvaluateDealBreakers(prefs []domain.DealBreaker, job *domain.JobSnapshot, company *domain.CompanySnapshot) []domain.Violation {
	var violations []domain.Violation

	for _, pref := range prefs {
		switch pref.Type {
		case domain.DealBreakerMinSalary:
			want, err := strconv.ParseFloat(pref.Value, 64)
			if err != nil || job.SalaryMax == nil {
				continue
			}
			if *job.SalaryMax < want {
				violations = append(violations, domain.Violation{
					Type:     pref.Type,
					Expected: pref.Value,
					Actual:   strconv.FormatFloat(*job.SalaryMax, 'f', -1, 64),
				})
			}
		case domain.DealBreakerJobType:
			if job.JobType == nil {
				continue
			}
			if !memberOf(pref.Value, *job.JobType) {
				violations = append(violations, domain.Violation{
					Type:     pref.Type,
					Expected: pref.Value,
					Actual:   *job.JobType,
				})
			}
		case domain.DealBreakerLocation:
			if job.Location == nil {
				continue
			}
			if !containsEitherWay(pref.Value, *job.Location) {
				violations = append(violations, domain.Violation{
					Type:     pref.Type,
					Expected: pref.Value,
					Actual:   *job.Location,
				})
			}
		case domain.DealBreakerRemoteOnly:
			want, err := strconv.ParseBool(pref.Value)
			if err != nil || !want || job.Remote == nil {
				continue
			}
			if !*job.Remote {
				violations = append(violations, domain.Violation{
					Type:     pref.Type,
					Expected: "remote",
					Actual:   "on-site",
				})
			}
		}
	}

	return violations
}

// containsEitherWay reports case-insensitive substring containment in either
// direction, so "Tokyo" matches "Tokyo, Japan" and vice versa.
func containsEitherWay(a, b string) bool {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// memberOf reports whether value appears in a comma-separated set,
// case-insensitively.
func memberOf(wanted, set string) bool {
	for _, item := range strings.Split(set, ",") {
		if strings.EqualFold(strings.TrimSpace(item), strings.TrimSpace(wanted)) {
			return true
		}
	}
	return false
}

// DescribeViolations renders a violation list for log lines.
func DescribeViolations(violations []domain.Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, fmt.Sprintf("%s: wanted %s, got %s", v.Type, v.Expected, v.Actual))
	}
	return strings.Join(parts, "; ")
}
