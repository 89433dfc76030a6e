package generator

import (
	"strings"

	"fitgen/workout-service/internal/domain"
)

type safetyRule struct {
	excluded []string
	maxRPE   int
}

// bmiSafety maps a BMI category to the exercises it rules out and its
// exertion cap. Exclusions match title or type, case-insensitively; an "All "
// prefix reads as the bare keyword.
var bmiSafety = map[string]safetyRule{
	domain.BMISevereUnderweight: {excluded: []string{"Heavy Lifting", "Powerlifting", "Max Effort"}, maxRPE: 8},
	domain.BMIUnderweight:       {excluded: []string{"Heavy Powerlifting"}, maxRPE: 9},
	domain.BMINormal:            {maxRPE: 10},
	domain.BMIOverweight:        {excluded: []string{"High-Impact Plyometrics"}, maxRPE: 9},
	domain.BMIObese:             {excluded: []string{"Jumps", "Plyometrics", "Running", "High-Impact"}, maxRPE: 8},
	domain.BMISeverelyObese:     {excluded: []string{"Jumps", "Sprints", "Burpees", "All High-Impact"}, maxRPE: 7},
	domain.BMIExtremelyObese:    {excluded: []string{"All Plyometrics", "Complex Movements"}, maxRPE: 6},
}

func safetyFor(bmiCategory string) safetyRule {
	if rule, ok := bmiSafety[bmiCategory]; ok {
		return rule
	}
	return bmiSafety[domain.BMINormal]
}

// RPERange returns the perceived exertion window allowed for a BMI category.
func RPERange(bmiCategory string) [2]int {
	maxRPE := safetyFor(bmiCategory).maxRPE
	return [2]int{maxRPE - 3, maxRPE}
}

func (r safetyRule) allows(ex domain.Exercise) bool {
	title := strings.ToLower(ex.Title)
	typ := strings.ToLower(ex.Type)
	for _, keyword := range r.excluded {
		kw := strings.ToLower(strings.TrimPrefix(keyword, "All "))
		if strings.Contains(title, kw) || strings.Contains(typ, kw) {
			return false
		}
	}
	return true
}

// injuryConflict returns the first injury whose name appears in the body part
// of ex, or "" when none does.
func injuryConflict(ex domain.Exercise, injuries []string) string {
	bodyPart := strings.ToLower(ex.BodyPart)
	for _, injury := range injuries {
		injury = strings.TrimSpace(injury)
		if injury != "" && strings.Contains(bodyPart, strings.ToLower(injury)) {
			return injury
		}
	}
	return ""
}
