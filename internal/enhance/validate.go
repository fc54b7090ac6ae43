package enhance

import "strings"

// Acceptance checks for enhanced text. A rejected response keeps the
// original field value; these guard against the model returning option
// lists, empty text, or multi-paragraph sprawl where one answer was asked
// for.

func acceptSummary(s string) bool {
	return len(s) > 20 && !strings.Contains(strings.ToLower(s), "option")
}

func acceptResponsibility(s string) bool {
	return len(s) > 10 && !strings.Contains(strings.ToLower(s), "option")
}

func acceptProjectDescription(s string) bool {
	if len(s) < 20 {
		return false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "option") || strings.Contains(lower, "choose") {
		return false
	}
	return strings.Count(s, "\n\n") <= 2
}
