package domain

import "strings"

// Keyword sets for order confirmation. Matching is case-insensitive exact
// membership covering Arabic and English with common informal spellings;
// anything outside both sets is neither a confirmation nor a cancellation.
var (
	ConfirmKeywords = []string{
		"نعم", "اي", "أجل", "موافق", "موافقة",
		"yes", "ok", "confirm", "yep", "yeah",
		"تمام", "اوكي", "وك", "اوك", "تم",
	}

	CancelKeywords = []string{
		"لا", "كلا", "ارفض",
		"no", "cancel", "nope",
		"الغاء",
	}
)

// IsConfirm reports whether text is a confirmation keyword
func IsConfirm(text string) bool {
	return matchKeyword(text, ConfirmKeywords)
}

// IsCancel reports whether text is a cancellation keyword
func IsCancel(text string) bool {
	return matchKeyword(text, CancelKeywords)
}

func matchKeyword(text string, set []string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, kw := range set {
		if text == kw {
			return true
		}
	}
	return false
}
