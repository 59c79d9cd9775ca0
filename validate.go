package helparc

import "strings"

// MinContentLength is the minimum trimmed length for an extracted content
// region to count as a meaningful extraction.
const MinContentLength = 100

// MinValidContentLength is the minimum trimmed length for converted
// content to pass validation.
const MinValidContentLength = 50

// errorIndicators mark content as an error page rather than an article.
var errorIndicators = []string{
	"404 not found",
	"page not found",
	"access denied",
	"forbidden",
	"error occurred",
}

// ValidContent reports whether converted content is meaningful: long
// enough after trimming and free of known error-page phrases.
func ValidContent(content string) bool {
	if len(strings.TrimSpace(content)) < MinValidContentLength {
		return false
	}
	lower := strings.ToLower(content)
	for _, indicator := range errorIndicators {
		if strings.Contains(lower, indicator) {
			return false
		}
	}
	return true
}
