// Package intent classifies assistant messages and extracts search
// slots (job title, location, salary floor, company) from free text.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// ============================================================================
// Predicates
// ============================================================================

var applicationStatusKeywords = []string{
	"application status",
	"my application",
	"status of my application",
	"application update",
	"applied job",
	"application feedback",
	"did i get the job",
	"was i selected",
	"selection status",
}

func containsAny(normalized string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

func normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// IsApplicationHistory reports whether the user wants their full
// application history.
func IsApplicationHistory(message string) bool {
	normalized := normalize(message)
	return strings.Contains(normalized, "application history") ||
		strings.Contains(normalized, "all my applications")
}

// IsApplicationStatus reports whether the user asks about the state of
// their applications.
func IsApplicationStatus(message string) bool {
	normalized := normalize(message)
	if containsAny(normalized, applicationStatusKeywords) {
		return true
	}
	if strings.Contains(normalized, "application") && strings.Contains(normalized, "status") {
		return true
	}
	// "why was I rejected" style questions
	return strings.Contains(normalized, "why") && strings.Contains(normalized, "reject")
}

// IsSkillGap reports whether the user wants a skill gap analysis.
func IsSkillGap(message string) bool {
	normalized := normalize(message)
	return strings.Contains(normalized, "skill gap") ||
		strings.Contains(normalized, "missing skills")
}

// IsProfileCheck reports whether the user wants a profile completeness
// check.
func IsProfileCheck(message string) bool {
	normalized := normalize(message)
	return strings.Contains(normalized, "profile complete") ||
		strings.Contains(normalized, "check my profile")
}

// IsGuidance reports whether the user asks for platform guidance.
func IsGuidance(message string) bool {
	normalized := normalize(message)
	return strings.Contains(normalized, "upload my resume") ||
		strings.Contains(normalized, "upskilling") ||
		strings.Contains(normalized, "interview prep")
}

// IsCVOptimize reports whether the user wants CV keyword optimization.
func IsCVOptimize(message string) bool {
	normalized := normalize(message)
	return strings.Contains(normalized, "optimize cv") ||
		strings.Contains(normalized, "optimize my resume")
}

// IsInterviewStart reports whether the user wants to begin a mock
// interview.
func IsInterviewStart(message string) bool {
	normalized := normalize(message)
	return strings.Contains(normalized, "mock interview") ||
		strings.Contains(normalized, "start interview") ||
		strings.Contains(normalized, "general interview")
}

// ============================================================================
// Extractors
// ============================================================================

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:jobs?|positions?|opportunities?|openings?)\s+(?:in|near|at|around)\s+([A-Z][a-zA-Z\s]+?)(?:\s|$|,|\.|\?)`),
	regexp.MustCompile(`(?i)(?:in|near|at|around)\s+([A-Z][a-zA-Z\s]+?)(?:\s|$|,|\.|\?)`),
	regexp.MustCompile(`(?i)(?:show|find|search|get|list)\s+(?:me\s+)?(?:jobs?|positions?)\s+(?:in|near|at|around)\s+([A-Z][a-zA-Z\s]+?)(?:\s|$|,|\.|\?)`),
}

var commonCities = []string{
	"mumbai", "delhi", "bangalore", "hyderabad", "chennai",
	"pune", "kolkata", "ahmedabad", "jaipur", "surat",
}

// ExtractLocation pulls a location from the message, falling back to a
// list of common city names.
func ExtractLocation(message string) string {
	for _, pattern := range locationPatterns {
		if match := pattern.FindStringSubmatch(message); len(match) > 1 && match[1] != "" {
			return strings.TrimSpace(match[1])
		}
	}

	normalized := strings.ToLower(message)
	for _, city := range commonCities {
		if strings.Contains(normalized, city) {
			return strings.ToUpper(city[:1]) + city[1:]
		}
	}

	return ""
}

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:salary|pay|compensation)\s+(?:of|over|above|more than|greater than|>)\s*(\d{1,2}(?:\.\d{1,2})?)\s*(?:lakhs?|lpa)`),
	regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d{1,2})?)\s*lpa`),
	regexp.MustCompile(`(?i)over\s*(\d{1,2}(?:\.\d{1,2})?)\s*lakhs?`),
}

// ExtractSalary pulls a salary figure in lakhs per annum, or nil when
// the message mentions none.
func ExtractSalary(message string) *float64 {
	for _, pattern := range salaryPatterns {
		if match := pattern.FindStringSubmatch(message); len(match) > 1 && match[1] != "" {
			if value, err := strconv.ParseFloat(match[1], 64); err == nil {
				return &value
			}
		}
	}
	return nil
}

var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:skill gap for|missing skills for)\s+([a-zA-Z\s/]+)`),
	regexp.MustCompile(`(?i)(?:find|show me|search for)\s+([a-zA-Z\s/]+?)\s+jobs`),
	regexp.MustCompile(`(?i)([a-zA-Z\s/]+?)\s+jobs`),
}

// genericTitleWords are captures that carry no title information
var genericTitleWords = map[string]bool{
	"a": true, "an": true, "the": true, "any": true,
}

// searchVerbs are leading tokens stripped before the generic word
// check, so "find a jobs" yields no title instead of "find a"
var searchVerbs = map[string]bool{
	"find": true, "show": true, "me": true, "search": true,
	"for": true, "get": true, "list": true,
}

// ExtractJobTitle pulls a job title from the message, or "" when only
// generic filler words surround the jobs keyword.
func ExtractJobTitle(message string) string {
	for _, pattern := range jobTitlePatterns {
		match := pattern.FindStringSubmatch(message)
		if len(match) < 2 || match[1] == "" {
			continue
		}

		title := strings.TrimSpace(match[1])

		words := strings.Fields(title)
		for len(words) > 0 && searchVerbs[strings.ToLower(words[0])] {
			words = words[1:]
		}
		if len(words) == 0 {
			continue
		}
		stripped := strings.Join(words, " ")
		if genericTitleWords[strings.ToLower(stripped)] {
			continue
		}

		if len(words) < len(strings.Fields(title)) {
			return stripped
		}
		return title
	}

	return ""
}

var companyPattern = regexp.MustCompile(`(?i)(?:status of|application for|my)\s+([A-Z][a-zA-Z]+)`)

// ExtractCompany pulls a company name from an application status
// question.
func ExtractCompany(message string) string {
	if match := companyPattern.FindStringSubmatch(message); len(match) > 1 && match[1] != "" {
		return strings.TrimSpace(match[1])
	}
	return ""
}
