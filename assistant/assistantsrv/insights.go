package assistantsrv

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/recruitment/application"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

const (
	bioMinLength  = 50
	minSkillCount = 5
	sectionScore  = 25
)

// buildApplicationReply renders application summaries into a status
// update. fetchAll switches between the full history phrasing and the
// recent-applications phrasing.
func buildApplicationReply(summaries []assistant.ApplicationSummary, fetchAll bool) string {
	if len(summaries) == 0 {
		return "I couldn't find any applications linked to your account yet. Once you apply for roles, I'll keep track of their status here."
	}

	count := "recent"
	if fetchAll {
		count = fmt.Sprintf("%d", len(summaries))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here is the latest update on your %s applications:", count)
	for i, card := range summaries {
		fmt.Fprintf(&b, "\n%d. %s at %s — Status: %s.", i+1, card.JobTitle, card.Company, strings.ToUpper(card.Status))
		if card.Feedback != "" {
			fmt.Fprintf(&b, " Feedback from the employer: %s.", card.Feedback)
		} else if card.Status == "rejected" {
			b.WriteString(" No specific feedback was provided.")
		}
		if len(card.SuggestedSkills) > 0 {
			fmt.Fprintf(&b, " Suggested skills to strengthen: %s.", strings.Join(card.SuggestedSkills, ", "))
		}
	}

	if !fetchAll {
		b.WriteString("\n\nLet me know if you'd like help improving any of those skills or finding similar roles.")
	}

	return b.String()
}

// buildStatusReply renders the application status answer, optionally
// narrowed to one company.
func buildStatusReply(summaries []assistant.ApplicationSummary, company string) (string, []assistant.ApplicationSummary) {
	filtered := summaries
	if company != "" {
		filtered = make([]assistant.ApplicationSummary, 0, len(summaries))
		for _, card := range summaries {
			if strings.Contains(strings.ToLower(card.Company), strings.ToLower(company)) {
				filtered = append(filtered, card)
			}
		}
	}

	if len(filtered) == 0 {
		scope := company
		if scope == "" {
			scope = "your account"
		}
		return fmt.Sprintf("I couldn't find any applications for %s.", scope), filtered
	}

	var b strings.Builder
	b.WriteString("Here is the latest update on your applications")
	if company != "" {
		fmt.Fprintf(&b, " for %s", company)
	}
	b.WriteString(":")
	for i, card := range filtered {
		fmt.Fprintf(&b, "\n%d. %s at %s — Status: %s.", i+1, card.JobTitle, card.Company, strings.ToUpper(card.Status))
	}

	return b.String(), filtered
}

// analyzeSkillGap compares the seeker's skills against the newest
// posting matching the title
func (s *Service) analyzeSkillGap(ctx context.Context, skr *seeker.Seeker, jobTitle string) string {
	posting, err := s.jobRepo.FindNewestByTitle(ctx, jobTitle)
	if err != nil || posting == nil {
		return fmt.Sprintf("I couldn't find a job matching the title %q to compare against.", jobTitle)
	}

	report := assistant.SkillGapReport{JobTitle: jobTitle}
	for _, req := range posting.Requirements {
		report.Required = append(report.Required, strings.ToLower(req.String()))
	}

	if skr != nil {
		for _, skill := range skr.Skills {
			report.Have = append(report.Have, strings.ToLower(skill))
		}
		report.Missing = skr.MissingSkills(report.Required)
	} else {
		report.Missing = report.Required
	}

	if len(report.Missing) == 0 {
		return fmt.Sprintf(
			"Congratulations! Your skills seem to be a perfect match for a %q role. You have all the required skills: %s.",
			report.JobTitle, strings.Join(report.Required, ", "),
		)
	}

	reply := fmt.Sprintf(
		"For a %q role, you're missing %d key skill(s): **%s**.",
		report.JobTitle, len(report.Missing), strings.Join(report.Missing, ", "),
	)
	if len(report.Have) > 0 {
		reply += fmt.Sprintf("\n\nYou currently have these relevant skills: %s.", strings.Join(report.Have, ", "))
	}
	reply += "\n\nI can suggest some resources to help you learn these skills. Just ask!"

	return reply
}

// checkProfileCompleteness scores the profile in four equal sections
// and collects suggestions for the incomplete ones
func checkProfileCompleteness(skr *seeker.Seeker) assistant.ProfileReport {
	if skr == nil {
		return assistant.ProfileReport{Suggestions: []string{"Profile not found."}}
	}

	var report assistant.ProfileReport

	if len(skr.Bio) > bioMinLength {
		report.Score += sectionScore
	} else if skr.Bio != "" {
		report.Suggestions = append(report.Suggestions, "Your bio is too short. Try to elaborate more on your professional background.")
	} else {
		report.Suggestions = append(report.Suggestions, "Add a professional summary or bio.")
	}

	if len(skr.Skills) >= minSkillCount {
		report.Score += sectionScore
	} else if len(skr.Skills) > 0 {
		report.Suggestions = append(report.Suggestions, fmt.Sprintf("Add more skills to your profile. You currently have %d, aim for at least 5.", len(skr.Skills)))
	} else {
		report.Suggestions = append(report.Suggestions, "Add skills to your profile (e.g., Python, React, Project Management).")
	}

	if skr.HasResume() {
		report.Score += sectionScore
	} else {
		report.Suggestions = append(report.Suggestions, "Upload your resume.")
	}

	if !skr.PhotoURL.IsEmpty() {
		report.Score += sectionScore
	} else {
		report.Suggestions = append(report.Suggestions, "Upload a professional profile photo.")
	}

	return report
}

func buildProfileReply(report assistant.ProfileReport) string {
	reply := fmt.Sprintf("Your profile is **%d%%** complete.", report.Score)
	if len(report.Suggestions) > 0 {
		reply += fmt.Sprintf("\n\nHere are some suggestions to improve it:\n- %s", strings.Join(report.Suggestions, "\n- "))
	} else {
		reply += "\n\nGreat job! Your profile is looking sharp."
	}
	return reply
}

var keywordSplitter = regexp.MustCompile(`[\s,.;:()]+`)

// cvStopWords are filler words excluded from keyword matching
var cvStopWords = map[string]bool{
	"and": true, "the": true, "is": true, "in": true, "a": true,
	"an": true, "to": true, "for": true, "of": true, "with": true,
	"on": true, "as": true, "at": true,
}

const maxMissingKeywords = 5

// optimizeCV measures keyword overlap between the profile and the
// newest posting matching the title
func (s *Service) optimizeCV(ctx context.Context, skr *seeker.Seeker, jobTitle string) string {
	posting, err := s.jobRepo.FindNewestByTitle(ctx, jobTitle)
	if err != nil || posting == nil {
		return fmt.Sprintf("I couldn't find a job matching %q.", jobTitle)
	}

	var userText string
	if skr != nil {
		userText = strings.ToLower(strings.Join(skr.Skills, " ") + " " + skr.Bio)
	}

	jobText := strings.ToLower(posting.Description + " " + strings.Join(posting.RequirementNames(), " "))

	seen := make(map[string]bool)
	var keywords []string
	for _, word := range keywordSplitter.Split(jobText, -1) {
		if len(word) <= 2 || cvStopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}

	matched := 0
	report := assistant.CVReport{JobTitle: jobTitle}
	for _, keyword := range keywords {
		if strings.Contains(userText, keyword) {
			matched++
		} else {
			report.Missing = append(report.Missing, keyword)
		}
	}

	if len(keywords) > 0 {
		report.MatchPercent = int(math.Round(float64(matched) / float64(len(keywords)) * 100))
	}
	if len(report.Missing) > maxMissingKeywords {
		report.Missing = report.Missing[:maxMissingKeywords]
	}

	reply := fmt.Sprintf("Your profile has a **%d%%** keyword match for a %q role.", report.MatchPercent, report.JobTitle)
	if len(report.Missing) > 0 {
		reply += fmt.Sprintf("\n\nTo improve your match, consider adding these keywords:\n- **%s**", strings.Join(report.Missing, "**\n- **"))
	} else {
		reply += "\n\nExcellent! Your profile seems well-optimized for this role."
	}

	return reply
}

// guidanceReply answers common platform how-to questions
func guidanceReply(normalized string) string {
	switch {
	case strings.Contains(normalized, "upload my resume"):
		return "You can upload your resume on your profile page. [Go to Profile](/profile)"
	case strings.Contains(normalized, "upskilling"):
		return "Improving your skills is a great idea! Check out platforms like Coursera, Udemy, or LinkedIn Learning."
	case strings.Contains(normalized, "interview prep"):
		return "Here are a few tips:\n- **Research the Company**\n- **Know Your Resume**\n- **Practice the STAR Method**"
	default:
		return ""
	}
}

// summarizeApplications converts detailed applications into their
// reply representation
func summarizeApplications(detailed []*application.Detailed, skr *seeker.Seeker) []assistant.ApplicationSummary {
	summaries := make([]assistant.ApplicationSummary, 0, len(detailed))
	for _, d := range detailed {
		summaries = append(summaries, assistant.NewApplicationSummary(d, skr))
	}
	return summaries
}
