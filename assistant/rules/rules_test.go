package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelink/hirelink/assistant/rules"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

func TestRespondTopics(t *testing.T) {
	cases := []struct {
		name    string
		message string
		role    seeker.Role
		want    string
	}{
		{"job search", "help me find job openings", seeker.RoleJobSeeker, "I can help you find jobs"},
		{"profile", "how do I update profile", seeker.RoleJobSeeker, "complete your profile"},
		{"apply", "how to apply", seeker.RoleJobSeeker, "To apply for a job"},
		{"status", "check status please", seeker.RoleJobSeeker, "My Applications"},
		{"saved jobs", "where are my saved job bookmarks", seeker.RoleJobSeeker, "Saved Jobs feature"},
		{"alerts", "set up an alert", seeker.RoleJobSeeker, "Job Alerts"},
		{"recruiter post job", "how do I post job", seeker.RoleRecruiter, "post a new job"},
		{"recruiter company", "register my company", seeker.RoleRecruiter, "manage your company"},
		{"features seeker", "what can you do", seeker.RoleJobSeeker, "Finding Jobs"},
		{"features recruiter", "what can you do", seeker.RoleRecruiter, "As a recruiter"},
		{"resume", "resume advice", seeker.RoleJobSeeker, "Resume Tips"},
		{"skills", "which skill should I add", seeker.RoleJobSeeker, "Adding Skills"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, rules.Respond(tc.message, tc.role), tc.want)
		})
	}
}

func TestRespondGreetingByRole(t *testing.T) {
	assert.Contains(t, rules.Respond("hello", seeker.RoleJobSeeker), "find your dream job")
	assert.Contains(t, rules.Respond("hello", seeker.RoleRecruiter), "find great candidates")
}

func TestRespondThanks(t *testing.T) {
	assert.Contains(t, rules.Respond("thank you", seeker.RoleJobSeeker), "job search")
	assert.Contains(t, rules.Respond("thank you", seeker.RoleRecruiter), "job postings")
}

func TestRespondDefault(t *testing.T) {
	reply := rules.Respond("xyzzy", seeker.RoleJobSeeker)
	assert.Contains(t, reply, "I'm here to help")
	assert.Contains(t, reply, "Setting up job alerts")

	recruiterReply := rules.Respond("xyzzy", seeker.RoleRecruiter)
	assert.Contains(t, recruiterReply, "Posting jobs")
}
