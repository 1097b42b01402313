package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelink/hirelink/assistant/intent"
)

func TestExtractJobTitle(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"search phrase", "find software engineer jobs in Bangalore with salary over 12 lakhs", "software engineer"},
		{"skill gap phrase", "skill gap for data administrator", "data administrator"},
		{"bare title", "backend developer jobs", "backend developer"},
		{"generic filler only", "find a jobs", ""},
		{"generic article", "show me any jobs", ""},
		{"leading verb stripped", "list python jobs", "python"},
		{"no title", "hello there", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, intent.ExtractJobTitle(tc.message))
		})
	}
}

func TestExtractLocation(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"jobs in city", "find software engineer jobs in Bangalore with salary over 12 lakhs", "Bangalore"},
		{"near city", "positions near Austin", "Austin"},
		{"city name fallback", "mumbai openings please", "Mumbai"},
		{"lowercase capture", "any jobs in pune?", "pune"},
		{"no location", "optimize my resume", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, intent.ExtractLocation(tc.message))
		})
	}
}

func TestExtractSalary(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    float64
	}{
		{"salary over lakhs", "jobs with salary over 12 lakhs", 12},
		{"bare lpa", "looking for 8.5 lpa roles", 8.5},
		{"over lakhs", "anything over 10 lakhs", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := intent.ExtractSalary(tc.message)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}

	assert.Nil(t, intent.ExtractSalary("find engineering jobs"))
}

func TestExtractCompany(t *testing.T) {
	assert.Equal(t, "Google", intent.ExtractCompany("status of Google application"))
	assert.Equal(t, "", intent.ExtractCompany("find engineering jobs"))
}

func TestPredicates(t *testing.T) {
	assert.True(t, intent.IsApplicationHistory("show me all my applications"))
	assert.True(t, intent.IsApplicationStatus("did I get the job?"))
	assert.True(t, intent.IsApplicationStatus("why was I rejected"))
	assert.False(t, intent.IsApplicationStatus("find engineering jobs"))
	assert.True(t, intent.IsSkillGap("what are my missing skills"))
	assert.True(t, intent.IsProfileCheck("is my profile complete"))
	assert.True(t, intent.IsGuidance("how do I upload my resume"))
	assert.True(t, intent.IsCVOptimize("optimize cv for software engineer"))
	assert.True(t, intent.IsInterviewStart("start a mock interview"))
	assert.False(t, intent.IsInterviewStart("tell me about interviews"))
}
