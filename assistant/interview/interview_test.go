package interview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/assistant/interview"
)

func TestStartKnownRole(t *testing.T) {
	reply, ctx := interview.Start("start a mock interview for a frontend developer")

	assert.True(t, ctx.InInterview)
	assert.Equal(t, "frontend developer", ctx.JobTitle)
	assert.Equal(t, 0, ctx.QuestionIndex)
	assert.Contains(t, reply, "**Question 1:**")
	assert.Contains(t, reply, "null and undefined")
	assert.Contains(t, reply, "stop interview")
}

func TestStartUnknownRole(t *testing.T) {
	reply, ctx := interview.Start("start a mock interview")

	assert.False(t, ctx.InInterview)
	assert.Contains(t, reply, "frontend developer")
	assert.Contains(t, reply, "general")
}

func TestAdvanceMovesToNextQuestion(t *testing.T) {
	ctx := assistant.Context{InInterview: true, JobTitle: "general", QuestionIndex: 0}

	reply, next := interview.Advance("I am a software engineer with five years of experience", ctx)

	assert.True(t, next.InInterview)
	assert.Equal(t, 1, next.QuestionIndex)
	assert.Contains(t, reply, "**Question 2:**")
	assert.Contains(t, reply, "strengths")
}

func TestAdvanceStopsOnRequest(t *testing.T) {
	ctx := assistant.Context{InInterview: true, JobTitle: "general", QuestionIndex: 2}

	reply, next := interview.Advance("please stop interview now", ctx)

	assert.False(t, next.InInterview)
	assert.Contains(t, reply, "ended the mock interview")
}

func TestAdvanceCompletesAfterLastQuestion(t *testing.T) {
	ctx := assistant.Context{InInterview: true, JobTitle: "backend developer", QuestionIndex: 3}

	reply, next := interview.Advance("with sessions and JWTs", ctx)

	assert.False(t, next.InInterview)
	assert.Contains(t, reply, "completed the mock interview")
}

func TestAdvanceUnknownRoleEnds(t *testing.T) {
	ctx := assistant.Context{InInterview: true, JobTitle: "astronaut", QuestionIndex: 0}

	reply, next := interview.Advance("ready", ctx)

	assert.False(t, next.InInterview)
	assert.Contains(t, reply, "ended the mock interview")
}
