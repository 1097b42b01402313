// Package interview drives the mock interview flow. State lives in
// the conversation context the client echoes back, so the flow itself
// is stateless.
package interview

import (
	"fmt"
	"strings"

	"github.com/hirelink/hirelink/assistant"
)

// StopPhrase ends an interview at any point
const StopPhrase = "stop interview"

const (
	stoppedReply = "You have ended the mock interview. Feel free to ask me anything else!"

	completedReply = "You have completed the mock interview! That was the last question. I hope that was helpful. Good luck for your interview"

	unknownRoleReply = "I can conduct interviews for roles like 'frontend developer', 'backend developer', or you can request a 'general' interview for common behavioral questions. What would you like to do?"
)

var questionsByRole = map[string][]string{
	"frontend developer": {
		"Explain the difference between null and undefined in JavaScript.",
		"What is the Box Model in CSS?",
		"What are React Hooks? Can you name a few?",
		"Describe the concept of 'state' in a React component.",
	},
	"backend developer": {
		"What is the difference between SQL and NoSQL databases?",
		"Explain the concept of RESTful APIs.",
		"What is middleware in the context of Express.js?",
		"How do you handle authentication in a web application?",
	},
	"data scientist": {
		"What is the difference between supervised and unsupervised learning?",
		"Explain overfitting and how you would prevent it.",
		"Describe a project where you used data cleaning techniques.",
		"What is your favorite machine learning algorithm and why?",
	},
	"product manager": {
		"How would you decide which features to build next?",
		"Describe a time you had to influence a team without direct authority.",
		"What's a product you love and why? What would you improve?",
		"How do you measure the success of a product?",
	},
	"ui/ux designer": {
		"Can you describe your design process?",
		"What is the difference between UI and UX?",
		"Tell me about a project you're particularly proud of and why.",
		"How do you handle negative feedback on your designs?",
	},
	"general": {
		"Tell me about yourself.",
		"What are your biggest strengths?",
		"What are your biggest weaknesses?",
		"Where do you see yourself in 5 years?",
		"Why are you interested in this field?",
	},
}

// roleOrder fixes the matching order so a message naming two roles
// resolves deterministically
var roleOrder = []string{
	"frontend developer",
	"backend developer",
	"data scientist",
	"product manager",
	"ui/ux designer",
	"general",
}

// Roles lists the roles an interview can be run for
func Roles() []string {
	roles := make([]string, len(roleOrder))
	copy(roles, roleOrder)
	return roles
}

// Start begins an interview when the message names a known role. The
// returned context carries the role and question position for
// subsequent turns.
func Start(message string) (string, assistant.Context) {
	normalized := strings.ToLower(message)

	for _, role := range roleOrder {
		if !strings.Contains(normalized, role) {
			continue
		}
		questions := questionsByRole[role]

		reply := fmt.Sprintf(
			"Okay, let's start a mock interview for a %s.\n\n**Question 1:** %s\n\nYou can say \"stop interview\" at any time to end it.",
			role, questions[0],
		)
		return reply, assistant.Context{
			InInterview:   true,
			JobTitle:      role,
			QuestionIndex: 0,
		}
	}

	return unknownRoleReply, assistant.Context{}
}

// Advance moves an in-progress interview to its next question. The
// user's answer is acknowledged but not evaluated. Saying the stop
// phrase or running out of questions ends the interview.
func Advance(message string, ctx assistant.Context) (string, assistant.Context) {
	if strings.Contains(strings.ToLower(message), StopPhrase) {
		return stoppedReply, assistant.Context{}
	}

	questions, ok := questionsByRole[ctx.JobTitle]
	if !ok {
		return stoppedReply, assistant.Context{}
	}

	next := ctx.QuestionIndex + 1
	if next >= len(questions) {
		return completedReply, assistant.Context{}
	}

	reply := fmt.Sprintf(
		"Great, let's move to the next question.\n\n**Question %d:** %s",
		next+1, questions[next],
	)
	ctx.QuestionIndex = next
	return reply, ctx
}
