package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelink/hirelink/recruitment/application"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    application.Status
		to      application.Status
		allowed bool
	}{
		{application.StatusPending, application.StatusShortlisted, true},
		{application.StatusPending, application.StatusAccepted, true},
		{application.StatusPending, application.StatusRejected, true},
		{application.StatusShortlisted, application.StatusAccepted, true},
		{application.StatusShortlisted, application.StatusRejected, true},
		{application.StatusShortlisted, application.StatusPending, false},
		{application.StatusAccepted, application.StatusRejected, false},
		{application.StatusRejected, application.StatusShortlisted, false},
		{application.StatusPending, application.StatusPending, false},
	}

	for _, tc := range cases {
		app := &application.Application{Status: tc.from}
		assert.Equal(t, tc.allowed, app.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestUpdateStatusRecordsFeedback(t *testing.T) {
	app := &application.Application{Status: application.StatusPending}

	err := app.UpdateStatus(application.StatusRejected, "Not enough backend experience")

	require.NoError(t, err)
	assert.Equal(t, application.StatusRejected, app.Status)
	assert.Equal(t, "Not enough backend experience", app.Feedback)
	assert.False(t, app.UpdatedAt.IsZero())
}

func TestUpdateStatusKeepsFeedbackWhenOmitted(t *testing.T) {
	app := &application.Application{Status: application.StatusPending, Feedback: "earlier note"}

	require.NoError(t, app.UpdateStatus(application.StatusShortlisted, ""))
	assert.Equal(t, "earlier note", app.Feedback)
}

func TestUpdateStatusRejectsTerminalTransition(t *testing.T) {
	app := &application.Application{Status: application.StatusAccepted}

	err := app.UpdateStatus(application.StatusRejected, "")

	require.Error(t, err)
	assert.Equal(t, application.StatusAccepted, app.Status)
}

func TestIsDecided(t *testing.T) {
	assert.False(t, (&application.Application{Status: application.StatusPending}).IsDecided())
	assert.False(t, (&application.Application{Status: application.StatusShortlisted}).IsDecided())
	assert.True(t, (&application.Application{Status: application.StatusAccepted}).IsDecided())
	assert.True(t, (&application.Application{Status: application.StatusRejected}).IsDecided())
}
