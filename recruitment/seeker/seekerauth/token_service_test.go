package seekerauth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/seeker"
	"github.com/hirelink/hirelink/recruitment/seeker/seekerauth"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := seekerauth.NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate("user-1", seeker.RoleRecruiter)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, kernel.UserID("user-1"), claims.UserID)
	assert.Equal(t, seeker.RoleRecruiter, claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issued := seekerauth.NewTokenService("secret-a", time.Hour)
	verifier := seekerauth.NewTokenService("secret-b", time.Hour)

	token, err := issued.Generate("user-1", seeker.RoleJobSeeker)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := seekerauth.NewTokenService("test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}
