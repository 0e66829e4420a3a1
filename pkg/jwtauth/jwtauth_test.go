package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailVerificationRoundTrip(t *testing.T) {
	m := NewManager("secret", "court-booking")

	token, expiresAt, err := m.IssueEmailVerification("  Student@MietJammu.in ", 15*time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 2*time.Second)

	email, err := m.VerifyEmailVerification(token)
	require.NoError(t, err)
	assert.Equal(t, "student@mietjammu.in", email)
}

func TestEmailVerification_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	m := NewManager("secret", "court-booking").WithClock(func() time.Time { return past })

	token, _, err := m.IssueEmailVerification("a@mietjammu.in", 15*time.Minute)
	require.NoError(t, err)

	_, err = m.VerifyEmailVerification(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestEmailVerification_WrongSecret(t *testing.T) {
	token, _, err := NewManager("one", "x").IssueEmailVerification("a@mietjammu.in", time.Minute)
	require.NoError(t, err)

	_, err = NewManager("two", "x").VerifyEmailVerification(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPurposeIsEnforced(t *testing.T) {
	m := NewManager("secret", "x")

	adminToken, _, err := m.IssueAdmin("admin-1", time.Hour)
	require.NoError(t, err)
	_, err = m.VerifyEmailVerification(adminToken)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	emailToken, _, err := m.IssueEmailVerification("a@mietjammu.in", time.Hour)
	require.NoError(t, err)
	_, err = m.VerifyAdmin(emailToken)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	id, err := m.VerifyAdmin(adminToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", id)
}

func TestGarbageToken(t *testing.T) {
	_, err := NewManager("secret", "x").VerifyAdmin("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBookingAction_BoundToBookingAndAction(t *testing.T) {
	m := NewManager("secret", "x")

	token, _, err := m.IssueBookingAction("b-1", ActionApprove, time.Hour)
	require.NoError(t, err)

	assert.NoError(t, m.VerifyBookingAction(token, "b-1", ActionApprove))
	assert.ErrorIs(t, m.VerifyBookingAction(token, "b-2", ActionApprove), ErrInvalidToken)
	assert.ErrorIs(t, m.VerifyBookingAction(token, "b-1", ActionReject), ErrInvalidToken)

	adminToken, _, err := m.IssueAdmin("b-1", time.Hour)
	require.NoError(t, err)
	assert.ErrorIs(t, m.VerifyBookingAction(adminToken, "b-1", ActionApprove), ErrWrongPurpose)

	_, err = m.VerifyAdmin(token)
	assert.ErrorIs(t, err, ErrWrongPurpose)
}

func TestBookingAction_UnknownAction(t *testing.T) {
	_, _, err := NewManager("secret", "x").IssueBookingAction("b-1", "delete", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBookingAction_Expired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	m := NewManager("secret", "x").WithClock(func() time.Time { return past })

	token, _, err := m.IssueBookingAction("b-1", ActionReject, time.Hour)
	require.NoError(t, err)

	assert.ErrorIs(t, m.VerifyBookingAction(token, "b-1", ActionReject), ErrExpiredToken)
}
