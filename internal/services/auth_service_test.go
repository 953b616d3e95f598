package services

import (
	"testing"

	"github.com/caretrack/caretrack-backend/internal/dto"
	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "password123",
		FullName: "Jane Doe",
		JobTitle: "carer",
	}
}

func TestRegisterCreatesPendingAccount(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewAuthService(db, testConfig(), mailer)

	resp, err := svc.Register(registerRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, models.StatusPending, resp.User.Status)
	assert.Equal(t, models.RoleStaff, resp.User.Role)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].To)
}

func TestRegisterRoleFromJobTitle(t *testing.T) {
	tests := []struct {
		jobTitle string
		want     string
	}{
		{"manager", models.RoleAdmin},
		{"nurse", models.RoleAdmin},
		{"senior carer", models.RoleAdmin},
		{"carer", models.RoleStaff},
		{"cook", models.RoleStaff},
	}
	for _, tc := range tests {
		db := newTestDB(t)
		svc := NewAuthService(db, testConfig(), &fakeMailer{})

		req := registerRequest()
		req.JobTitle = tc.jobTitle
		resp, err := svc.Register(req)
		require.NoError(t, err, tc.jobTitle)
		assert.Equal(t, tc.want, resp.User.Role, tc.jobTitle)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeMailer{})

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(registerRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterSurvivesMailFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeMailer{err: assert.AnError})

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "jane@example.com").Error)
}

func TestLoginBlockedUntilApproved(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeMailer{})

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrPendingApproval)
}

func TestApproveThenLogin(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	auth := NewAuthService(db, testConfig(), mailer)
	staff := NewStaffService(db, mailer)

	resp, err := auth.Register(registerRequest())
	require.NoError(t, err)

	require.NoError(t, staff.Approve(resp.User.ID))
	require.Len(t, mailer.sent, 2)

	session, err := auth.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, models.StatusApproved, session.User.Status)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(session.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, models.RoleStaff, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeMailer{})

	seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)

	_, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeMailer{})

	seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)
	session, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	next, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: session.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, next.RefreshToken)

	// The used token is revoked and cannot be replayed.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: session.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: next.RefreshToken})
	require.NoError(t, err)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeMailer{})

	seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)
	session, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: session.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: session.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeMailer{})

	seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)

	require.NoError(t, svc.UpdatePassword(&dto.UpdatePasswordRequest{
		Email:    "jane@example.com",
		Password: "newpassword1",
	}))

	_, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "newpassword1"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdatePassword(&dto.UpdatePasswordRequest{
		Email:    "nobody@example.com",
		Password: "newpassword1",
	}), ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeMailer{})

	user := seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)

	icon := "icons/jane.png"
	resp, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FullName: "Jane A. Doe",
		Icon:     &icon,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane A. Doe", resp.FullName)
	require.NotNil(t, resp.Icon)
	assert.Equal(t, icon, *resp.Icon)
}
