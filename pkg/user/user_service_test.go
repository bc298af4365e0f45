package user

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/testutil"
	"Meal-Planner-Backend/pkg/jwt"
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendMail(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to, subject, body})
	return m.err
}

func newTestService(t *testing.T) (UserService, UserRepository, *fakeMailer, jwt.JWTService) {
	t.Helper()
	repo := NewUserRepository(testutil.NewTestDB(t))
	jwtService := jwt.NewJWTService("test-secret")
	mailer := &fakeMailer{}
	return NewUserService(repo, jwtService, mailer, "http://localhost:3000/"), repo, mailer, jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, jwtService := newTestService(t)

	require.NoError(t, svc.Register(ctx, domain.CreateUserRequest{Username: "alice", Password: "hunter22"}))

	stored, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.Nil(t, stored.Email)

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)

	username, err := jwtService.GetUsernameByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	require.NoError(t, svc.Register(ctx, domain.CreateUserRequest{Username: "alice", Password: "pw"}))
	err := svc.Register(ctx, domain.CreateUserRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)
	require.NoError(t, svc.Register(ctx, domain.CreateUserRequest{Username: "alice", Password: "pw"}))

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{Username: "bob", Password: "pw"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestGetSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _, jwtService := newTestService(t)
	require.NoError(t, svc.Register(ctx, domain.CreateUserRequest{Username: "alice", Password: "pw"}))

	token, err := jwtService.GenerateTokenUser("alice")
	require.NoError(t, err)

	user, err := svc.GetSession(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	user, err = svc.GetSession(ctx, "garbage")
	require.NoError(t, err)
	assert.Nil(t, user)

	ghost, err := jwtService.GenerateTokenUser("ghost")
	require.NoError(t, err)
	user, err = svc.GetSession(ctx, ghost)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	svc, _, mailer, _ := newTestService(t)
	require.NoError(t, svc.Register(ctx, domain.CreateUserRequest{Username: "alice", Password: "oldpass", Email: "alice@example.com"}))

	require.NoError(t, svc.ForgotPassword(ctx, domain.ForgotPasswordRequest{Username: "alice"}))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "alice@example.com", mailer.sent[0].to)

	body := mailer.sent[0].body
	start := strings.Index(body, "token=")
	require.NotEqual(t, -1, start)
	end := strings.Index(body[start:], "\"")
	token, err := url.QueryUnescape(body[start+len("token=") : start+end])
	require.NoError(t, err)
	assert.Contains(t, body, "http://localhost:3000/auth/reset-password?token=")

	require.NoError(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: token, Password: "newpass"}))

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "oldpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "newpass"})
	assert.NoError(t, err)
}

func TestForgotPasswordIsSilent(t *testing.T) {
	ctx := context.Background()
	svc, _, mailer, _ := newTestService(t)
	require.NoError(t, svc.Register(ctx, domain.CreateUserRequest{Username: "noemail", Password: "pw"}))

	assert.NoError(t, svc.ForgotPassword(ctx, domain.ForgotPasswordRequest{Username: "nobody"}))
	assert.NoError(t, svc.ForgotPassword(ctx, domain.ForgotPasswordRequest{Username: "noemail"}))
	assert.Empty(t, mailer.sent)

	require.NoError(t, svc.Register(ctx, domain.CreateUserRequest{Username: "alice", Password: "pw", Email: "a@example.com"}))
	mailer.err = errors.New("smtp down")
	assert.NoError(t, svc.ForgotPassword(ctx, domain.ForgotPasswordRequest{Username: "alice"}))
}

func TestResetPasswordRejectsSessionToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _, jwtService := newTestService(t)
	require.NoError(t, svc.Register(ctx, domain.CreateUserRequest{Username: "alice", Password: "pw"}))

	session, err := jwtService.GenerateTokenUser("alice")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: session, Password: "newpass"})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
