package domain

import (
	"errors"
)

var (
	MessageSuccessCreateUser     = "User created successfully"
	MessageSuccessLogin          = "Logged in successfully"
	MessageSuccessLogout         = "Logged out successfully"
	MessageSuccessForgotPassword = "If the account has an email address, a reset link has been sent"
	MessageSuccessResetPassword  = "Password updated successfully"

	MessageFailedCredentialsRequired = "Username and password are required"
	MessageFailedUsernameTaken       = "Username is already taken"
	MessageFailedInvalidCredentials  = "Invalid username or password"
	MessageFailedCreateUser          = "An error occurred"
	MessageFailedLogin               = "An error occurred during login"
	MessageFailedForgotPassword      = "failed to send reset email"
	MessageFailedResetPassword       = "failed to reset password"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	CreateUserRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
		Email    string `json:"email" validate:"omitempty,email"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		User  SessionUser `json:"user"`
		Token string      `json:"-"`
	}

	SessionUser struct {
		Username string `json:"username"`
	}

	ForgotPasswordRequest struct {
		Username string `json:"username" validate:"required"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=6"`
	}
)
