package domain

import (
	"errors"
)

const (
	SessionCookieName = "currentUser"
	LocalsUserID      = "user_id"
	DateLayout        = "2006-01-02"
)

var (
	MesaageUserNotAllowed      = "user not allowed"
	MessageFailedBodyRequest   = "failed to parse request body"
	MessageFailedGetToken      = "failed to get token"
	MessageFailedTokenInvalid  = "failed to token invalid"
	MessageInternalServerError = "Internal server error"

	ErrUserNotAllowed     = errors.New("user not allowed")
	ErrTokenNotFound      = errors.New("failed to token not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrBackendUnavailable = errors.New("AI backend unavailable")
)
