package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/jwt"
	"Meal-Planner-Backend/pkg/user"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	UserHandler interface {
		CreateUser(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Session(c *fiber.Ctx) error
		ForgotPassword(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
	}

	userHandler struct {
		userService  user.UserService
		validator    *validator.Validate
		secureCookie bool
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate, secureCookie bool) UserHandler {
	return &userHandler{
		userService:  userService,
		validator:    validator,
		secureCookie: secureCookie,
	}
}

func (h *userHandler) CreateUser(c *fiber.Ctx) error {
	var req domain.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.PlainErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCredentialsRequired, err)
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := h.validator.Struct(req); err != nil {
		return presenters.PlainErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCredentialsRequired, nil)
	}

	if err := h.userService.Register(c.Context(), req); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return presenters.PlainErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUsernameTaken, nil)
		}
		log.Errorf("create user %s: %v", req.Username, err)
		return presenters.PlainErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCreateUser)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.PlainErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCredentialsRequired, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.PlainErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCredentialsRequired, nil)
	}

	res, err := h.userService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.PlainErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedInvalidCredentials, nil)
		}
		log.Errorf("login %s: %v", req.Username, err)
		return presenters.PlainErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    res.Token,
		Path:     "/",
		MaxAge:   int(jwt.SessionDuration.Seconds()),
		Expires:  time.Now().Add(jwt.SessionDuration),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return presenters.SuccessResponse(c, fiber.Map{"user": res.User}, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *userHandler) Session(c *fiber.Ctx) error {
	session, err := h.userService.GetSession(c.Context(), c.Cookies(domain.SessionCookieName))
	if err != nil {
		log.Errorf("session lookup: %v", err)
		return presenters.PlainErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
	}
	if session == nil {
		return c.JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{"user": session})
}

func (h *userHandler) ForgotPassword(c *fiber.Ctx) error {
	var req domain.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUsernameRequired, err)
	}

	if err := h.userService.ForgotPassword(c.Context(), req); err != nil {
		log.Errorf("forgot password %s: %v", req.Username, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedForgotPassword, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessForgotPassword)
}

func (h *userHandler) ResetPassword(c *fiber.Ctx) error {
	var req domain.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetPassword, err)
	}

	if err := h.userService.ResetPassword(c.Context(), req); err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenNotFound):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedResetPassword, err)
		}
		log.Errorf("reset password: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResetPassword, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetPassword)
}
