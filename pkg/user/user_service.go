package user

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"Meal-Planner-Backend/internal/utils/mailing"
	"Meal-Planner-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const ResetTokenDuration = 30 * time.Minute

type (
	UserService interface {
		Register(ctx context.Context, req domain.CreateUserRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetSession(ctx context.Context, token string) (*domain.SessionUser, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		appURL         string
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer, appURL string) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		appURL:         strings.TrimRight(appURL, "/"),
	}
}

func (s *userService) Register(ctx context.Context, req domain.CreateUserRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return domain.ErrInvalidCredentials
	}

	_, err := s.userRepository.GetUserByUsername(ctx, username)
	if err == nil {
		return domain.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPassword
	}

	user := &entities.User{
		Username: username,
		Password: string(hash),
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		user.Email = &email
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.Username)
	if err != nil {
		return domain.LoginResponse{}, fmt.Errorf("sign session: %w", err)
	}

	return domain.LoginResponse{
		User:  domain.SessionUser{Username: user.Username},
		Token: token,
	}, nil
}

// GetSession returns nil without error when the token is missing, invalid,
// or names a user that no longer exists.
func (s *userService) GetSession(ctx context.Context, token string) (*domain.SessionUser, error) {
	username, err := s.jwtService.GetUsernameByToken(token)
	if err != nil {
		return nil, nil
	}

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return &domain.SessionUser{Username: user.Username}, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("lookup user: %w", err)
	}
	if user.Email == nil || *user.Email == "" {
		return nil
	}

	token, err := s.jwtService.GenerateTokenResetPassword(user.Username, ResetTokenDuration)
	if err != nil {
		return fmt.Errorf("sign reset token: %w", err)
	}

	link := fmt.Sprintf("%s/auth/reset-password?token=%s", s.appURL, url.QueryEscape(token))
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Use the link below to choose a new password. It expires in %d minutes.</p><p><a href=\"%s\">%s</a></p>",
		user.Username, int(ResetTokenDuration.Minutes()), link, link,
	)

	if err := s.mailer.SendMail(*user.Email, "Reset your Meal Planner password", body); err != nil {
		log.Errorf("send reset mail to %s: %v", user.Username, err)
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	username, err := s.jwtService.ValidateTokenResetPassword(req.Token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPassword
	}

	if err := s.userRepository.UpdatePassword(ctx, username, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
