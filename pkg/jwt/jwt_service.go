package jwt

import (
	"Meal-Planner-Backend/domain"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
)

const (
	SessionDuration = 7 * 24 * time.Hour

	purposeSession = "session"
	purposeReset   = "password_reset"
)

type (
	JWTService interface {
		GenerateTokenUser(username string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUsernameByToken(token string) (string, error)
		GenerateTokenResetPassword(username string, duration time.Duration) (string, error)
		ValidateTokenResetPassword(token string) (string, error)
	}

	jwtUserClaim struct {
		Username string `json:"username"`
		Purpose  string `json:"purpose"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

func NewJWTService(secretKey string) JWTService {
	if secretKey == "" {
		log.Warn("JWT_SECRET is not set, using an insecure development secret")
		secretKey = "meal-planner-dev-secret"
	}
	return &jwtService{
		secretKey: secretKey,
		issuer:    "MEAL-PLANNER",
		now:       time.Now,
	}
}

func (j *jwtService) sign(username, purpose string, duration time.Duration) (string, error) {
	now := j.now()
	claims := jwtUserClaim{
		username,
		purpose,
		jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) GenerateTokenUser(username string) (string, error) {
	return j.sign(username, purposeSession, SessionDuration)
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) claimsFor(token, purpose string) (*jwtUserClaim, error) {
	if token == "" {
		return nil, domain.ErrTokenNotFound
	}

	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok || claims.Purpose != purpose || claims.Username == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func (j *jwtService) GetUsernameByToken(token string) (string, error) {
	claims, err := j.claimsFor(token, purposeSession)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

func (j *jwtService) GenerateTokenResetPassword(username string, duration time.Duration) (string, error) {
	return j.sign(username, purposeReset, duration)
}

func (j *jwtService) ValidateTokenResetPassword(token string) (string, error) {
	claims, err := j.claimsFor(token, purposeReset)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}
