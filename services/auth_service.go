package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gin-bookreview/constants"
	"gin-bookreview/models"
	"gin-bookreview/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenLifetime  = time.Hour
	refreshTokenLifetime = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthClaims is the payload of both access and refresh tokens. Type
// distinguishes the two so a refresh token cannot authenticate a request.
type AuthClaims struct {
	Email  string   `json:"email"`
	Staff  bool     `json:"is_staff"`
	Groups []string `json:"groups"`
	Type   string   `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type IAuthService interface {
	Register(email string, password string) (*models.User, error)
	Login(email string, password string) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	Logout(tokenString string) error
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository      repositories.IUserRepository
	tokenRepository repositories.ITokenRepository
}

func NewAuthService(repository repositories.IUserRepository, tokenRepository repositories.ITokenRepository) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
	}
}

// NormalizeEmail lowercases and trims an email so lookups and the unique
// constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(email string, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    NormalizeEmail(email),
		Password: string(hashedPassword),
		Active:   true,
	}
	created, err := s.repository.CreateUser(user)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func (s *AuthService) Login(email string, password string) (*TokenPair, error) {
	foundUser, err := s.repository.FindByEmail(NormalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !foundUser.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createTokenPair(foundUser)
}

func (s *AuthService) createTokenPair(user *models.User) (*TokenPair, error) {
	access, err := createToken(user, tokenTypeAccess, accessTokenLifetime)
	if err != nil {
		return nil, err
	}
	refresh, err := createToken(user, tokenTypeRefresh, refreshTokenLifetime)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func createToken(user *models.User, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		Email:  user.Email,
		Staff:  user.Staff,
		Groups: user.GroupNames(),
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti keeps rotated tokens distinct even within one second.
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("SECRET_KEY")))
}

func parseToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetUserFromToken resolves an access token to the current database user,
// so revoked roles and group changes take effect immediately.
func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != tokenTypeAccess {
		return nil, ErrInvalidToken
	}

	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, ErrInvalidToken
	}

	return s.repository.FindByEmail(claims.Email)
}

// Refresh exchanges a valid refresh token for a new token pair. The consumed
// refresh token is blacklisted so it cannot be replayed. Token faults are
// reported as ErrInvalidToken; anything else is a store failure.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := parseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.Type != tokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(refreshToken)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, ErrInvalidToken
	}

	user, err := s.repository.FindByEmail(claims.Email)
	if err != nil {
		// The subject no longer exists; the token is as good as revoked.
		if err.Error() == constants.ErrUserNotFound {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if err := s.tokenRepository.AddBlacklistedToken(refreshToken, claims.ExpiresAt.Unix()); err != nil {
		return nil, err
	}
	_ = s.tokenRepository.CleanExpiredTokens()

	return s.createTokenPair(user)
}

func (s *AuthService) Logout(tokenString string) error {
	claims, err := parseToken(tokenString)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(accessTokenLifetime).Unix()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}

	if err := s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt); err != nil {
		return err
	}
	_ = s.tokenRepository.CleanExpiredTokens()
	return nil
}
