package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"resto-api/config"
	"resto-api/dtos"
)

const RoleAdmin = "admin"

type AuthService interface {
	Login(input dtos.LoginInput) (*dtos.AuthResponse, error)
	ParseToken(token string) (*Session, error)
}

type authService struct {
	cfg config.AuthConfig
	now func() time.Time
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authService{cfg: cfg, now: time.Now}
}

// Login checks the single configured operator credential and issues a signed token.
func (s *authService) Login(input dtos.LoginInput) (*dtos.AuthResponse, error) {
	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.cfg.Username)) != 1 {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	now := s.now()
	expires := now.Add(s.cfg.TokenTTL)
	claims := sessionClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   input.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &dtos.AuthResponse{
		Message:   "Login successful",
		Token:     token,
		Role:      RoleAdmin,
		ExpiresAt: expires.Unix(),
	}, nil
}

func (s *authService) ParseToken(token string) (*Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	session := &Session{Username: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
