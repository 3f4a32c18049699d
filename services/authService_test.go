package services

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"resto-api/config"
	"resto-api/dtos"
)

func newTestAuth(t *testing.T) *authService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &authService{
		cfg: config.AuthConfig{Username: "admin", PasswordHash: string(hash), JWTSecret: "test-secret", TokenTTL: time.Hour},
		now: time.Now,
	}
}

func TestLogin(t *testing.T) {
	svc := newTestAuth(t)

	tests := []struct {
		name    string
		input   dtos.LoginInput
		wantErr bool
	}{
		{name: "valid", input: dtos.LoginInput{Username: "admin", Password: "s3cret"}},
		{name: "wrong password", input: dtos.LoginInput{Username: "admin", Password: "nope"}, wantErr: true},
		{name: "wrong user", input: dtos.LoginInput{Username: "root", Password: "s3cret"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnauthorized) {
					t.Errorf("Login() error = %v, want ErrUnauthorized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if res.Token == "" || res.Role != RoleAdmin {
				t.Errorf("Login() = %+v", res)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	svc := newTestAuth(t)
	res, err := svc.Login(dtos.LoginInput{Username: "admin", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	session, err := svc.ParseToken(res.Token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if session.Username != "admin" || session.Role != RoleAdmin || session.ExpiresAt.Unix() != res.ExpiresAt {
		t.Errorf("session = %+v", session)
	}

	if _, err := svc.ParseToken(res.Token + "x"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("tampered token error = %v", err)
	}

	other := newTestAuth(t)
	other.cfg.JWTSecret = "another"
	if _, err := other.ParseToken(res.Token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("foreign secret error = %v", err)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := svc.ParseToken(res.Token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expired token error = %v", err)
	}
}
