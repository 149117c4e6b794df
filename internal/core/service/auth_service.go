package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/junhobyun/customer-admin/internal/core/domain"
	"github.com/junhobyun/customer-admin/internal/core/ports"
)

// AuthService validates credentials against stored accounts and mints
// HS256-signed access tokens. Tokens are stateless: nothing is written on
// login and validity is decided purely by signature and expiry.
type AuthService struct {
	accounts  ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(accounts ports.AccountRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		// An unknown username gets the same answer as a wrong password so
		// the endpoint cannot be used to probe for account names.
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.mintToken(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *AuthService) mintToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       account.ID,
		"username": account.Username,
		"role":     string(account.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
