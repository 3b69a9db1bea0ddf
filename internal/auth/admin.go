package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure; the caller never
// learns which part of the credential pair was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuthenticator validates operator logins against the single admin
// identity configured through the environment. There is no user store; the
// directory has exactly one operator account.
type AdminAuthenticator struct {
	email        string
	passwordHash string
	jwt          *JWTManager
}

// NewAdminAuthenticator wires the authenticator. Empty credentials disable
// logins entirely.
func NewAdminAuthenticator(email, passwordHash string, jwtManager *JWTManager) *AdminAuthenticator {
	return &AdminAuthenticator{email: email, passwordHash: passwordHash, jwt: jwtManager}
}

// Login validates credentials and returns a signed admin token.
func (a *AdminAuthenticator) Login(email, password string) (string, error) {
	if a.email == "" || a.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.jwt.GenerateToken(a.email, "admin")
}
