package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single admin account, taken from configuration.
// When PasswordHash is set it takes precedence over the plain Password.
type Credentials struct {
	Email        string
	Password     string
	PasswordHash string
}

// Configured reports whether an admin account exists at all.
func (c Credentials) Configured() bool {
	return c.Email != "" && (c.Password != "" || c.PasswordHash != "")
}

// Verify checks an email/password pair. Email comparison is case-insensitive.
func (c Credentials) Verify(email, password string) bool {
	if !c.Configured() {
		return false
	}
	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(email))),
		[]byte(strings.ToLower(c.Email)),
	) == 1

	var passOK bool
	if c.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	}
	return emailOK && passOK
}

// HashPassword returns a bcrypt hash suitable for admin_password_hash.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
