package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"time"

	"github.com/dgrijalva/jwt-go"

	"go-storefront/models"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// pseudoIDLen is how much of the password digest becomes the user id.
const pseudoIDLen = 12

var adminPattern = regexp.MustCompile(`(?i)@admin\b`)

// Claims represents the JWT claims
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT generates a JWT token for a user
func GenerateJWT(email, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// DigestPassword returns the hex SHA-256 digest of the password. The digest
// is a pseudo-identifier only; there is no credential store to verify
// against.
func DigestPassword(password string) (string, error) {
	h := sha256.New()
	if _, err := h.Write([]byte(password)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// PseudoID derives the opaque user id from a password digest.
func PseudoID(digest string) string {
	if len(digest) <= pseudoIDLen {
		return digest
	}
	return digest[:pseudoIDLen]
}

// DeriveRole assigns a role from the email address. Demo-only stand-in for
// real authorization: addresses at an "admin" domain get the admin role.
func DeriveRole(email string) models.Role {
	if adminPattern.MatchString(email) {
		return models.RoleAdmin
	}
	return models.RoleCustomer
}
