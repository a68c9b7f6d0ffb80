// Token generation and validation for the reviewer session.
package auth

import (
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var jwtKey []byte

func init() {
	jwtKey = []byte(os.Getenv("JWT_SECRET_KEY"))
	if len(jwtKey) == 0 {
		jwtKey = []byte("default_secret_key") // not for production
		log.Println("Warning: JWT_SECRET_KEY environment variable is not set. Using default key.")
	}
}

// Claims is the JWT payload. The tool has a single shared password, so the
// token only says "a reviewer logged in", not who.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken issues the reviewer token after a successful login.
func GenerateToken() (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "requerimentos-api",
			Subject:   "reviewer_auth_token",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a reviewer token.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
