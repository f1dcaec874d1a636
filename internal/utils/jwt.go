package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTClaims struct {
	UserType string `json:"user_type"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c *JWTClaims) IsAdmin() bool {
	return c.UserType == UserTypeAdmin
}

// GenerateAdminToken signs an HS256 admin token for subject (usually the
// operator's email). ttl <= 0 uses AdminTokenTTL.
func GenerateAdminToken(subject, email, secretKey string, ttl time.Duration) (string, error) {
	if secretKey == "" {
		return "", errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = AdminTokenTTL
	}

	now := time.Now()
	claims := &JWTClaims{
		UserType: UserTypeAdmin,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    AppName,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func ValidateToken(tokenString, secretKey string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
