package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims structure for vendor bearer tokens
type Claims struct {
	VendorID int64  `json:"vendor_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service signs and validates vendor bearer tokens. Browser clients use
// cookie sessions; the bearer token exists for API integrations.
type Service struct {
	secret string
	expiry time.Duration
}

// NewService creates a new token service
func NewService(secret string, expiry time.Duration) *Service {
	return &Service{secret: secret, expiry: expiry}
}

// Generate signs a new bearer token for the vendor
func (s *Service) Generate(vendorID int64, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		VendorID: vendorID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "zamtransit-vendor-portal",
			Subject:   strconv.FormatInt(vendorID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate validates and parses a bearer token
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
