package auth

import (
	"fmt"
	"time"

	"k9-duty-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents JWT token claims for an authenticated employee
type Claims struct {
	EmployeeID uuid.UUID           `json:"employee_id"`
	Role       models.EmployeeRole `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates employee tokens. There is no interactive
// login flow here; tokens are minted by the deployment's identity layer and
// this service only owns the signing contract.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates an auth service with the given HMAC signing secret
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed JWT for an employee
func (s *Service) GenerateToken(employee *models.Employee) (string, error) {
	now := time.Now()
	claims := &Claims{
		EmployeeID: employee.ID,
		Role:       employee.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "k9-duty-backend",
			Subject:   employee.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("unknown role %q in token", claims.Role)
	}
	return claims, nil
}
