package jwt

import (
	"errors"
	"time"

	"go-dental-estimator/config"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the only role the estimator issues tokens for.
const AdminRole = "admin"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.AuthConfig
}

func NewJWTService(cfg config.AuthConfig) *JWTService {
	return &JWTService{config: cfg}
}

func (s *JWTService) GenerateAdminToken() (string, error) {
	claims := Claims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "catalog-admin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetTokenExpiry() time.Duration {
	return s.config.TokenExpiry
}
