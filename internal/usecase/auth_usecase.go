package usecase

import (
	"context"
	"errors"

	"go-dental-estimator/config"
	"go-dental-estimator/internal/delivery/dto"
	"go-dental-estimator/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidAdminSecret = errors.New("invalid admin secret")

// AuthUsecase exchanges the shared admin secret for a short-lived token that
// unlocks catalog administration.
type AuthUsecase interface {
	IssueAdminToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	authConfig config.AuthConfig
}

func NewAuthUsecase(log *logrus.Logger, jwtService *jwt.JWTService, authConfig config.AuthConfig) AuthUsecase {
	return &authUsecase{
		log:        log,
		jwtService: jwtService,
		authConfig: authConfig,
	}
}

func (u *authUsecase) IssueAdminToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(u.authConfig.AdminSecretHash), []byte(req.Secret)); err != nil {
		u.log.Warn("Admin token request with invalid secret")
		return nil, ErrInvalidAdminSecret
	}

	token, err := u.jwtService.GenerateAdminToken()
	if err != nil {
		u.log.Warnf("Failed to generate admin token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetTokenExpiry().Seconds()),
	}, nil
}
