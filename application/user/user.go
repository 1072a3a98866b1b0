package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/table-booking/cmd/config"
	"github.com/muhammadheryan/table-booking/constant"
	"github.com/muhammadheryan/table-booking/model"
	identityrepo "github.com/muhammadheryan/table-booking/repository/identity"
	cerr "github.com/muhammadheryan/table-booking/utils/errors"
	"github.com/muhammadheryan/table-booking/utils/logger"
	validatorx "github.com/muhammadheryan/table-booking/utils/validator"
	"go.uber.org/zap"
)

const signUpSuccessMessage = "User registered successfully."

type UserApp interface {
	SignUp(ctx context.Context, req *model.SignUpRequest) (*model.SignUpResponse, error)
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error)
}

type UserAppImpl struct {
	config       *config.Config
	identityRepo identityrepo.IdentityRepository
	now          func() time.Time
}

func NewUserApp(config *config.Config, identityRepo identityrepo.IdentityRepository) UserApp {
	return &UserAppImpl{
		config:       config,
		identityRepo: identityRepo,
		now:          time.Now,
	}
}

func (s *UserAppImpl) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.SignUpResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, cerr.SetCustomErrorWithMessage(constant.ErrInvalidRequest, validatorx.Describe(err))
	}

	var err error
	if s.config.Auth.SuppressVerification {
		err = s.identityRepo.CreateConfirmedUser(ctx, req.Email, req.Password)
	} else {
		err = s.identityRepo.SignUp(ctx, req.Email, req.Password)
	}
	if err != nil {
		switch {
		case errors.Is(err, identityrepo.ErrUserExists):
			return nil, cerr.SetCustomError(constant.ErrUserExists)
		case errors.Is(err, identityrepo.ErrRejected):
			logger.Warn("[SignUp] provider rejected request", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrProvider)
		}
		logger.Error("[SignUp] err identityRepo.SignUp", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.SignUpResponse{Message: signUpSuccessMessage}, nil
}

func (s *UserAppImpl) SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, cerr.SetCustomErrorWithMessage(constant.ErrInvalidRequest, validatorx.Describe(err))
	}

	status, err := s.identityRepo.GetUserStatus(ctx, req.Email)
	if err != nil {
		if errors.Is(err, identityrepo.ErrUserNotFound) {
			return nil, cerr.SetCustomError(constant.ErrUserNotFound)
		}
		logger.Error("[SignIn] err identityRepo.GetUserStatus", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if status == model.UserStatusUnconfirmed {
		if !s.config.Auth.AutoConfirmUsers {
			return nil, cerr.SetCustomError(constant.ErrUserNotConfirmed)
		}
		if err = s.identityRepo.ConfirmUser(ctx, req.Email); err != nil {
			logger.Error("[SignIn] err identityRepo.ConfirmUser", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
	}

	tokens, err := s.identityRepo.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identityrepo.ErrNotAuthorized):
			return nil, cerr.SetCustomError(constant.ErrInvalidCredentials)
		case errors.Is(err, identityrepo.ErrUserNotFound):
			return nil, cerr.SetCustomError(constant.ErrUserNotFound)
		case errors.Is(err, identityrepo.ErrUserNotConfirmed):
			return nil, cerr.SetCustomError(constant.ErrUserNotConfirmed)
		}
		logger.Error("[SignIn] err identityRepo.Authenticate", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.SignInResponse{AccessToken: tokens.AccessToken}, nil
}

// ValidateToken resolves the caller behind an access token. Malformed and
// expired tokens are rejected locally; the signature and revocation state are
// checked by the identity provider.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error) {
	if err := s.precheckToken(tokenString); err != nil {
		return nil, cerr.SetCustomError(constant.ErrUnauthorize)
	}

	identity, err := s.identityRepo.GetUser(ctx, tokenString)
	if err != nil {
		// only a token the provider refuses is the caller's fault
		if errors.Is(err, identityrepo.ErrNotAuthorized) || errors.Is(err, identityrepo.ErrRejected) {
			return nil, cerr.SetCustomError(constant.ErrUnauthorize)
		}
		logger.Error("[ValidateToken] err identityRepo.GetUser", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return identity, nil
}

func (s *UserAppImpl) precheckToken(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(s.now()) {
		return fmt.Errorf("token expired")
	}
	return nil
}
