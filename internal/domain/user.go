package domain

import (
	"context"
	"errors"

	"github.com/ekranoplan/backend/internal/common"
	"github.com/ekranoplan/backend/internal/model"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
}

type userDomain struct {
	userRepo        repository.UserRepository
	sessionVerifier *common.SessionVerifier
}

func NewUserDomain(
	userRepo repository.UserRepository,
	sessionVerifier *common.SessionVerifier,
) UserDomain {
	return &userDomain{
		userRepo:        userRepo,
		sessionVerifier: sessionVerifier,
	}
}

func (d *userDomain) GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error) {
	user, err := d.sessionVerifier.ResolveUser(ctx, xcontext.AccessToken(ctx), false)
	if err != nil {
		return nil, err
	}

	return &model.GetMeResponse{User: convertUser(user)}, nil
}

func (d *userDomain) GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	if _, err := d.sessionVerifier.ResolveAdmin(ctx, xcontext.AccessToken(ctx)); err != nil {
		return nil, err
	}

	user, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user %d: %v", req.UserID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot get user")
	}

	return &model.GetUserResponse{User: convertUser(user)}, nil
}
