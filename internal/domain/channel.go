package domain

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ekranoplan/backend/internal/common"
	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/model"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/xcontext"
)

type ChannelDomain interface {
	CreateChannel(context.Context, *model.CreateChannelRequest) (*model.CreateChannelResponse, error)
	GetChannelPermissions(context.Context, *model.GetChannelPermissionsRequest) (*model.GetChannelPermissionsResponse, error)
}

type channelDomain struct {
	channelRepo      repository.ChannelRepository
	sessionVerifier  *common.SessionVerifier
	channelVerifier  *common.ChannelVerifier
	channelValidator *common.ChannelValidator
}

func NewChannelDomain(
	channelRepo repository.ChannelRepository,
	sessionVerifier *common.SessionVerifier,
	channelVerifier *common.ChannelVerifier,
) ChannelDomain {
	return &channelDomain{
		channelRepo:      channelRepo,
		sessionVerifier:  sessionVerifier,
		channelVerifier:  channelVerifier,
		channelValidator: common.NewChannelValidator(channelRepo),
	}
}

func (d *channelDomain) CreateChannel(
	ctx context.Context, req *model.CreateChannelRequest,
) (*model.CreateChannelResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty channel name")
	}

	member, _, err := d.sessionVerifier.ResolveMember(ctx, xcontext.AccessToken(ctx), req.GuildID, true)
	if err != nil {
		return nil, err
	}

	if !member.Owner {
		permissions, err := d.channelVerifier.Baseline(ctx, member)
		if err != nil {
			return nil, err
		}

		if !permissions.Has(entity.ADMINISTRATOR) && !permissions.Has(entity.MANAGE_CHANNEL) {
			return nil, errorx.New(errorx.PermissionDenied, "Missing permission %s", entity.MANAGE_CHANNEL)
		}
	}

	if req.ParentID != 0 {
		if _, err := d.channelValidator.ValidateParent(ctx, req.ParentID, req.GuildID); err != nil {
			return nil, err
		}
	}

	if err := d.channelValidator.ValidatePosition(ctx, req.Position, req.GuildID); err != nil {
		return nil, err
	}

	channel := &entity.GuildChannel{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		GuildID:       req.GuildID,
		Name:          req.Name,
		Position:      req.Position,
		ParentID:      sql.NullInt64{Int64: req.ParentID, Valid: req.ParentID != 0},
	}

	if err := d.channelRepo.Create(ctx, channel); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create channel: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot create channel")
	}

	return &model.CreateChannelResponse{Channel: convertChannel(channel)}, nil
}

func (d *channelDomain) GetChannelPermissions(
	ctx context.Context, req *model.GetChannelPermissionsRequest,
) (*model.GetChannelPermissionsResponse, error) {
	member, _, err := d.sessionVerifier.ResolveMember(ctx, xcontext.AccessToken(ctx), req.GuildID, false)
	if err != nil {
		return nil, err
	}

	channel, err := d.channelVerifier.ResolveChannel(ctx, req.ChannelID, req.GuildID)
	if err != nil {
		return nil, err
	}

	permissions, err := d.channelVerifier.EffectivePermissions(ctx, member, channel)
	if err != nil {
		return nil, err
	}

	return &model.GetChannelPermissionsResponse{
		Permissions: uint64(permissions),
		Names:       permissions.Names(),
	}, nil
}
