package common

import (
	"context"
	"errors"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ChannelValidator struct {
	channelRepo repository.ChannelRepository
}

func NewChannelValidator(channelRepo repository.ChannelRepository) *ChannelValidator {
	return &ChannelValidator{channelRepo: channelRepo}
}

// ValidateParent returns the parent channel, which must belong to guildID.
func (v *ChannelValidator) ValidateParent(
	ctx context.Context,
	parentID, guildID int64,
) (*entity.GuildChannel, error) {
	parent, err := v.channelRepo.GetByID(ctx, parentID, guildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.BadRequest, "Invalid parent channel")
		}

		xcontext.Logger(ctx).Errorf("Cannot get parent channel %d: %v", parentID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot validate parent channel")
	}

	return parent, nil
}

// ValidatePosition accepts only the position right after the highest one in
// the guild. The first channel of a guild has position 1.
func (v *ChannelValidator) ValidatePosition(ctx context.Context, position int, guildID int64) error {
	channels, err := v.channelRepo.GetByGuildID(ctx, guildID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get channels of guild %d: %v", guildID, err)
		return errorx.New(errorx.Unavailable, "Cannot validate channel position")
	}

	maxPosition := 0
	for i, channel := range channels {
		if i == 0 || channel.Position > maxPosition {
			maxPosition = channel.Position
		}
	}

	if position != maxPosition+1 {
		return errorx.New(errorx.BadRequest, "Invalid channel position, expected %d", maxPosition+1)
	}

	return nil
}
