package domain

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ekranoplan/backend/internal/common"
	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/model"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/numberutil"
	"github.com/ekranoplan/backend/pkg/xcontext"
)

type MessageDomain interface {
	GetMessages(context.Context, *model.GetMessagesRequest) (*model.GetMessagesResponse, error)
	GetMessage(context.Context, *model.GetMessageRequest) (*model.GetMessageResponse, error)
	CreateMessage(context.Context, *model.CreateMessageRequest) (*model.CreateMessageResponse, error)
}

type messageDomain struct {
	messageRepo     repository.MessageRepository
	paginator       *MessagePaginator
	channelVerifier *common.ChannelVerifier
}

func NewMessageDomain(
	messageRepo repository.MessageRepository,
	channelVerifier *common.ChannelVerifier,
) MessageDomain {
	return &messageDomain{
		messageRepo:     messageRepo,
		paginator:       NewMessagePaginator(messageRepo),
		channelVerifier: channelVerifier,
	}
}

func (d *messageDomain) GetMessages(
	ctx context.Context, req *model.GetMessagesRequest,
) (*model.GetMessagesResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	_, _, _, err := d.channelVerifier.ResolveChannelPermission(
		ctx, xcontext.AccessToken(ctx), req.GuildID, req.ChannelID, entity.READ_MESSAGE_HISTORY, false)
	if err != nil {
		return nil, err
	}

	messages, err := d.paginator.ListMessages(ctx, req.ChannelID, req.Before, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list messages of channel %d: %v", req.ChannelID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot get messages")
	}

	result := []model.Message{}
	for _, msg := range messages {
		result = append(result, convertMessage(&msg))
	}

	return &model.GetMessagesResponse{Messages: result}, nil
}

func (d *messageDomain) GetMessage(
	ctx context.Context, req *model.GetMessageRequest,
) (*model.GetMessageResponse, error) {
	_, _, _, err := d.channelVerifier.ResolveChannelPermission(
		ctx, xcontext.AccessToken(ctx), req.GuildID, req.ChannelID, entity.READ_MESSAGE_HISTORY, false)
	if err != nil {
		return nil, err
	}

	msg, err := d.paginator.GetMessage(ctx, req.ChannelID, req.MessageID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get message %d: %v", req.MessageID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot get message")
	}

	if msg == nil {
		return nil, errorx.New(errorx.NotFound, "Not found message")
	}

	return &model.GetMessageResponse{Message: convertMessage(msg)}, nil
}

func (d *messageDomain) CreateMessage(
	ctx context.Context, req *model.CreateMessageRequest,
) (*model.CreateMessageResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty content")
	}

	_, user, channel, err := d.channelVerifier.ResolveChannelPermission(
		ctx, xcontext.AccessToken(ctx), req.GuildID, req.ChannelID, entity.SEND_MESSAGES, false)
	if err != nil {
		return nil, err
	}

	if req.ReplyTo != 0 {
		reply, err := d.paginator.GetMessage(ctx, channel.ID, req.ReplyTo)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get replied message %d: %v", req.ReplyTo, err)
			return nil, errorx.New(errorx.Unavailable, "Cannot get replied message")
		}

		if reply == nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid reply message")
		}
	}

	id := xcontext.SnowFlake(ctx).Generate()
	msg := &entity.Message{
		ID:        id.Int64(),
		ChannelID: channel.ID,
		Bucket:    numberutil.BucketFrom(id.Int64()),
		AuthorID:  user.ID,
		Content:   req.Content,
		ReplyTo:   req.ReplyTo,
		CreatedAt: createdAt(id),
	}

	if err := d.messageRepo.Create(ctx, msg); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create message: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot create message")
	}

	return &model.CreateMessageResponse{ID: msg.ID}, nil
}

func createdAt(id snowflake.ID) time.Time {
	return time.UnixMilli(id.Time()).UTC()
}
