package domain

import (
	"time"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/model"
)

const defaultTimeLayout string = time.RFC3339Nano

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:            user.ID,
		Username:      user.Username,
		Discriminator: user.Discriminator,
		Bot:           user.Bot,
		Flags:         uint64(user.Flags),
		Staff:         user.Flags.Has(entity.STAFF),
	}
}

func convertMessage(msg *entity.Message) model.Message {
	if msg == nil {
		return model.Message{}
	}

	return model.Message{
		ID:        msg.ID,
		ChannelID: msg.ChannelID,
		AuthorID:  msg.AuthorID,
		Content:   msg.Content,
		ReplyTo:   msg.ReplyTo,
		CreatedAt: msg.CreatedAt.Format(defaultTimeLayout),
	}
}

func convertChannel(channel *entity.GuildChannel) model.Channel {
	if channel == nil {
		return model.Channel{}
	}

	return model.Channel{
		ID:       channel.ID,
		GuildID:  channel.GuildID,
		Name:     channel.Name,
		Position: channel.Position,
		ParentID: channel.ParentID.Int64,
	}
}
