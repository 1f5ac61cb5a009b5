package domain

import (
	"errors"
	"testing"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/model"
	"github.com/ekranoplan/backend/mocks"
	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/numberutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_messageDomain_CreateMessage(t *testing.T) {
	s := newSuite()
	d := NewMessageDomain(s.messageRepo, s.channelVerifier)

	first, err := d.CreateMessage(s.as(s.Writer), &model.CreateMessageRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
		Content:   "hello",
	})
	require.NoError(t, err)

	stored, err := s.messageRepo.Get(s.ctx, first.ID, s.Channel.ID, numberutil.BucketFrom(first.ID))
	require.NoError(t, err)
	require.Equal(t, "hello", stored.Content)
	require.Equal(t, s.Writer.ID, stored.AuthorID)
	require.Equal(t, numberutil.BucketFrom(first.ID), stored.Bucket)

	tests := []struct {
		name    string
		user    entity.User
		req     *model.CreateMessageRequest
		wantErr error
	}{
		{
			name: "reply to existing message",
			user: s.Owner,
			req:  &model.CreateMessageRequest{Content: "hi", ReplyTo: first.ID},
		},
		{
			name: "bot with send permission",
			user: s.Bot,
			req:  &model.CreateMessageRequest{Content: "beep"},
		},
		{
			name:    "empty content",
			user:    s.Writer,
			req:     &model.CreateMessageRequest{Content: "  "},
			wantErr: errorx.New(errorx.BadRequest, "Not allow empty content"),
		},
		{
			name:    "reply to unknown message",
			user:    s.Writer,
			req:     &model.CreateMessageRequest{Content: "hi", ReplyTo: first.ID - 1},
			wantErr: errorx.New(errorx.BadRequest, "Invalid reply message"),
		},
		{
			name:    "member without send permission",
			user:    s.Reader,
			req:     &model.CreateMessageRequest{Content: "hi"},
			wantErr: errorx.New(errorx.PermissionDenied, "Missing permission SEND_MESSAGES"),
		},
		{
			name:    "non member",
			user:    s.Stranger,
			req:     &model.CreateMessageRequest{Content: "hi"},
			wantErr: errorx.New(errorx.PermissionDenied, "User is not a member of guild"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.GuildID = s.Guild.ID
			tt.req.ChannelID = s.Channel.ID

			got, err := d.CreateMessage(s.as(tt.user), tt.req)
			if tt.wantErr != nil {
				require.Equal(t, tt.wantErr, err)
				return
			}

			require.NoError(t, err)
			require.Greater(t, got.ID, first.ID)
		})
	}
}

func Test_messageDomain_GetMessages(t *testing.T) {
	s := newSuite()
	d := NewMessageDomain(s.messageRepo, s.channelVerifier)

	ids := []int64{}
	for _, content := range []string{"one", "two", "three"} {
		resp, err := d.CreateMessage(s.as(s.Writer), &model.CreateMessageRequest{
			GuildID:   s.Guild.ID,
			ChannelID: s.Channel.ID,
			Content:   content,
		})
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}

	resp, err := d.GetMessages(s.as(s.Reader), &model.GetMessagesRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 3)
	require.Equal(t, "three", resp.Messages[0].Content)
	require.Equal(t, "one", resp.Messages[2].Content)

	resp, err = d.GetMessages(s.as(s.Reader), &model.GetMessagesRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
		Before:    ids[2],
		Limit:     1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	require.Equal(t, ids[1], resp.Messages[0].ID)

	_, err = d.GetMessages(s.as(s.Reader), &model.GetMessagesRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
		Limit:     101,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Exceed the maximum of limit"), err)

	_, err = d.GetMessages(s.as(s.Reader), &model.GetMessagesRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
		Limit:     -1,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Limit must be positive"), err)

	_, err = d.GetMessages(s.as(s.Stranger), &model.GetMessagesRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "User is not a member of guild"), err)

	_, err = d.GetMessages(s.ctx, &model.GetMessagesRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
	})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid session token"), err)
}

func Test_messageDomain_GetMessage(t *testing.T) {
	s := newSuite()
	d := NewMessageDomain(s.messageRepo, s.channelVerifier)

	created, err := d.CreateMessage(s.as(s.Writer), &model.CreateMessageRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
		Content:   "hello",
	})
	require.NoError(t, err)

	resp, err := d.GetMessage(s.as(s.Reader), &model.GetMessageRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
		MessageID: created.ID,
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, resp.Message.ID)
	require.Equal(t, s.Writer.ID, resp.Message.AuthorID)
	require.Equal(t, "hello", resp.Message.Content)

	_, err = d.GetMessage(s.as(s.Reader), &model.GetMessageRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
		MessageID: created.ID - 1,
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found message"), err)

	_, err = d.GetMessage(s.as(s.Reader), &model.GetMessageRequest{
		GuildID:   s.Guild.ID,
		ChannelID: 42,
		MessageID: created.ID,
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found channel"), err)
}

func Test_messageDomain_StoreFailure(t *testing.T) {
	s := newSuite()
	messageRepo := &mocks.MessageRepository{}
	messageRepo.On("GetListByBucket", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	messageRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("timeout"))
	d := NewMessageDomain(messageRepo, s.channelVerifier)

	_, err := d.GetMessages(s.as(s.Reader), &model.GetMessagesRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
	})
	require.Equal(t, errorx.New(errorx.Unavailable, "Cannot get messages"), err)

	_, err = d.CreateMessage(s.as(s.Writer), &model.CreateMessageRequest{
		GuildID:   s.Guild.ID,
		ChannelID: s.Channel.ID,
		Content:   "hello",
	})
	require.Equal(t, errorx.New(errorx.Unavailable, "Cannot create message"), err)
}
