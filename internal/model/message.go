package model

type GetMessagesRequest struct {
	GuildID   int64 `json:"guild_id,string" form:"guild_id"`
	ChannelID int64 `json:"channel_id,string" form:"channel_id"`
	Before    int64 `json:"before,string" form:"before"`
	Limit     int   `json:"limit" form:"limit"`
}

type GetMessagesResponse struct {
	Messages []Message `json:"messages"`
}

type GetMessageRequest struct {
	GuildID   int64 `json:"guild_id,string" form:"guild_id"`
	ChannelID int64 `json:"channel_id,string" form:"channel_id"`
	MessageID int64 `json:"message_id,string" form:"message_id"`
}

type GetMessageResponse struct {
	Message Message `json:"message"`
}

type CreateMessageRequest struct {
	GuildID   int64  `json:"guild_id,string"`
	ChannelID int64  `json:"channel_id,string"`
	Content   string `json:"content"`
	ReplyTo   int64  `json:"reply_to,string,omitempty"`
}

type CreateMessageResponse struct {
	ID int64 `json:"id,string"`
}
