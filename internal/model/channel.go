package model

type CreateChannelRequest struct {
	GuildID  int64  `json:"guild_id,string"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	ParentID int64  `json:"parent_id,string,omitempty"`
}

type CreateChannelResponse struct {
	Channel Channel `json:"channel"`
}

type GetChannelPermissionsRequest struct {
	GuildID   int64 `json:"guild_id,string" form:"guild_id"`
	ChannelID int64 `json:"channel_id,string" form:"channel_id"`
}

type GetChannelPermissionsResponse struct {
	Permissions uint64   `json:"permissions"`
	Names       []string `json:"names"`
}
