package model

// AccessToken is the object embedded in a session token.
type AccessToken struct {
	ID int64 `json:"id,string"`
}

type User struct {
	ID            int64  `json:"id,string"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Bot           bool   `json:"bot"`
	Flags         uint64 `json:"flags"`
	Staff         bool   `json:"staff"`
}

type Message struct {
	ID        int64  `json:"id,string"`
	ChannelID int64  `json:"channel_id,string"`
	AuthorID  int64  `json:"author_id,string"`
	Content   string `json:"content"`
	ReplyTo   int64  `json:"reply_to,string,omitempty"`
	CreatedAt string `json:"created_at"`
}

type Channel struct {
	ID       int64  `json:"id,string"`
	GuildID  int64  `json:"guild_id,string"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	ParentID int64  `json:"parent_id,string,omitempty"`
}
