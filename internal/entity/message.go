package entity

import "time"

// Message is partitioned by (ChannelID, Bucket) and clustered by ID
// descending. Bucket is always numberutil.BucketFrom(ID).
type Message struct {
	ID        int64
	ChannelID int64
	Bucket    int64
	AuthorID  int64
	Content   string
	ReplyTo   int64
	CreatedAt time.Time
}

func (m *Message) TableName() string {
	return "messages"
}
