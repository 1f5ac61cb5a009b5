package entity

import "time"

type Guild struct {
	SnowFlakeBase
	Name    string
	OwnerID int64

	// Permissions is the default bitset of members without any role.
	Permissions PermissionFlag
}

// Member is the membership of the user ID in GuildID.
type Member struct {
	ID      int64 `gorm:"primaryKey;autoIncrement:false"`
	GuildID int64 `gorm:"primaryKey;autoIncrement:false"`

	Owner    bool
	Nick     string
	Roles    Array[int64] `gorm:"type:json"`
	JoinedAt time.Time
}
