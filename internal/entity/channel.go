package entity

import "database/sql"

type GuildChannel struct {
	SnowFlakeBase
	GuildID  int64 `gorm:"index"`
	Name     string
	Position int
	ParentID sql.NullInt64

	PermissionOverwrites Array[PermissionOverwrite] `gorm:"type:json"`
}

// PermissionOverwrite is a per-user exception on one channel. ID is the
// target user.
type PermissionOverwrite struct {
	ID    int64          `json:"id,string"`
	Allow PermissionFlag `json:"allow"`
	Deny  PermissionFlag `json:"deny"`
}

// OverwriteFor returns the first overwrite targeting userID.
func (c *GuildChannel) OverwriteFor(userID int64) (PermissionOverwrite, bool) {
	for _, overwrite := range c.PermissionOverwrites {
		if overwrite.ID == userID {
			return overwrite, true
		}
	}

	return PermissionOverwrite{}, false
}
