package entity

import (
	"fmt"
	"strings"
)

type PermissionFlag uint64

const (
	CREATE_INSTANT_INVITE PermissionFlag = 1 << iota
	KICK_MEMBERS
	BAN_MEMBERS
	ADMINISTRATOR
	MANAGE_CHANNEL
	MANAGE_GUILD
	ADD_REACTIONS
	VIEW_AUDIT_LOG
	VIEW_CHANNEL
	SEND_MESSAGES
	SEND_TTS_MESSAGES
	MANAGE_MESSAGES
	EMBED_LINKS
	ATTACH_FILES
	READ_MESSAGE_HISTORY
	MENTION_EVERYONE
	CHANGE_NICKNAME
	MANAGE_NICKNAMES
	MANAGE_ROLES

	permissionEnd
)

const AllPermissions = permissionEnd - 1

var permissionNames = []struct {
	flag PermissionFlag
	name string
}{
	{CREATE_INSTANT_INVITE, "CREATE_INSTANT_INVITE"},
	{KICK_MEMBERS, "KICK_MEMBERS"},
	{BAN_MEMBERS, "BAN_MEMBERS"},
	{ADMINISTRATOR, "ADMINISTRATOR"},
	{MANAGE_CHANNEL, "MANAGE_CHANNEL"},
	{MANAGE_GUILD, "MANAGE_GUILD"},
	{ADD_REACTIONS, "ADD_REACTIONS"},
	{VIEW_AUDIT_LOG, "VIEW_AUDIT_LOG"},
	{VIEW_CHANNEL, "VIEW_CHANNEL"},
	{SEND_MESSAGES, "SEND_MESSAGES"},
	{SEND_TTS_MESSAGES, "SEND_TTS_MESSAGES"},
	{MANAGE_MESSAGES, "MANAGE_MESSAGES"},
	{EMBED_LINKS, "EMBED_LINKS"},
	{ATTACH_FILES, "ATTACH_FILES"},
	{READ_MESSAGE_HISTORY, "READ_MESSAGE_HISTORY"},
	{MENTION_EVERYONE, "MENTION_EVERYONE"},
	{CHANGE_NICKNAME, "CHANGE_NICKNAME"},
	{MANAGE_NICKNAMES, "MANAGE_NICKNAMES"},
	{MANAGE_ROLES, "MANAGE_ROLES"},
}

// Has reports whether every bit of p is set in f.
func (f PermissionFlag) Has(p PermissionFlag) bool {
	return f&p == p
}

// Names lists the names of the set bits, lowest bit first.
func (f PermissionFlag) Names() []string {
	names := []string{}
	for _, n := range permissionNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}

	return names
}

func (f PermissionFlag) String() string {
	if f == 0 {
		return "NONE"
	}

	return strings.Join(f.Names(), "|")
}

// ParsePermission returns the single flag with the given name.
func ParsePermission(name string) (PermissionFlag, error) {
	for _, n := range permissionNames {
		if n.name == name {
			return n.flag, nil
		}
	}

	return 0, fmt.Errorf("unknown permission %q", name)
}

type Role struct {
	SnowFlakeBase
	GuildID     int64 `gorm:"index"`
	Name        string
	Permissions PermissionFlag
	Position    int
	Color       string
}
