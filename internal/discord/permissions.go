package discord

import "strconv"

// Permission is one flag of the Discord permission bitfield.
type Permission uint64

const (
	PermissionCreateInstantInvite Permission = 1 << iota
	PermissionKickMembers
	PermissionBanMembers
	PermissionAdministrator
	PermissionManageChannels
	PermissionManageGuild
	PermissionAddReactions
	PermissionViewAuditLog
	PermissionPrioritySpeaker
	PermissionStream
	PermissionViewChannel
	PermissionSendMessages
	PermissionSendTTSMessages
	PermissionManageMessages
	PermissionEmbedLinks
	PermissionAttachFiles
	PermissionReadMessageHistory
	PermissionMentionEveryone
	PermissionUseExternalEmojis
	PermissionViewGuildInsights
	PermissionConnect
	PermissionSpeak
	PermissionMuteMembers
	PermissionDeafenMembers
	PermissionMoveMembers
	PermissionUseVAD
	PermissionChangeNickname
	PermissionManageNicknames
	PermissionManageRoles
	PermissionManageWebhooks
	PermissionManageEmojisAndStickers
	PermissionUseApplicationCommands
	PermissionRequestToSpeak
	PermissionManageEvents
	PermissionManageThreads
	PermissionCreatePublicThreads
	PermissionCreatePrivateThreads
	PermissionUseExternalStickers
	PermissionSendMessagesInThreads
	PermissionUseEmbeddedActivities
	PermissionModerateMembers
)

// ParsePermissions parses the decimal permission string the API attaches to
// guild list entries.
func ParsePermissions(s string) (Permission, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return Permission(v), nil
}

// Has reports whether the bitfield contains the given flag.
func (p Permission) Has(flag Permission) bool {
	return p&flag == flag
}

// CanManageGuild reports whether the permission set allows administering the
// guild's bot settings. Administrators implicitly qualify.
func (p Permission) CanManageGuild() bool {
	return p.Has(PermissionManageGuild) || p.Has(PermissionAdministrator)
}

// CanManage is a convenience wrapper over the guild's raw permission string.
// Unparseable bitfields count as no permissions.
func (g Guild) CanManage() bool {
	perms, err := ParsePermissions(g.Permissions)
	if err != nil {
		return false
	}
	return perms.CanManageGuild()
}
