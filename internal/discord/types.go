package discord

// User is the authenticated user's profile as returned by /users/@me.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
	MFAEnabled    bool   `json:"mfa_enabled,omitempty"`
	Banner        string `json:"banner,omitempty"`
	AccentColor   int    `json:"accent_color,omitempty"`
	Locale        string `json:"locale,omitempty"`
	Flags         int    `json:"flags,omitempty"`
	PremiumType   int    `json:"premium_type,omitempty"`
	PublicFlags   int    `json:"public_flags,omitempty"`
}

// Guild is a server the user belongs to. Permissions is the user's permission
// bitfield within the guild, serialized as a decimal string.
type Guild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Permissions string `json:"permissions"`
}

// ChannelType enumerates the kinds of Discord channels.
type ChannelType int

const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
	ChannelTypeGuildAnnouncement
)

const (
	ChannelTypeAnnouncementThread ChannelType = iota + 10
	ChannelTypePublicThread
	ChannelTypePrivateThread
	ChannelTypeGuildStageVoice
	ChannelTypeGuildDirectory
	ChannelTypeGuildForum
)

// IsTextCapable reports whether a channel of this type can receive plain
// messages and is therefore a valid welcome message target.
func (t ChannelType) IsTextCapable() bool {
	return t == ChannelTypeGuildText
}

// Channel is one entry of a guild's channel list.
type Channel struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type ChannelType `json:"type"`
}

// TextChannels filters a channel list down to text-capable channels,
// preserving the upstream order.
func TextChannels(channels []Channel) []Channel {
	filtered := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.Type.IsTextCapable() {
			filtered = append(filtered, ch)
		}
	}
	return filtered
}
