package discord

import "fmt"

const (
	cdnBaseURL = "https://cdn.discordapp.com"

	iconSize   = 512
	avatarSize = 512
	bannerSize = 1024
)

// IconURL derives the display URL of a guild icon from the guild ID and icon
// hash. An absent hash yields "" (the guild has no icon).
func IconURL(guildID, iconHash string) string {
	if iconHash == "" {
		return ""
	}
	return fmt.Sprintf("%s/icons/%s/%s?size=%d", cdnBaseURL, guildID, iconHash, iconSize)
}

// AvatarURL derives the display URL of a user avatar from the user ID and
// avatar hash. An absent hash yields "".
func AvatarURL(userID, avatarHash string) string {
	if avatarHash == "" {
		return ""
	}
	return fmt.Sprintf("%s/avatars/%s/%s?size=%d", cdnBaseURL, userID, avatarHash, avatarSize)
}

// BannerURL derives the display URL of a profile banner from the owning ID
// and banner hash. An absent hash yields "".
func BannerURL(id, bannerHash string) string {
	if bannerHash == "" {
		return ""
	}
	return fmt.Sprintf("%s/banners/%s/%s?size=%d", cdnBaseURL, id, bannerHash, bannerSize)
}
