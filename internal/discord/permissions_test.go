package discord

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermissions(t *testing.T) {
	perms, err := ParsePermissions("32")
	require.NoError(t, err)
	assert.True(t, perms.Has(PermissionManageGuild))
	assert.False(t, perms.Has(PermissionAdministrator))
}

func TestParsePermissions_Invalid(t *testing.T) {
	_, err := ParsePermissions("not-a-number")
	assert.Error(t, err)
}

func TestPermission_CanManageGuild(t *testing.T) {
	assert.True(t, PermissionManageGuild.CanManageGuild())
	assert.True(t, PermissionAdministrator.CanManageGuild())
	assert.True(t, (PermissionManageGuild | PermissionSendMessages).CanManageGuild())
	assert.False(t, PermissionSendMessages.CanManageGuild())
	assert.False(t, Permission(0).CanManageGuild())
}

func TestGuild_CanManage(t *testing.T) {
	admin := Guild{ID: "1", Permissions: strconv.FormatUint(uint64(PermissionAdministrator), 10)}
	member := Guild{ID: "2", Permissions: strconv.FormatUint(uint64(PermissionSendMessages), 10)}
	broken := Guild{ID: "3", Permissions: "garbage"}

	assert.True(t, admin.CanManage())
	assert.False(t, member.CanManage())
	assert.False(t, broken.CanManage())
}

func TestPermission_FlagValues(t *testing.T) {
	// Spot-check the bit positions against the platform's documented values.
	assert.Equal(t, Permission(1<<3), PermissionAdministrator)
	assert.Equal(t, Permission(1<<5), PermissionManageGuild)
	assert.Equal(t, Permission(1<<11), PermissionSendMessages)
	assert.Equal(t, Permission(1<<40), PermissionModerateMembers)
}
