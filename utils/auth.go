package utils

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"suggestbot/config"
)

// CheckAdmin 检查用户是否有管理权限
func CheckAdmin(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}

	authConfig := config.Cfg.Commands.Auth

	// 检查是否为开发者
	if slices.Contains(authConfig.Developers, i.Member.User.ID) {
		return true
	}

	// Guild administrators always qualify.
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}

	// 检查是否拥有管理员角色
	for _, role := range i.Member.Roles {
		if slices.Contains(authConfig.AdminsRoles, role) {
			return true
		}
	}

	return false
}
