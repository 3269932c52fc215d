package discord

import (
	"slices"

	"github.com/bwmarrin/discordgo"
)

// Access define quién es "privilegiado": cooldown corto en /join y comandos de admin.
type Access struct {
	AdminRoleName     string   // rol por nombre (p.ej. "Admin")
	AdminRoleIDs      []string // roles explícitos del bot
	PrivilegedUserIDs []string // usuarios especiales, sin importar roles
}

func (r *Router) isPrivileged(s *discordgo.Session, ic *discordgo.InteractionCreate) bool {
	if ic.Member == nil || ic.Member.User == nil {
		return false
	}
	uid := ic.Member.User.ID

	// Usuarios especiales
	if slices.Contains(r.access.PrivilegedUserIDs, uid) {
		return true
	}

	// Owner
	if g, _ := s.State.Guild(ic.GuildID); g != nil && uid == g.OwnerID {
		return true
	}

	// Administrator bit (viene resuelto en la interacción)
	if ic.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}

	// Roles explícitos del bot
	for _, want := range r.access.AdminRoleIDs {
		if slices.Contains(ic.Member.Roles, want) {
			return true
		}
	}

	// Rol por nombre
	if r.access.AdminRoleName == "" || len(ic.Member.Roles) == 0 {
		return false
	}
	for _, ro := range r.guildRoles(ic.GuildID) {
		if ro.Name == r.access.AdminRoleName && slices.Contains(ic.Member.Roles, ro.ID) {
			return true
		}
	}
	return false
}

// roles del state y, si no están, por REST
func (r *Router) guildRoles(guildID string) []*discordgo.Role {
	if g, err := r.s.State.Guild(guildID); err == nil && g != nil && len(g.Roles) > 0 {
		return g.Roles
	}
	roles, err := r.s.GuildRoles(guildID)
	if err != nil {
		return nil
	}
	return roles
}

const noPermission = "You do not have permission to use this command!"
