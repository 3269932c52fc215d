package discord

import (
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

func optInt(ic *discordgo.InteractionCreate, name string) (int, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return 0, false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionInteger {
			return int(o.IntValue()), true
		}
	}
	return 0, false
}

// optUserID lee una opción de tipo usuario sin pegarle a la API.
func optUserID(ic *discordgo.InteractionCreate, name string) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionUser {
			if id, ok := o.Value.(string); ok && id != "" {
				return id, true
			}
		}
	}
	return "", false
}

func userID(ic *discordgo.InteractionCreate) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}

// displayName: apodo del server, nombre global o username; si falla, el ID.
func (r *Router) displayName(guildID, uid string) string {
	m, err := r.s.State.Member(guildID, uid)
	if err != nil || m == nil {
		m, err = r.s.GuildMember(guildID, uid)
		if err == nil && m != nil {
			m.GuildID = guildID
			_ = r.s.State.MemberAdd(m)
		}
	}
	if err != nil || m == nil || m.User == nil {
		return uid
	}
	return m.DisplayName()
}

// truncate corta en runas (los labels de Discord tienen tope de 100).
func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}

// customID con timestamp para que el picker expire por su cuenta.
func stampedID(prefix string, t time.Time) string {
	return prefix + ":" + strconv.FormatInt(t.Unix(), 10)
}

func parseStampedID(id, prefix string) (time.Time, bool) {
	raw, ok := strings.CutPrefix(id, prefix+":")
	if !ok {
		return time.Time{}, false
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(sec, 0), true
}
