package discord

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

func (r *Router) handleMessageComponent(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()
	uid := userID(ic)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in component %s: %v", data.CustomID, rec)
			ReplyEphemeral(s, ic, "❌ Something went wrong.")
		}
	}()

	switch {

	//--> solo admins
	case strings.HasPrefix(data.CustomID, removeSelectID+":"):
		_ = DeferEphemeral(s, ic)
		if !r.clickLimiter.Allow(uid) {
			ReplyEphemeral(s, ic, "⏳ Slow down a second…")
			return
		}
		if !r.isPrivileged(s, ic) {
			ReplyEphemeral(s, ic, noPermission)
			return
		}
		issued, ok := parseStampedID(data.CustomID, removeSelectID)
		if !ok || time.Since(issued) > removePickerTTL {
			ReplyEphemeral(s, ic, "⌛ This picker expired, run `/remove` again.")
			return
		}
		if len(data.Values) == 0 {
			ReplyEphemeral(s, ic, "⚠️ Invalid selection.")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		msg, err := r.queue.Remove(ctx, ic.GuildID, data.Values[0])
		if err != nil {
			msg = "⚠️ Could not remove: " + err.Error()
		}
		ReplyEphemeral(s, ic, msg)

	default:
		log.Printf("component: unknown custom_id=%s by=%s", data.CustomID, uid)
	}
}
