// esta es la logica de InteractionApplicationCommand de discordgo
// aqui solo vamos a manejar logica de la interaccion del usuario y despachar a los servicios correspondientes
package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/gamejoin-queue-bot/internal/domain/queue"
)

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	uid := userID(ic)
	log.Printf("cmd: %s by=%s guild=%s", cmd.Name, uid, ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in cmd /%s: %v", cmd.Name, rec)
			ReplyEphemeral(s, ic, "❌ Something went wrong processing this command. Please contact an admin.")
		}
	}()

	//--> /help funciona en cualquier lado
	if cmd.Name == "help" {
		_ = SendEphemeral(s, ic, "", helpEmbed())
		return
	}

	// los gates se responden directo, antes de cualquier defer
	if ic.GuildID == "" || ic.Member == nil {
		_ = SendEphemeral(s, ic, "This command only works in servers!")
		return
	}
	if !r.inGameChannel(ic) {
		_ = SendEphemeral(s, ic, r.wrongChannelMsg())
		return
	}
	privileged := r.isPrivileged(s, ic)
	if !publicCommands[cmd.Name] && !privileged {
		_ = SendEphemeral(s, ic, noPermission)
		return
	}

	switch cmd.Name {

	//--> /queue y /choose responden en público
	case "queue":
		entries := r.queue.List(ic.GuildID)
		if len(entries) == 0 {
			_ = SendEphemeral(s, ic, "The queue is empty!")
			return
		}
		_ = SendEmbed(s, ic, queueEmbed(entries))
		return

	case "choose":
		stop := step("cmd.choose.total")
		defer stop()
		n, _ := optInt(ic, "number")
		b := r.queue.Bounds()
		if n < b.Min || n > b.Max {
			_ = SendEphemeral(s, ic, fmt.Sprintf("Please choose a number between %d and %d!", b.Min, b.Max))
			return
		}
		if r.queue.Stats(ic.GuildID).QueueSize == 0 {
			_ = SendEphemeral(s, ic, "The queue is empty!")
			return
		}
		_ = DeferPublic(s, ic)
		ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer cancel()
		msg, winners, err := r.queue.Choose(ctx, ic.GuildID, n)
		if err != nil {
			msg = "⚠️ Could not run the draw: " + err.Error()
		}
		ReplyPublic(s, ic, msg, winners)
		return
	}

	_ = DeferEphemeral(s, ic)
	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	switch cmd.Name {

	//--> para unirte en la cola
	case "join":
		stop := step("cmd.join.total")
		defer stop()
		if !r.joinLimiter.Allow(uid) {
			ReplyEphemeral(s, ic, "⏳ Slow down a second…")
			return
		}
		msg, err := r.queue.Join(ctx, ic.GuildID, uid, privileged)
		if err != nil {
			msg = "⚠️ Could not join the queue: " + err.Error()
		}
		ReplyEphemeral(s, ic, msg)

	case "queueinfo":
		e, err := r.queue.Info(ic.GuildID, uid)
		if errors.Is(err, queue.ErrNotInQueue) {
			ReplyEphemeral(s, ic, "You are not in the queue!")
			return
		}
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ "+err.Error())
			return
		}
		ReplyEphemeral(s, ic, "", queueInfoEmbed(e))

	//--> solo admins desde aca
	case "remove":
		entries := r.queue.List(ic.GuildID)
		if len(entries) == 0 {
			ReplyEphemeral(s, ic, "The queue is empty!")
			return
		}
		row := r.removePicker(ic.GuildID, entries, time.Now())
		_, err := s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
			Content:         "Select a user to remove:",
			Components:      []discordgo.MessageComponent{row},
			Flags:           discordgo.MessageFlagsEphemeral,
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		})
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ Could not show the picker: "+err.Error())
		}

	case "clearqueue":
		ReplyEphemeral(s, ic, r.queue.Clear(ctx, ic.GuildID))

	case "stats":
		ReplyEphemeral(s, ic, "", statsEmbed(r.queue.Stats(ic.GuildID)))

	case "resetcooldown":
		target, ok := optUserID(ic, "user")
		if !ok {
			ReplyEphemeral(s, ic, "⚠️ Pick a user.")
			return
		}
		ReplyEphemeral(s, ic, r.queue.ResetCooldown(ic.GuildID, target))

	case "drawhistory":
		msg, err := r.history.Show(ctx, ic.GuildID, 10)
		if err != nil {
			msg = "⚠️ Could not read the draw history: " + err.Error()
		}
		ReplyEphemeral(s, ic, msg)

	default:
		ReplyEphemeral(s, ic, "Unknown command.")
	}
}
