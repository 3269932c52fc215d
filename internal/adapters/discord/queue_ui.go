package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/gamejoin-queue-bot/internal/domain/queue"
)

const (
	colorBlue   = 0x3498db
	colorGreen  = 0x2ecc71
	colorPurple = 0x9b59b6

	removeSelectID  = "remove_select"
	removePickerTTL = 60 * time.Second
	maxSelectOpts   = 25
)

func queueEmbed(entries []queue.Entry) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%d. <@%s>\n", e.Position, e.ID)
	}
	return &discordgo.MessageEmbed{
		Title:       "🎮 Current Queue",
		Description: b.String(),
		Color:       colorBlue,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Total in queue: %d", len(entries))},
	}
}

func queueInfoEmbed(e queue.Entry) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📋 Your Queue Info",
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Position", Value: fmt.Sprintf("#%d", e.Position), Inline: true},
			{Name: "Times Waited", Value: fmt.Sprintf("%d", e.WaitCount), Inline: true},
			{Name: "Current Weight", Value: fmt.Sprintf("%.2f", e.Weight), Inline: true},
		},
	}
}

func statsEmbed(st queue.Stats) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📊 Queue Statistics",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Current Queue Size", Value: fmt.Sprintf("%d", st.QueueSize), Inline: true},
			{Name: "Total Selections", Value: fmt.Sprintf("%d", st.TotalDrawRounds), Inline: true},
			{Name: "Players Seen", Value: fmt.Sprintf("%d", st.Participants), Inline: true},
		},
	}
}

func helpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🤖 Bot Commands",
		Color: colorPurple,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "👥 Everyone",
				Value: "**/join** - Join the queue\n**/queue** - View current queue\n**/queueinfo** - Your queue position\n**/help** - This message",
			},
			{
				Name:  "🛡️ Admins Only",
				Value: "**/choose** - Pick winners\n**/remove** - Remove from queue\n**/clearqueue** - Clear all queue\n**/stats** - Server statistics\n**/resetcooldown** - Reset cooldown\n**/drawhistory** - Recent draws",
			},
		},
	}
}

// removePicker arma el select de /remove con los primeros 25 de la cola.
func (r *Router) removePicker(guildID string, entries []queue.Entry, now time.Time) discordgo.ActionsRow {
	if len(entries) > maxSelectOpts {
		entries = entries[:maxSelectOpts]
	}
	opts := make([]discordgo.SelectMenuOption, 0, len(entries))
	for _, e := range entries {
		opts = append(opts, discordgo.SelectMenuOption{
			Label:       truncate(fmt.Sprintf("%d. %s", e.Position, r.displayName(guildID, e.ID)), 100),
			Value:       e.ID,
			Description: truncate(fmt.Sprintf("picks %d · waited %d", e.PickCount, e.WaitCount), 100),
		})
	}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    stampedID(removeSelectID, now),
				Placeholder: "Choose a user to remove",
				Options:     opts,
			},
		},
	}
}
