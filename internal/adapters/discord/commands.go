package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Commands arma los slash commands; lo/hi acotan /choose.
func Commands(lo, hi int) []*discordgo.ApplicationCommand {
	minCount := float64(lo)
	return []*discordgo.ApplicationCommand{
		{
			Name:        "join",
			Description: "Join the queue",
		},
		{
			Name:        "choose",
			Description: "Choose winners from the queue (Admins only)",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "number",
				Description: fmt.Sprintf("Pick a number between %d-%d", lo, hi),
				Required:    true,
				MinValue:    &minCount,
				MaxValue:    float64(hi),
			}},
		},
		{
			Name:        "queue",
			Description: "View the current queue",
		},
		{
			Name:        "queueinfo",
			Description: "Get info about your position in the queue",
		},
		{
			Name:        "remove",
			Description: "Remove a user from the queue (Admins only)",
		},
		{
			Name:        "clearqueue",
			Description: "Clear the entire queue (Admins only)",
		},
		{
			Name:        "stats",
			Description: "View server queue statistics (Admins only)",
		},
		{
			Name:        "resetcooldown",
			Description: "Reset a user's join cooldown (Admins only)",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user whose cooldown to reset",
				Required:    true,
			}},
		},
		{
			Name:        "drawhistory",
			Description: "View the most recent draws (Admins only)",
		},
		{
			Name:        "help",
			Description: "View all available commands",
		},
	}
}

// comandos que no requieren privilegios
var publicCommands = map[string]bool{
	"join":      true,
	"queue":     true,
	"queueinfo": true,
	"help":      true,
}
