package discord

import (
	"github.com/bwmarrin/discordgo"
)

func (r *Router) safeGetChannel(id string) (*discordgo.Channel, error) {
	if ch, err := r.s.State.Channel(id); err == nil && ch != nil {
		return ch, nil
	}
	ch, err := r.s.Channel(id)
	if err != nil {
		return nil, err
	}
	_ = r.s.State.ChannelAdd(ch)
	return ch, nil
}

// inGameChannel: sin nombre configurado, cualquier canal vale.
func (r *Router) inGameChannel(ic *discordgo.InteractionCreate) bool {
	if r.gameChannel == "" {
		return true
	}
	ch, err := r.safeGetChannel(ic.ChannelID)
	if err != nil || ch == nil {
		return false
	}
	return ch.Name == r.gameChannel
}

func (r *Router) wrongChannelMsg() string {
	return "This command only works in #" + r.gameChannel + "!"
}
