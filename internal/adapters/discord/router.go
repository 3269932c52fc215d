package discord

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/gamejoin-queue-bot/internal/app/service"
)

type Router struct {
	s       *discordgo.Session
	guildID string // vacío = comandos globales

	gameChannel string
	access      Access

	queue   *service.QueueService
	history *service.HistoryService

	joinLimiter  *userLimiter
	clickLimiter *userLimiter

	registered []*discordgo.ApplicationCommand
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	gameChannel string,
	access Access,
	queue *service.QueueService,
	history *service.HistoryService,
) *Router {
	return &Router{
		s:            s,
		guildID:      guildID,
		gameChannel:  gameChannel,
		access:       access,
		queue:        queue,
		history:      history,
		joinLimiter:  newUserLimiter(2 * time.Second),
		clickLimiter: newUserLimiter(1 * time.Second),
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands(r.queue.Bounds().Min, r.queue.Bounds().Max) {
		created, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd)
		if err != nil {
			return err
		}
		r.registered = append(r.registered, created)
	}
	return nil
}

// Unregister borra los comandos creados por Register.
func (r *Router) Unregister() {
	appID := r.s.State.User.ID
	for _, cmd := range r.registered {
		if err := r.s.ApplicationCommandDelete(appID, r.guildID, cmd.ID); err != nil {
			log.Printf("unregister /%s: %v", cmd.Name, err)
		}
	}
	r.registered = nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		switch ic.Type {
		case discordgo.InteractionApplicationCommand:
			r.handleSlashCommand(s, ic)
		case discordgo.InteractionMessageComponent:
			r.handleMessageComponent(s, ic)
		}
	})
}
