package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Paxai/rebot/config"
	"github.com/Paxai/rebot/handler"
)

// Bot owns the Discord gateway session.
type Bot struct {
	session *discordgo.Session
	logger  *log.Logger
}

// New creates the Discord session, wires the interaction router and sets the
// intents the service needs. The connection is not opened yet.
func New(cfg config.Config, logger *log.Logger) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, err
	}

	dg.AddHandler(handler.OnInteractionCreate)
	dg.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logger.Printf("Logged in as %s#%s", r.User.Username, r.User.Discriminator)
	})

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages

	return &Bot{session: dg, logger: logger}, nil
}

// Open connects to the Discord gateway.
func (b *Bot) Open() error {
	return b.session.Open()
}

// Close shuts the gateway connection down.
func (b *Bot) Close() {
	if err := b.session.Close(); err != nil {
		b.logger.Printf("error closing Discord session: %v", err)
	}
}

// Session returns the underlying session.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}
