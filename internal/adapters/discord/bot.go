package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"tradbot/internal/application"
	"tradbot/internal/config"
	"tradbot/internal/domain/entities"
	"tradbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	table   []entities.Language
}

// NewBot creates a Bot and wires ports: output adapters -> application (use
// cases) -> handler. newTranslator builds an authenticated translation
// session for a target language; it is injected so this package stays
// backend-agnostic.
func NewBot(
	cfg *config.Config,
	table []entities.Language,
	translationRepo output.TranslationRepository,
	settingsRepo output.GuildSettingsRepository,
	translator output.T,
	newTranslator TranslatorFactory,
) *Bot {
	historyUC := application.NewHistoryService(translationRepo, settingsRepo, table, cfg.DefaultLanguage)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Failed to create the Discord session:", err)
	}

	handler := NewHandler(historyUC, newTranslator, translator, table)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
		table:   table,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case commandTranslate:
		b.handler.HandleTranslate(s, i)
	case commandSetLanguage:
		b.handler.HandleSetLanguage(s, i)
	case commandLanguages:
		b.handler.HandleLanguages(s, i)
	case commandTranslateMessage:
		b.handler.HandleTranslateMessage(s, i)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open the session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range commandDefinitions(b.table) {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Failed to register command %s: %v", cmd.Name, err)
		}
	}

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
