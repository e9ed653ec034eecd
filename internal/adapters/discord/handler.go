package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tradbot/internal/domain/entities"
	"tradbot/internal/ports/input"
	"tradbot/internal/ports/output"
	pkgdiscord "tradbot/pkg/discord"
)

// TranslatorFactory returns an authenticated translation session for the
// given target language display name.
type TranslatorFactory func(ctx context.Context, targetLanguage string) (input.TranslatorUseCase, error)

// Handler handles Discord interactions using use cases.
type Handler struct {
	history       input.HistoryUseCase
	newTranslator TranslatorFactory
	t             output.T
	table         []entities.Language
}

// NewHandler creates a Handler.
func NewHandler(
	history input.HistoryUseCase,
	newTranslator TranslatorFactory,
	t output.T,
	table []entities.Language,
) *Handler {
	return &Handler{
		history:       history,
		newTranslator: newTranslator,
		t:             t,
		table:         table,
	}
}

func (h *Handler) HandleTranslate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)

	var text, language string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "text":
			text = opt.StringValue()
		case "language":
			language = opt.StringValue()
		}
	}
	if language == "" {
		language = h.history.TargetLanguageFor(ctx, i.GuildID)
	}

	h.translateAndReply(ctx, s, i, locale, language, text)
}

// HandleTranslateMessage serves the "Translate message" context-menu entry.
func (h *Handler) HandleTranslateMessage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	data := i.ApplicationCommandData()

	msg, ok := data.Resolved.Messages[data.TargetID]
	if !ok || strings.TrimSpace(msg.Content) == "" {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "error.empty_message", nil))
		return
	}

	language := h.history.TargetLanguageFor(ctx, i.GuildID)
	h.translateAndReply(ctx, s, i, locale, language, msg.Content)
}

func (h *Handler) HandleSetLanguage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)

	var language string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "language" {
			language = opt.StringValue()
		}
	}

	if err := h.history.SetTargetLanguage(ctx, i.GuildID, language); err != nil {
		h.replyError(s, i, locale, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.t.T(locale, "setlanguage.ok", map[string]any{
		"Language": strings.ToUpper(language),
	}))
}

func (h *Handler) HandleLanguages(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)

	var sb strings.Builder
	sb.WriteString(h.t.T(locale, "languages.header", nil))
	for _, l := range h.table {
		sb.WriteString(fmt.Sprintf("\n• %s (%s)", l.Name, l.Key))
	}
	respondEphemeral(s, i.Interaction, sb.String())
}

// translateAndReply runs a full translation round trip. The response is
// deferred because the DeepL calls can exceed Discord's 3-second window.
func (h *Handler) translateAndReply(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, locale, language, text string) {
	if err := deferReply(s, i.Interaction); err != nil {
		log.Printf("⚠️ Failed to defer the interaction response: %v", err)
		return
	}

	translator, err := h.newTranslator(ctx, language)
	if err != nil {
		h.followUpError(s, i, locale, err)
		return
	}

	translated, err := translator.Translate(ctx, text)
	if err != nil {
		h.followUpError(s, i, locale, err)
		return
	}

	targetKey, err := translator.BackendLanguageKey()
	if err != nil {
		h.followUpError(s, i, locale, err)
		return
	}
	formal, _ := translator.SupportsFormality(translator.TargetLanguage())

	record := &entities.Translation{
		GuildID:        i.GuildID,
		RequesterID:    requesterID(i),
		SourceText:     text,
		TranslatedText: translated,
		TargetKey:      targetKey,
		Formal:         formal,
	}
	// A history failure must not hide a successful translation.
	if err := h.history.Record(ctx, record); err != nil {
		log.Printf("⚠️ Failed to record the translation: %v", err)
	}

	followUp(s, i.Interaction, h.t.T(locale, "translate.result", map[string]any{
		"Language": translator.TargetLanguage(),
		"Text":     translated,
	}))
}

func (h *Handler) replyError(s *discordgo.Session, i *discordgo.InteractionCreate, locale string, err error) {
	log.Printf("⚠️ Command %s failed: %v", i.ApplicationCommandData().Name, err)
	respondEphemeral(s, i.Interaction, h.t.T(locale, pkgdiscord.MessageKey(err), pkgdiscord.MessageData(err)))
}

func (h *Handler) followUpError(s *discordgo.Session, i *discordgo.InteractionCreate, locale string, err error) {
	log.Printf("⚠️ Command %s failed: %v", i.ApplicationCommandData().Name, err)
	followUp(s, i.Interaction, h.t.T(locale, pkgdiscord.MessageKey(err), pkgdiscord.MessageData(err)))
}
