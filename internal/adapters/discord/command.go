package discord

import (
	"github.com/bwmarrin/discordgo"

	"tradbot/internal/domain/entities"
)

const (
	commandTranslate        = "translate"
	commandSetLanguage      = "setlanguage"
	commandLanguages        = "languages"
	commandTranslateMessage = "Translate message"
)

// commandDefinitions builds the application commands to register. Language
// choices come straight from the language table, so a new table entry shows
// up in the command UI without code changes.
func commandDefinitions(table []entities.Language) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandTranslate,
			Description: "Translate a text with DeepL",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "text",
					Description: "Text to translate",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "language",
					Description: "Target language (defaults to the server language)",
					Required:    false,
					Choices:     languageChoices(table),
				},
			},
		},
		{
			Name:        commandSetLanguage,
			Description: "Set the default target language for this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "language",
					Description: "Target language",
					Required:    true,
					Choices:     languageChoices(table),
				},
			},
		},
		{
			Name:        commandLanguages,
			Description: "List the supported target languages",
		},
		{
			Name: commandTranslateMessage,
			Type: discordgo.MessageApplicationCommand,
		},
	}
}

func languageChoices(table []entities.Language) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(table))
	for _, l := range table {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  l.Name,
			Value: l.Name,
		})
	}
	return choices
}
