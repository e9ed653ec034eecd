package entities

import "time"

// Translation is one performed translation, kept as history.
type Translation struct {
	ID             uint
	GuildID        string
	RequesterID    string
	SourceText     string
	TranslatedText string
	TargetKey      string
	Formal         bool
	CreatedAt      time.Time
}
