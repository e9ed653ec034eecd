package entities

import "time"

// GuildSettings holds the per-guild defaults, currently only the default
// target language (display name, e.g. "FRENCH").
type GuildSettings struct {
	GuildID        string
	TargetLanguage string
	UpdatedAt      time.Time
}
