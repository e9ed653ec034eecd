package output

import (
	"context"

	"tradbot/internal/domain/entities"
)

type GuildSettingsRepository interface {
	Upsert(ctx context.Context, settings *entities.GuildSettings) error
	// FindByGuildID returns (nil, nil) when the guild has no stored settings.
	FindByGuildID(ctx context.Context, guildID string) (*entities.GuildSettings, error)
}
