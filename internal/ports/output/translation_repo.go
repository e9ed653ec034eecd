package output

import (
	"context"

	"tradbot/internal/domain/entities"
)

type TranslationRepository interface {
	Create(ctx context.Context, translation *entities.Translation) error
	FindRecentByGuildID(ctx context.Context, guildID string, limit int) ([]entities.Translation, error)
}
