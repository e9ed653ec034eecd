package input

import (
	"context"

	"tradbot/internal/domain/entities"
)

// HistoryUseCase records performed translations and resolves per-guild
// defaults.
type HistoryUseCase interface {
	Record(ctx context.Context, translation *entities.Translation) error
	Recent(ctx context.Context, guildID string, limit int) ([]entities.Translation, error)
	// TargetLanguageFor returns the guild's stored default target language,
	// or the configured fallback when none is stored.
	TargetLanguageFor(ctx context.Context, guildID string) string
	SetTargetLanguage(ctx context.Context, guildID, name string) error
}
