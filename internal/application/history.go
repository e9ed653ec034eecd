package application

import (
	"context"
	"fmt"
	"strings"

	"tradbot/internal/domain"
	"tradbot/internal/domain/entities"
	"tradbot/internal/ports/input"
	"tradbot/internal/ports/output"
)

var _ input.HistoryUseCase = (*HistoryService)(nil)

// HistoryService records performed translations and manages per-guild target
// language defaults.
type HistoryService struct {
	translations    output.TranslationRepository
	settings        output.GuildSettingsRepository
	table           []entities.Language
	defaultLanguage string
}

func NewHistoryService(
	translations output.TranslationRepository,
	settings output.GuildSettingsRepository,
	table []entities.Language,
	defaultLanguage string,
) *HistoryService {
	return &HistoryService{
		translations:    translations,
		settings:        settings,
		table:           table,
		defaultLanguage: strings.ToUpper(defaultLanguage),
	}
}

func (s *HistoryService) Record(ctx context.Context, translation *entities.Translation) error {
	if err := s.translations.Create(ctx, translation); err != nil {
		return fmt.Errorf("record translation: %w", err)
	}
	return nil
}

func (s *HistoryService) Recent(ctx context.Context, guildID string, limit int) ([]entities.Translation, error) {
	return s.translations.FindRecentByGuildID(ctx, guildID, limit)
}

// TargetLanguageFor returns the guild's stored default target language, or
// the configured fallback when nothing is stored (or the lookup fails).
func (s *HistoryService) TargetLanguageFor(ctx context.Context, guildID string) string {
	settings, err := s.settings.FindByGuildID(ctx, guildID)
	if err != nil || settings == nil {
		return s.defaultLanguage
	}
	return settings.TargetLanguage
}

// SetTargetLanguage stores name (any letter case) as the guild default after
// validating it against the language table.
func (s *HistoryService) SetTargetLanguage(ctx context.Context, guildID, name string) error {
	upper := strings.ToUpper(name)
	if !s.isManaged(upper) {
		supported := make([]string, 0, len(s.table))
		for _, l := range s.table {
			supported = append(supported, strings.ToUpper(l.Name))
		}
		return &domain.UnmanagedLanguageError{Language: upper, Supported: supported}
	}
	if err := s.settings.Upsert(ctx, &entities.GuildSettings{
		GuildID:        guildID,
		TargetLanguage: upper,
	}); err != nil {
		return fmt.Errorf("set target language: %w", err)
	}
	return nil
}

func (s *HistoryService) isManaged(upper string) bool {
	for _, l := range s.table {
		if strings.ToUpper(l.Name) == upper {
			return true
		}
	}
	return false
}
