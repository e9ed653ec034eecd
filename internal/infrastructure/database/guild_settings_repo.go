package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradbot/internal/domain/entities"
	"tradbot/internal/ports/output"
)

var _ output.GuildSettingsRepository = (*GuildSettingsRepository)(nil)

type GuildSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewGuildSettingsRepository(pool *pgxpool.Pool) *GuildSettingsRepository {
	return &GuildSettingsRepository{pool: pool}
}

func (r *GuildSettingsRepository) Upsert(ctx context.Context, s *entities.GuildSettings) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO guild_settings (guild_id, target_language, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (guild_id) DO UPDATE
		SET target_language = EXCLUDED.target_language, updated_at = now()
		RETURNING updated_at`,
		s.GuildID, s.TargetLanguage,
	)
	if err := row.Scan(&s.UpdatedAt); err != nil {
		return fmt.Errorf("upsert guild settings: %w", err)
	}
	return nil
}

// FindByGuildID returns (nil, nil) when the guild has no stored settings:
// absence is a normal state, not an error.
func (r *GuildSettingsRepository) FindByGuildID(ctx context.Context, guildID string) (*entities.GuildSettings, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT guild_id, target_language, updated_at
		FROM guild_settings
		WHERE guild_id = $1`,
		guildID,
	)
	var s entities.GuildSettings
	if err := row.Scan(&s.GuildID, &s.TargetLanguage, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guild settings: %w", err)
	}
	return &s, nil
}
