package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tradbot/internal/domain/entities"
	"tradbot/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationRepository)(nil)

type TranslationRepository struct {
	pool *pgxpool.Pool
}

func NewTranslationRepository(pool *pgxpool.Pool) *TranslationRepository {
	return &TranslationRepository{pool: pool}
}

func (r *TranslationRepository) Create(ctx context.Context, t *entities.Translation) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO translations (guild_id, requester_id, source_text, translated_text, target_key, formal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		t.GuildID, t.RequesterID, t.SourceText, t.TranslatedText, t.TargetKey, t.Formal,
	)
	var id int64
	if err := row.Scan(&id, &t.CreatedAt); err != nil {
		return fmt.Errorf("create translation: %w", err)
	}
	t.ID = uint(id)
	return nil
}

func (r *TranslationRepository) FindRecentByGuildID(ctx context.Context, guildID string, limit int) ([]entities.Translation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, guild_id, requester_id, source_text, translated_text, target_key, formal, created_at
		FROM translations
		WHERE guild_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		guildID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("find recent translations: %w", err)
	}
	defer rows.Close()

	var out []entities.Translation
	for rows.Next() {
		var t entities.Translation
		var id int64
		if err := rows.Scan(&id, &t.GuildID, &t.RequesterID, &t.SourceText, &t.TranslatedText, &t.TargetKey, &t.Formal, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		t.ID = uint(id)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translations: %w", err)
	}
	return out, nil
}
