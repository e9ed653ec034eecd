package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradbot/internal/application"
	"tradbot/internal/domain"
	"tradbot/internal/domain/entities"
)

type fakeTranslationRepo struct {
	created []*entities.Translation
	err     error
}

func (r *fakeTranslationRepo) Create(ctx context.Context, t *entities.Translation) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, t)
	return nil
}

func (r *fakeTranslationRepo) FindRecentByGuildID(ctx context.Context, guildID string, limit int) ([]entities.Translation, error) {
	out := make([]entities.Translation, 0, len(r.created))
	for _, t := range r.created {
		if t.GuildID == guildID {
			out = append(out, *t)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings map[string]*entities.GuildSettings
	findErr  error
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, s *entities.GuildSettings) error {
	if r.settings == nil {
		r.settings = map[string]*entities.GuildSettings{}
	}
	r.settings[s.GuildID] = s
	return nil
}

func (r *fakeSettingsRepo) FindByGuildID(ctx context.Context, guildID string) (*entities.GuildSettings, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.settings[guildID], nil
}

func TestHistoryService_TargetLanguageFor(t *testing.T) {
	ctx := context.Background()

	t.Run("falls_back_to_default", func(t *testing.T) {
		svc := application.NewHistoryService(&fakeTranslationRepo{}, &fakeSettingsRepo{}, testTable, "French")
		assert.Equal(t, "FRENCH", svc.TargetLanguageFor(ctx, "guild-1"))
	})

	t.Run("falls_back_on_lookup_error", func(t *testing.T) {
		repo := &fakeSettingsRepo{findErr: errors.New("connection refused")}
		svc := application.NewHistoryService(&fakeTranslationRepo{}, repo, testTable, "French")
		assert.Equal(t, "FRENCH", svc.TargetLanguageFor(ctx, "guild-1"))
	})

	t.Run("returns_stored_language", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := application.NewHistoryService(&fakeTranslationRepo{}, repo, testTable, "French")

		require.NoError(t, svc.SetTargetLanguage(ctx, "guild-1", "japanese"))
		assert.Equal(t, "JAPANESE", svc.TargetLanguageFor(ctx, "guild-1"))
		// Other guilds keep the default.
		assert.Equal(t, "FRENCH", svc.TargetLanguageFor(ctx, "guild-2"))
	})
}

func TestHistoryService_SetTargetLanguage(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSettingsRepo{}
	svc := application.NewHistoryService(&fakeTranslationRepo{}, repo, testTable, "French")

	err := svc.SetTargetLanguage(ctx, "guild-1", "Klingon")
	var unmanaged *domain.UnmanagedLanguageError
	require.ErrorAs(t, err, &unmanaged)
	assert.Equal(t, "KLINGON", unmanaged.Language)
	assert.Empty(t, repo.settings)
}

func TestHistoryService_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeTranslationRepo{}
	svc := application.NewHistoryService(repo, &fakeSettingsRepo{}, testTable, "French")

	require.NoError(t, svc.Record(ctx, &entities.Translation{
		GuildID:        "guild-1",
		RequesterID:    "user-1",
		SourceText:     "Hello",
		TranslatedText: "Bonjour",
		TargetKey:      "FR",
		Formal:         true,
	}))

	recent, err := svc.Recent(ctx, "guild-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Bonjour", recent[0].TranslatedText)

	repo.err = errors.New("connection refused")
	err = svc.Record(ctx, &entities.Translation{GuildID: "guild-1"})
	assert.ErrorContains(t, err, "record translation")
}
