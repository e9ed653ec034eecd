package main

import (
	"context"
	"log"
	"os"

	"tradbot/internal/adapters/deepl"
	"tradbot/internal/adapters/discord"
	"tradbot/internal/application"
	"tradbot/internal/config"
	"tradbot/internal/infrastructure/database"
	"tradbot/internal/infrastructure/i18n"
	"tradbot/internal/infrastructure/languages"
	"tradbot/internal/ports/input"
	"tradbot/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	table, err := languages.Load()
	if err != nil {
		log.Fatalf("❌ Invalid language table: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize the database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	translationRepo := database.NewTranslationRepository(pool)
	settingsRepo := database.NewGuildSettingsRepository(pool)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	// One authenticated session per request; instances are cheap and not
	// safe for concurrent use, so they are never shared across handlers.
	newTranslator := func(ctx context.Context, targetLanguage string) (input.TranslatorUseCase, error) {
		session, err := application.NewTranslatorService(targetLanguage, "", table, func(key string) output.TranslationClient {
			return deepl.New(key, "")
		})
		if err != nil {
			return nil, err
		}
		if err := session.Authenticate(ctx, cfg.DeepLKey); err != nil {
			return nil, err
		}
		return session, nil
	}

	bot := discord.NewBot(cfg, table, translationRepo, settingsRepo, translator, newTranslator)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Failed to start the bot: %v", err)
		os.Exit(1)
	}
}
