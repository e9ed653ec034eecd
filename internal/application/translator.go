package application

import (
	"context"
	"strings"

	"tradbot/internal/config"
	"tradbot/internal/domain"
	"tradbot/internal/domain/entities"
	"tradbot/internal/ports/input"
	"tradbot/internal/ports/output"
)

// FormalityMore asks DeepL for the formal register of the target language.
const FormalityMore = "more"

// ClientFactory builds a remote client for a given credential. Injected so
// this package never depends on a concrete backend adapter.
type ClientFactory func(key string) output.TranslationClient

var _ input.TranslatorUseCase = (*TranslatorService)(nil)

// TranslatorService is a translation session for one validated target
// language. The remote client is created lazily on the first Authenticate
// call and replaced on re-authentication; it is never shared.
type TranslatorService struct {
	targetLanguage string // display name, uppercase, always present in the table
	sourceLanguage string // held but never sent; DeepL detects the source itself
	table          []entities.Language
	buildClient    ClientFactory
	client         output.TranslationClient
}

// NewTranslatorService validates targetLanguageFull (any letter case) against
// the language table and returns an unauthenticated session for it.
func NewTranslatorService(targetLanguageFull, sourceLanguage string, table []entities.Language, buildClient ClientFactory) (*TranslatorService, error) {
	s := &TranslatorService{
		targetLanguage: strings.ToUpper(targetLanguageFull),
		sourceLanguage: sourceLanguage,
		table:          table,
		buildClient:    buildClient,
	}
	if err := s.checkLanguageManaged(); err != nil {
		return nil, err
	}
	return s, nil
}

// Authenticate builds a remote client from key, replacing any previous one,
// then verifies it with a usage query. An empty key falls back to the
// environment.
func (s *TranslatorService) Authenticate(ctx context.Context, key string) error {
	if key == "" {
		return s.AuthenticateFromEnv(ctx)
	}
	s.client = s.buildClient(key)
	return s.checkAuth(ctx)
}

// AuthenticateFromEnv reads KEY_DEEPL_API (from the environment or a .env
// file) and authenticates with it. Fails with domain.ErrAuthKeyNotSet before
// any network call when the variable is absent or empty.
func (s *TranslatorService) AuthenticateFromEnv(ctx context.Context) error {
	key := config.DeepLAuthKey()
	if key == "" {
		return domain.ErrAuthKeyNotSet
	}
	s.client = s.buildClient(key)
	return s.checkAuth(ctx)
}

// checkAuth verifies the held client with a lightweight usage query.
// A rejected credential surfaces as domain.ErrAuthKeyInvalid (mapped by the
// client); any other remote failure is passed through unchanged.
func (s *TranslatorService) checkAuth(ctx context.Context) error {
	if s.client == nil {
		return domain.ErrNotAuthenticated
	}
	if _, err := s.client.Usage(ctx); err != nil {
		return err
	}
	return nil
}

// Translate performs a single translation call and returns the translated
// text, discarding the rest of the response. Formality "more" is sent only
// for languages the table flags as supporting it; formatting preservation is
// always requested.
func (s *TranslatorService) Translate(ctx context.Context, text string) (string, error) {
	if err := s.checkAuth(ctx); err != nil {
		return "", err
	}

	key, err := s.BackendLanguageKey()
	if err != nil {
		return "", err
	}
	formal, err := s.SupportsFormality(s.targetLanguage)
	if err != nil {
		return "", err
	}

	req := output.TranslateRequest{
		Text:               text,
		TargetLang:         key,
		PreserveFormatting: true,
	}
	if formal {
		req.Formality = FormalityMore
	}

	result, err := s.client.Translate(ctx, req)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// TargetLanguage returns the validated target language display name,
// uppercase.
func (s *TranslatorService) TargetLanguage() string { return s.targetLanguage }

// SourceLanguage returns the source language the session was created with.
// It is informational only and never sent to the backend.
func (s *TranslatorService) SourceLanguage() string { return s.sourceLanguage }

// SupportedLanguages returns the display-name (uppercase) to backend-key
// mapping for every configured language.
func (s *TranslatorService) SupportedLanguages() map[string]string {
	out := make(map[string]string, len(s.table))
	for _, l := range s.table {
		out[strings.ToUpper(l.Name)] = l.Key
	}
	return out
}

// IsTargetLanguageSupported reports whether name is in the language table,
// case-insensitively.
func (s *TranslatorService) IsTargetLanguageSupported(name string) bool {
	_, ok := s.SupportedLanguages()[strings.ToUpper(name)]
	return ok
}

// SupportsFormality reports whether the named language accepts a formality
// flag.
func (s *TranslatorService) SupportsFormality(name string) (bool, error) {
	for _, l := range s.table {
		if strings.EqualFold(l.Name, name) {
			return l.SupportsFormality, nil
		}
	}
	return false, s.unmanaged(name)
}

// BackendLanguageKey re-validates the target language and returns its
// backend code (e.g. "FR" for "FRENCH").
func (s *TranslatorService) BackendLanguageKey() (string, error) {
	if err := s.checkLanguageManaged(); err != nil {
		return "", err
	}
	return s.SupportedLanguages()[s.targetLanguage], nil
}

func (s *TranslatorService) checkLanguageManaged() error {
	if s.IsTargetLanguageSupported(s.targetLanguage) {
		return nil
	}
	return s.unmanaged(s.targetLanguage)
}

func (s *TranslatorService) unmanaged(name string) *domain.UnmanagedLanguageError {
	supported := make([]string, 0, len(s.table))
	for _, l := range s.table {
		supported = append(supported, strings.ToUpper(l.Name))
	}
	return &domain.UnmanagedLanguageError{
		Language:  strings.ToUpper(name),
		Supported: supported,
	}
}
