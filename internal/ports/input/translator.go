package input

import "context"

// TranslatorUseCase is a translation session for one target language.
// Authenticate may be called again at any time; the new client replaces the
// previous one. A single instance is not safe for concurrent use.
type TranslatorUseCase interface {
	// Authenticate builds a remote client from key and verifies it against
	// the service. An empty key falls back to AuthenticateFromEnv.
	Authenticate(ctx context.Context, key string) error
	// AuthenticateFromEnv reads the credential from KEY_DEEPL_API.
	AuthenticateFromEnv(ctx context.Context) error
	Translate(ctx context.Context, text string) (string, error)

	TargetLanguage() string
	SourceLanguage() string
	SupportedLanguages() map[string]string
	IsTargetLanguageSupported(name string) bool
	SupportsFormality(name string) (bool, error)
	BackendLanguageKey() (string, error)
}
