package output

import "context"

// TranslateRequest is a single-string translation call to the remote service.
// An empty Formality means the flag is omitted from the request entirely.
type TranslateRequest struct {
	Text               string
	TargetLang         string
	Formality          string
	PreserveFormatting bool
}

// TranslateResult carries the translated text plus the metadata the backend
// returns with it. Callers above the adapter only ever see Text.
type TranslateResult struct {
	Text                   string
	DetectedSourceLanguage string
}

// Usage is the account usage/status answer, used as a lightweight auth check.
type Usage struct {
	CharacterCount int64
	CharacterLimit int64
}

// TranslationClient is the remote translation service. Implementations own
// the credential they were built with; they do not retry or batch.
type TranslationClient interface {
	Usage(ctx context.Context) (Usage, error)
	Translate(ctx context.Context, req TranslateRequest) (TranslateResult, error)
}
