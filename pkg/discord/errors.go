package discord

import (
	"errors"
	"strings"

	"tradbot/internal/domain"
)

// MessageKey maps a domain error to the i18n key of its user-facing message.
// Unknown errors collapse to the generic key; their details stay in the logs,
// not in the reply.
func MessageKey(err error) string {
	var unmanaged *domain.UnmanagedLanguageError
	switch {
	case errors.As(err, &unmanaged):
		return "error.unmanaged_language"
	case errors.Is(err, domain.ErrAuthKeyNotSet):
		return "error.auth_key_not_set"
	case errors.Is(err, domain.ErrAuthKeyInvalid):
		return "error.auth_key_invalid"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "error.not_authenticated"
	default:
		return "error.generic"
	}
}

// MessageData returns the template data the message identified by
// MessageKey(err) expects. Nil when the message takes no placeholders.
func MessageData(err error) map[string]any {
	var unmanaged *domain.UnmanagedLanguageError
	if errors.As(err, &unmanaged) {
		return map[string]any{
			"Language":  unmanaged.Language,
			"Supported": strings.Join(unmanaged.Supported, ", "),
		}
	}
	return nil
}
