package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors. None of these are retried or logged internally; they are
// raised to the caller as-is.
var (
	// ErrAuthKeyNotSet means no DeepL credential could be read from the
	// environment. Raised before any network call.
	ErrAuthKeyNotSet = errors.New("the DeepL auth key was not found in the environment, please set it as 'KEY_DEEPL_API'")

	// ErrAuthKeyInvalid means the remote service rejected the credential.
	ErrAuthKeyInvalid = errors.New("the DeepL auth key was rejected, please check it")

	// ErrNotAuthenticated means translate (or an auth check) was attempted
	// before any successful authentication.
	ErrNotAuthenticated = errors.New("not authenticated, call Authenticate before translating")
)

// UnmanagedLanguageError is returned when a requested target language is not
// present in the language table. The message enumerates the supported names.
type UnmanagedLanguageError struct {
	Language  string
	Supported []string
}

func (e *UnmanagedLanguageError) Error() string {
	return fmt.Sprintf("the language %s is not managed, supported languages are: %s",
		e.Language, strings.Join(e.Supported, ", "))
}
