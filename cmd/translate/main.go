// Command translate is a one-shot CLI around the DeepL adapter:
//
//	translate -to French "Hello world"
//
// The credential is read from KEY_DEEPL_API (environment or .env file).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"tradbot/internal/adapters/deepl"
	"tradbot/internal/application"
	"tradbot/internal/infrastructure/languages"
	"tradbot/internal/ports/output"
)

func main() {
	to := flag.String("to", "French", "target language display name")
	from := flag.String("from", "", "source language (informational only)")
	flag.Parse()

	text := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: translate -to <language> [-from <language>] <text>")
		os.Exit(2)
	}

	table, err := languages.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	session, err := application.NewTranslatorService(*to, *from, table, func(key string) output.TranslationClient {
		return deepl.New(key, "")
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := session.AuthenticateFromEnv(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	translated, err := session.Translate(ctx, text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(translated)
}
