// Package deepl is a thin client for the DeepL REST API v2. It owns host
// selection and credential transport; retries, batching and rate limiting are
// deliberately left to the caller's policy (there is none).
package deepl

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"tradbot/internal/domain"
	"tradbot/internal/ports/output"
)

const (
	hostPro  = "https://api.deepl.com"
	hostFree = "https://api-free.deepl.com"

	// Free-plan keys carry this suffix and must hit the free host.
	freeKeySuffix = ":fx"
)

var _ output.TranslationClient = (*Client)(nil)

type Client struct {
	http *resty.Client
}

// New builds a client for authKey. baseURL overrides the host (used in
// tests); when empty the host is derived from the key suffix.
func New(authKey, baseURL string) *Client {
	base := baseURL
	if base == "" {
		base = hostPro
		if strings.HasSuffix(authKey, freeKeySuffix) {
			base = hostFree
		}
	}
	c := resty.New().
		SetBaseURL(base).
		SetTimeout(30 * time.Second).
		SetHeader("Authorization", "DeepL-Auth-Key "+authKey)
	return &Client{http: c}
}

// Usage queries account usage. It doubles as the auth check: a rejected
// credential comes back as domain.ErrAuthKeyInvalid.
func (c *Client) Usage(ctx context.Context) (output.Usage, error) {
	var resp struct {
		CharacterCount int64 `json:"character_count"`
		CharacterLimit int64 `json:"character_limit"`
	}
	r, err := c.http.R().SetContext(ctx).SetResult(&resp).Get("/v2/usage")
	if err != nil {
		return output.Usage{}, err
	}
	if r.IsError() {
		return output.Usage{}, c.apiError("usage", r)
	}
	return output.Usage{
		CharacterCount: resp.CharacterCount,
		CharacterLimit: resp.CharacterLimit,
	}, nil
}

// Translate performs a single translate call. The formality field is only
// sent when the request carries one.
func (c *Client) Translate(ctx context.Context, req output.TranslateRequest) (output.TranslateResult, error) {
	body := map[string]any{
		"text":                []string{req.Text},
		"target_lang":         req.TargetLang,
		"preserve_formatting": req.PreserveFormatting,
	}
	if req.Formality != "" {
		body["formality"] = req.Formality
	}

	var resp struct {
		Translations []struct {
			DetectedSourceLanguage string `json:"detected_source_language"`
			Text                   string `json:"text"`
		} `json:"translations"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post("/v2/translate")
	if err != nil {
		return output.TranslateResult{}, err
	}
	if r.IsError() {
		return output.TranslateResult{}, c.apiError("translate", r)
	}
	if len(resp.Translations) == 0 {
		return output.TranslateResult{}, fmt.Errorf("deepl translate: empty response")
	}
	return output.TranslateResult{
		Text:                   resp.Translations[0].Text,
		DetectedSourceLanguage: resp.Translations[0].DetectedSourceLanguage,
	}, nil
}

// apiError maps an HTTP error answer to a domain error where one applies.
// Only credential rejection is interpreted; everything else passes through.
func (c *Client) apiError(op string, r *resty.Response) error {
	switch r.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("deepl %s: %s: %w", op, r.Status(), domain.ErrAuthKeyInvalid)
	}
	return fmt.Errorf("deepl %s: %s; body: %s", op, r.Status(), r.String())
}
