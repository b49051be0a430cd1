package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/libris/internal/platform/i18n"
)

// maxResponseBytes caps how much of a provider response is read.
const maxResponseBytes = 1 << 20

// ErrEmptyTranslation is returned when the provider answers without text.
var ErrEmptyTranslation = errors.New("translate: provider returned no text")

// GoogleConfig configures a [GoogleTranslator].
type GoogleConfig struct {
	// BaseURL is the scheme and host of the endpoint, e.g. https://translate.googleapis.com.
	BaseURL string
	// Timeout bounds a single provider call, including throttling.
	Timeout time.Duration
	// RPS is the steady request rate allowed towards the provider. Zero disables throttling.
	RPS float64
}

// GoogleTranslator calls the public Google Translate web endpoint
// (translate_a/single, client=gtx), the same endpoint browser widgets use.
type GoogleTranslator struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	limiter  *rate.Limiter
}

// NewGoogleTranslator builds a [GoogleTranslator].
func NewGoogleTranslator(cfg GoogleConfig) *GoogleTranslator {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	return &GoogleTranslator{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/translate_a/single",
		timeout:  cfg.Timeout,
		client:   &http.Client{},
		limiter:  limiter,
	}
}

// Translate implements [Translator]. Blank text is returned unchanged
// without calling the provider.
func (translator *GoogleTranslator) Translate(ctx context.Context, text string, source, target i18n.Lang) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	if translator.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, translator.timeout)
		defer cancel()
	}

	if err := translator.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("translate: throttle: %w", err)
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", source.String())
	query.Set("tl", target.String())
	query.Set("dt", "t")

	form := url.Values{}
	form.Set("q", text)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		translator.endpoint+"?"+query.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("translate: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	response, err := translator.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("translate: request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("translate: read response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: provider returned status %d", response.StatusCode)
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translation from the nested-array payload:
//
//	[[["translated part","source part",null,null,10], ...], null, "en", ...]
func parseGoogleResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		return "", fmt.Errorf("translate: unexpected response shape: %w", errors.Join(err, ErrEmptyTranslation))
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("translate: unexpected segment shape: %w", err)
	}

	var builder strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if part, ok := segment[0].(string); ok {
			builder.WriteString(part)
		}
	}

	if strings.TrimSpace(builder.String()) == "" {
		return "", ErrEmptyTranslation
	}
	return builder.String(), nil
}
