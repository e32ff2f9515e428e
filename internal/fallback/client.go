// Package fallback calls the remote translation service used when the
// dictionary pipeline produces a low-confidence result. Calls go through a
// circuit breaker so a dead remote degrades to fast local-only translation
// instead of per-request timeouts.
package fallback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/lingobridge/translator-backend/internal/config"
	"github.com/lingobridge/translator-backend/internal/domain"
)

// Result is the remote service's answer.
type Result struct {
	TranslatedText   string
	IsTranslated     bool
	DetectedLanguage string
}

// Client translates text via a remote service.
type Client interface {
	Translate(ctx context.Context, text, source, target string) (Result, error)
}

// HTTPClient is the JSON-over-HTTP fallback client.
type HTTPClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *slog.Logger
}

// NewHTTPClient builds a fallback client from config. The breaker opens after
// the configured number of consecutive failures and half-opens after the
// configured interval.
func NewHTTPClient(cfg config.FallbackConfig, logger *slog.Logger) *HTTPClient {
	log := logger.With("adapter", "fallback")

	settings := gobreaker.Settings{
		Name:    "fallback-translate",
		Timeout: cfg.BreakerOpenInterval,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("fallback breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &HTTPClient{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		log:        log,
	}
}

type translateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

type translateResponse struct {
	TranslatedText   string `json:"translated_text"`
	DetectedLanguage string `json:"detected_language,omitempty"`
}

// Translate sends the text to the remote service. Any transport, status, or
// breaker-open failure comes back wrapping domain.ErrFallbackFailed, so
// callers need a single check to decide whether to keep the local result.
// The underlying cause stays in the chain, so a remote that answered with
// no usable text is still distinguishable via domain.ErrNoTranslation.
func (c *HTTPClient) Translate(ctx context.Context, text, source, target string) (Result, error) {
	out, err := c.breaker.Execute(func() (any, error) {
		return c.doTranslate(ctx, text, source, target)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.DebugContext(ctx, "fallback skipped, breaker open")
			return Result{}, fmt.Errorf("circuit open: %w", domain.ErrFallbackFailed)
		}
		return Result{}, fmt.Errorf("%w: %w", err, domain.ErrFallbackFailed)
	}
	return out.(Result), nil
}

func (c *HTTPClient) doTranslate(ctx context.Context, text, source, target string) (Result, error) {
	payload, err := json.Marshal(translateRequest{
		Text:           text,
		SourceLanguage: source,
		TargetLanguage: target,
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if decoded.TranslatedText == "" {
		return Result{}, fmt.Errorf("empty translation in response: %w", domain.ErrNoTranslation)
	}

	c.log.DebugContext(ctx, "fallback translation served",
		slog.String("source", source),
		slog.String("target", target),
	)

	return Result{
		TranslatedText:   decoded.TranslatedText,
		IsTranslated:     true,
		DetectedLanguage: decoded.DetectedLanguage,
	}, nil
}
