package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/codementor/config"
	"github.com/lshigami/codementor/internal/metrics"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	generationMaxAttempts = 3
	backoffMinWait        = 4 * time.Second
	backoffMaxWait        = 10 * time.Second

	hintMaxOutputTokens = 200
	hintTemperature     = 0.7
	hintTopP            = 0.8
	hintTopK            = 40
)

// responsePrefixes are boilerplate lead-ins the model tends to produce; they
// are stripped case-insensitively from the front of the hint.
var responsePrefixes = []string{
	"Here's a hint:",
	"Hint:",
	"Here's your hint:",
	"For this problem:",
	"Level 1 hint:",
	"Level 2 hint:",
	"Level 3 hint:",
}

// GeminiLLMService generates hint text from a prompt via the Gemini API.
type GeminiLLMService interface {
	GenerateHintText(ctx context.Context, prompt string) (string, error)
}

type geminiLLMService struct {
	client  *genai.GenerativeModel
	limiter RateLimiter
	cfg     *config.Config
}

func NewGeminiLLMService(cfg *config.Config, limiter RateLimiter) (GeminiLLMService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetMaxOutputTokens(hintMaxOutputTokens)
	model.SetTemperature(hintTemperature)
	model.SetTopP(hintTopP)
	model.SetTopK(hintTopK)

	log.Info().Msg("Gemini client initialized")
	return &geminiLLMService{client: model, limiter: limiter, cfg: cfg}, nil
}

// GenerateHintText sends the prompt to Gemini, retrying transient failures
// with exponential backoff. An empty response counts as a failure. Each
// attempt goes through the rate limiter.
func (s *geminiLLMService) GenerateHintText(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < generationMaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := backoffWait(attempt)
			log.Warn().Err(lastErr).Int("attempt", attempt+1).Dur("backoff", backoff).Msg("Retrying Gemini hint generation")

			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return "", ctx.Err()
			case <-timer.C:
			}
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}

		hint, err := s.generateOnce(ctx, prompt)
		if err != nil {
			metrics.GenerationAttemptsTotal.WithLabelValues("error").Inc()
			lastErr = err
			continue
		}

		metrics.GenerationAttemptsTotal.WithLabelValues("ok").Inc()
		log.Info().Int("length", len(hint)).Msg("Successfully generated hint with Gemini")
		return cleanHint(hint), nil
	}

	return "", fmt.Errorf("gemini hint generation failed after %d attempts: %w", generationMaxAttempts, lastErr)
}

func (s *geminiLLMService) generateOnce(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

// backoffWait computes the exponential wait before the given attempt
// (1-based retries), bounded to [4s, 10s].
func backoffWait(attempt int) time.Duration {
	wait := time.Duration(2<<attempt) * time.Second
	if wait < backoffMinWait {
		wait = backoffMinWait
	}
	if wait > backoffMaxWait {
		wait = backoffMaxWait
	}
	return wait
}

// cleanHint strips boilerplate prefixes and unwraps a JSON {"hint": ...}
// body when the model returns one.
func cleanHint(hint string) string {
	cleaned := strings.TrimSpace(hint)

	for _, prefix := range responsePrefixes {
		if strings.HasPrefix(strings.ToLower(cleaned), strings.ToLower(prefix)) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
		}
	}

	if strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}") {
		var parsed struct {
			Hint string `json:"hint"`
		}
		if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil && parsed.Hint != "" {
			cleaned = parsed.Hint
		}
	}

	return cleaned
}
